package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zenchair/internal/domain"
)

// Plan prices in ILS.
const (
	monthlyPrice = 500
	yearlyPrice  = 5000
)

type Service struct {
	subs    SubscriptionRepository
	gateway PaymentGateway
	now     func() time.Time
}

func NewService(subs SubscriptionRepository, gateway PaymentGateway) *Service {
	return &Service{subs: subs, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func planPrice(plan domain.SubscriptionPlan) (float64, error) {
	switch plan {
	case domain.PlanMonthly:
		return monthlyPrice, nil
	case domain.PlanYearly:
		return yearlyPrice, nil
	default:
		return 0, ErrInvalidPlan
	}
}

func renewalDate(plan domain.SubscriptionPlan, start time.Time) time.Time {
	if plan == domain.PlanYearly {
		return start.AddDate(0, 0, 365)
	}
	return start.AddDate(0, 0, 30)
}

// Subscribe charges the barber's card through the gateway and opens an
// active subscription. A barber holds at most one active subscription.
func (s *Service) Subscribe(ctx context.Context, barberID string, req SubscribeRequest) (*domain.Subscription, error) {
	plan := domain.SubscriptionPlan(req.Plan)
	price, err := planPrice(plan)
	if err != nil {
		return nil, err
	}

	active, err := s.subs.GetActiveByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrAlreadySubscribed
	}

	charge, err := s.gateway.SetupRecurring(ctx, barberID, price, req.Card)
	if err != nil {
		return nil, ErrPaymentDeclined
	}

	start := s.now()
	sub := &domain.Subscription{
		ID:              fmt.Sprintf("sub_%s", uuid.NewString()),
		BarberID:        barberID,
		Plan:            plan,
		Price:           price,
		Status:          domain.SubscriptionActive,
		StartDate:       start,
		RenewalDate:     renewalDate(plan, start),
		StandingOrderID: charge.StandingOrderID,
		PaymentToken:    charge.PaymentToken,
		TransactionID:   charge.TransactionID,
		CreatedAt:       start,
		UpdatedAt:       start,
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// MySubscription returns the barber's latest subscription, active or not.
func (s *Service) MySubscription(ctx context.Context, barberID string) (*domain.Subscription, error) {
	sub, err := s.subs.GetByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}
	return sub, nil
}

// Cancel stops the standing order and marks the subscription cancelled.
// Paid time until the renewal date stays usable.
func (s *Service) Cancel(ctx context.Context, barberID string) (*domain.Subscription, error) {
	sub, err := s.subs.GetActiveByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoActiveSubscription
	}

	if sub.StandingOrderID != "" {
		if err := s.gateway.CancelRecurring(ctx, sub.StandingOrderID); err != nil {
			return nil, err
		}
	}

	if err := s.subs.MarkCancelled(ctx, sub.ID); err != nil {
		return nil, err
	}

	now := s.now()
	sub.Status = domain.SubscriptionCancelled
	sub.CancelledAt = &now
	sub.UpdatedAt = now
	return sub, nil
}
