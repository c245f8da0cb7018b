package subscription

import (
	"context"

	"zenchair/internal/domain"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, s *domain.Subscription) error
	GetActiveByBarber(ctx context.Context, barberID string) (*domain.Subscription, error)
	GetByBarber(ctx context.Context, barberID string) (*domain.Subscription, error)
	MarkCancelled(ctx context.Context, id string) error
}

// ChargeResult is what the payment provider reports for a successful
// recurring-billing setup.
type ChargeResult struct {
	TransactionID   string
	StandingOrderID string
	PaymentToken    string
}

// PaymentGateway sets up recurring billing with the payment provider.
type PaymentGateway interface {
	SetupRecurring(ctx context.Context, barberID string, amount float64, card CardDetails) (*ChargeResult, error)
	CancelRecurring(ctx context.Context, standingOrderID string) error
}
