package repository

import (
	"context"
	"errors"
	"time"

	"zenchair/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

type subscriptionModel struct {
	ID              string     `gorm:"column:id;primaryKey"`
	BarberID        string     `gorm:"column:barber_id;index"`
	Plan            string     `gorm:"column:plan"`
	Price           float64    `gorm:"column:price"`
	Status          string     `gorm:"column:status"`
	StartDate       time.Time  `gorm:"column:start_date"`
	RenewalDate     time.Time  `gorm:"column:renewal_date"`
	StandingOrderID *string    `gorm:"column:standing_order_id"`
	PaymentToken    *string    `gorm:"column:payment_token"`
	TransactionID   *string    `gorm:"column:transaction_id"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (subscriptionModel) TableName() string { return "subscriptions" }

func strOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainSubscription(m subscriptionModel) *domain.Subscription {
	return &domain.Subscription{
		ID:              m.ID,
		BarberID:        m.BarberID,
		Plan:            domain.SubscriptionPlan(m.Plan),
		Price:           m.Price,
		Status:          domain.SubscriptionStatus(m.Status),
		StartDate:       m.StartDate,
		RenewalDate:     m.RenewalDate,
		StandingOrderID: strOrEmpty(m.StandingOrderID),
		PaymentToken:    strOrEmpty(m.PaymentToken),
		TransactionID:   strOrEmpty(m.TransactionID),
		CancelledAt:     m.CancelledAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toSubscriptionModel(s *domain.Subscription) subscriptionModel {
	return subscriptionModel{
		ID:              s.ID,
		BarberID:        s.BarberID,
		Plan:            string(s.Plan),
		Price:           s.Price,
		Status:          string(s.Status),
		StartDate:       s.StartDate,
		RenewalDate:     s.RenewalDate,
		StandingOrderID: strOrNil(s.StandingOrderID),
		PaymentToken:    strOrNil(s.PaymentToken),
		TransactionID:   strOrNil(s.TransactionID),
		CancelledAt:     s.CancelledAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	m := toSubscriptionModel(s)
	return r.db.WithContext(ctx).Create(&m).Error
}

// GetActiveByBarber returns nil when the barber has no active subscription.
func (r *SubscriptionRepository) GetActiveByBarber(ctx context.Context, barberID string) (*domain.Subscription, error) {
	var m subscriptionModel
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND status = ?", barberID, string(domain.SubscriptionActive)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainSubscription(m), nil
}

// GetByBarber returns the barber's latest subscription record, or nil.
func (r *SubscriptionRepository) GetByBarber(ctx context.Context, barberID string) (*domain.Subscription, error) {
	var m subscriptionModel
	err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainSubscription(m), nil
}

func (r *SubscriptionRepository) MarkCancelled(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&subscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       string(domain.SubscriptionCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		}).Error
}

func SubscriptionModel() interface{} { return &subscriptionModel{} }
