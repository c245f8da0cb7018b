package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive        SubscriptionStatus = "active"
	SubscriptionPaused        SubscriptionStatus = "paused"
	SubscriptionCancelled     SubscriptionStatus = "cancelled"
	SubscriptionPaymentFailed SubscriptionStatus = "payment_failed"
)

type SubscriptionPlan string

const (
	PlanMonthly SubscriptionPlan = "monthly"
	PlanYearly  SubscriptionPlan = "yearly"
)

type Subscription struct {
	ID              string             `json:"id"`
	BarberID        string             `json:"barber_id"`
	Plan            SubscriptionPlan   `json:"plan"`
	Price           float64            `json:"price"` // ILS
	Status          SubscriptionStatus `json:"status"`
	StartDate       time.Time          `json:"start_date"`
	RenewalDate     time.Time          `json:"renewal_date"`
	StandingOrderID string             `json:"standing_order_id,omitempty"`
	PaymentToken    string             `json:"-"`
	TransactionID   string             `json:"transaction_id,omitempty"`
	CancelledAt     *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
