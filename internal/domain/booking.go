package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// OccupyingStatuses are the statuses under which a booking reserves its
// slot. Cancelled and completed bookings free the slot but stay on record.
func OccupyingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed}
}

// CanTransitionTo enforces the booking state machine:
// pending -> confirmed|cancelled, confirmed -> cancelled|completed,
// cancelled and completed are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled || next == BookingCompleted
	default:
		return false
	}
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `json:"id"`
	ShopID        string        `json:"shop_id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	BarberID      string        `json:"barber_id"`
	ServiceIDs    []string      `json:"service_ids"`
	ProductIDs    []string      `json:"product_ids"`
	Date          string        `json:"date"` // "2025-01-15"
	Time          string        `json:"time"` // "10:00"
	Status        BookingStatus `json:"status"`
	TotalPrice    float64       `json:"total_price"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
