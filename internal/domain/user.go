package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleBarber   UserRole = "barber"
	RoleAdmin    UserRole = "admin"
)

// GuestCustomerID marks bookings placed without an authenticated session.
const GuestCustomerID = "guest"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Picture      string    `json:"picture,omitempty"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
