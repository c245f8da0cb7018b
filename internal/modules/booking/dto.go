package booking

type CreateBookingRequest struct {
	ShopID        string   `json:"shop_id" binding:"required"`
	ServiceIDs    []string `json:"service_ids"`
	ProductIDs    []string `json:"product_ids"`
	Date          string   `json:"date" binding:"required"` // "2025-01-15"
	Time          string   `json:"time" binding:"required"` // "10:00"
	CustomerName  string   `json:"customer_name" binding:"required"`
	CustomerPhone string   `json:"customer_phone" binding:"required"`
	Notes         string   `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NewBookingPayload is the summary pushed to shop subscribers on creation.
// Never the full internal record.
type NewBookingPayload struct {
	BookingID     string   `json:"booking_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Services      []string `json:"services"`
	TotalPrice    float64  `json:"total_price"`
}

// StatusPayload accompanies booking_cancelled and booking_updated events.
type StatusPayload struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"available_slots"`
	Message        string   `json:"message,omitempty"`
}
