package domain

import "time"

type Review struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shop_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
