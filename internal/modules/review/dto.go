package review

import "zenchair/internal/domain"

type CreateReviewRequest struct {
	ShopID  string `json:"shop_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewView is a review with the author's display name resolved.
type ReviewView struct {
	domain.Review
	CustomerName string `json:"customer_name"`
}
