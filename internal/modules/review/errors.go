package review

import "errors"

var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed = errors.New("customer already reviewed this shop")
)
