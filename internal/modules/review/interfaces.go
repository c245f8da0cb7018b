package review

import (
	"context"

	"zenchair/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) error
	ExistsByShopAndCustomer(ctx context.Context, shopID, customerID string) (bool, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Review, error)
	AggregateForShop(ctx context.Context, shopID string) (avg float64, count int64, err error)
}

type ShopRatingStore interface {
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	UpdateRating(ctx context.Context, shopID string, rating float64, totalReviews int) error
}

type UserNameReader interface {
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
