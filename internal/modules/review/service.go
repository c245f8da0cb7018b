package review

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"zenchair/internal/domain"
	"zenchair/internal/repository"
)

type Service struct {
	reviews ReviewRepository
	shops   ShopRatingStore
	users   UserNameReader
}

func NewService(reviews ReviewRepository, shops ShopRatingStore, users UserNameReader) *Service {
	return &Service{reviews: reviews, shops: shops, users: users}
}

// CreateReview records a customer's rating and refreshes the shop's
// aggregate. One review per customer per shop.
func (s *Service) CreateReview(ctx context.Context, customerID string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.shops.GetByID(ctx, req.ShopID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	exists, err := s.reviews.ExistsByShopAndCustomer(ctx, req.ShopID, customerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &domain.Review{
		ID:         fmt.Sprintf("review_%s", uuid.NewString()),
		ShopID:     req.ShopID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	if err := s.refreshShopRating(ctx, req.ShopID); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) refreshShopRating(ctx context.Context, shopID string) error {
	avg, count, err := s.reviews.AggregateForShop(ctx, shopID)
	if err != nil {
		return err
	}
	// one decimal place, same as the listing cards show
	rounded := math.Round(avg*10) / 10
	return s.shops.UpdateRating(ctx, shopID, rounded, int(count))
}

// ListByShop returns a shop's reviews, newest first, with author names.
func (s *Service) ListByShop(ctx context.Context, shopID string) ([]ReviewView, error) {
	reviews, err := s.reviews.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.CustomerID)
	}
	names, err := s.users.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		name := names[r.CustomerID]
		if name == "" {
			name = "Anonymous"
		}
		views = append(views, ReviewView{Review: r, CustomerName: name})
	}
	return views, nil
}
