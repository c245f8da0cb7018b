package favorite

import (
	"context"
	"errors"

	"zenchair/internal/domain"
	"zenchair/internal/repository"
)

var ErrShopNotFound = errors.New("shop not found")

const recentShopLimit = 10

type FavoriteRepository interface {
	Add(ctx context.Context, userID, shopID string) error
	Remove(ctx context.Context, userID, shopID string) error
	Exists(ctx context.Context, userID, shopID string) (bool, error)
	ShopIDsByUser(ctx context.Context, userID string) ([]string, error)
}

type ShopReader interface {
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Shop, error)
}

type RecentVisitSource interface {
	RecentShopIDs(ctx context.Context, customerID string, limit int) ([]string, error)
}

type Service struct {
	favorites FavoriteRepository
	shops     ShopReader
	bookings  RecentVisitSource
}

func NewService(favorites FavoriteRepository, shops ShopReader, bookings RecentVisitSource) *Service {
	return &Service{favorites: favorites, shops: shops, bookings: bookings}
}

// Add marks a shop as a favorite. Adding twice is a no-op.
func (s *Service) Add(ctx context.Context, userID, shopID string) error {
	if _, err := s.shops.GetByID(ctx, shopID); err != nil {
		if repository.IsNotFound(err) {
			return ErrShopNotFound
		}
		return err
	}
	return s.favorites.Add(ctx, userID, shopID)
}

func (s *Service) Remove(ctx context.Context, userID, shopID string) error {
	return s.favorites.Remove(ctx, userID, shopID)
}

// List returns the user's favorite shops. Favorites pointing at deleted
// shops are silently skipped.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Shop, error) {
	ids, err := s.favorites.ShopIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Shop{}, nil
	}
	return s.shops.ListByIDs(ctx, ids)
}

// Recent returns shops the customer booked most recently, newest first.
func (s *Service) Recent(ctx context.Context, userID string) ([]domain.Shop, error) {
	ids, err := s.bookings.RecentShopIDs(ctx, userID, recentShopLimit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Shop{}, nil
	}

	shops, err := s.shops.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// ListByIDs does not preserve order; restore booking recency.
	byID := make(map[string]domain.Shop, len(shops))
	for _, sh := range shops {
		byID[sh.ID] = sh
	}
	ordered := make([]domain.Shop, 0, len(ids))
	for _, id := range ids {
		if sh, ok := byID[id]; ok {
			ordered = append(ordered, sh)
		}
	}
	return ordered, nil
}
