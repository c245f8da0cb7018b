package booking

import (
	"context"

	"zenchair/internal/domain"
)

// ShopReader provides the shop config lookups the booking flow needs.
type ShopReader interface {
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
}

// ServiceCatalog resolves service ids scoped to one shop.
type ServiceCatalog interface {
	GetByIDsInShop(ctx context.Context, shopID string, ids []string) ([]domain.Service, error)
}

// ProductCatalog resolves product ids scoped to one shop.
type ProductCatalog interface {
	GetByIDsInShop(ctx context.Context, shopID string, ids []string) ([]domain.Product, error)
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	FindOccupant(ctx context.Context, shopID, date, slot string, statuses []domain.BookingStatus) (*domain.Booking, error)
	OccupiedTimes(ctx context.Context, shopID, date string, statuses []domain.BookingStatus) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByShop(ctx context.Context, shopID string) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
}

// Publisher pushes fire-and-forget events to a shop's live subscribers.
// The notification hub satisfies it.
type Publisher interface {
	Publish(shopID, event string, payload interface{})
}
