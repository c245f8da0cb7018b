package shop

import (
	"context"

	"zenchair/internal/domain"
)

type ShopRepository interface {
	Create(ctx context.Context, s *domain.Shop) error
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	GetByBarberID(ctx context.Context, barberID string) (*domain.Shop, error)
	ExistsForBarber(ctx context.Context, barberID string) (bool, error)
	Update(ctx context.Context, s *domain.Shop) error
	ListByCity(ctx context.Context, city string, limit int) ([]domain.Shop, error)
	ReplaceWorkingHours(ctx context.Context, shopID string, hours []domain.WorkingHour) error
	SetVacationDates(ctx context.Context, shopID string, dates []string) error
	SetGalleryImages(ctx context.Context, shopID string, images []string) error
}

type ServiceLister interface {
	ListByShop(ctx context.Context, shopID string) ([]domain.Service, error)
}

type ProductLister interface {
	ListByShop(ctx context.Context, shopID string) ([]domain.Product, error)
}

type ReviewLister interface {
	ListByShop(ctx context.Context, shopID string) ([]domain.Review, error)
}
