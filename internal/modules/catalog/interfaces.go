package catalog

import (
	"context"

	"zenchair/internal/domain"
)

type ShopReader interface {
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
