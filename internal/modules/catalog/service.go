package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zenchair/internal/domain"
	"zenchair/internal/repository"
)

type Service struct {
	shops    ShopReader
	services ServiceRepository
	products ProductRepository
}

func NewService(shops ShopReader, services ServiceRepository, products ProductRepository) *Service {
	return &Service{shops: shops, services: services, products: products}
}

func (s *Service) ownedShop(ctx context.Context, barberID, shopID string) error {
	sh, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrShopNotFound
		}
		return err
	}
	if sh.BarberID != barberID {
		return ErrNotOwner
	}
	return nil
}

// CreateService adds a bookable service to the barber's shop.
func (s *Service) CreateService(ctx context.Context, barberID, shopID string, req CreateServiceRequest) (*domain.Service, error) {
	if err := s.ownedShop(ctx, barberID, shopID); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		ID:          fmt.Sprintf("service_%s", uuid.NewString()),
		ShopID:      shopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServices is public: anyone browsing a shop sees its services.
func (s *Service) ListServices(ctx context.Context, shopID string) ([]domain.Service, error) {
	return s.services.ListByShop(ctx, shopID)
}

func (s *Service) UpdateService(ctx context.Context, barberID, serviceID string, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if err := s.ownedShop(ctx, barberID, svc.ShopID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, barberID, serviceID string) error {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrServiceNotFound
		}
		return err
	}
	if err := s.ownedShop(ctx, barberID, svc.ShopID); err != nil {
		return err
	}
	return s.services.Delete(ctx, serviceID)
}

// CreateProduct adds a retail product to the barber's shop.
func (s *Service) CreateProduct(ctx context.Context, barberID, shopID string, req CreateProductRequest) (*domain.Product, error) {
	if err := s.ownedShop(ctx, barberID, shopID); err != nil {
		return nil, err
	}

	p := &domain.Product{
		ID:          fmt.Sprintf("product_%s", uuid.NewString()),
		ShopID:      shopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Quantity:    req.Quantity,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context, shopID string) ([]domain.Product, error) {
	return s.products.ListByShop(ctx, shopID)
}

func (s *Service) UpdateProduct(ctx context.Context, barberID, productID string, req UpdateProductRequest) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := s.ownedShop(ctx, barberID, p.ShopID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, barberID, productID string) error {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrProductNotFound
		}
		return err
	}
	if err := s.ownedShop(ctx, barberID, p.ShopID); err != nil {
		return err
	}
	return s.products.Delete(ctx, productID)
}
