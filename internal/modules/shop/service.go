package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zenchair/internal/domain"
	"zenchair/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	shops    ShopRepository
	services ServiceLister
	products ProductLister
	reviews  ReviewLister
}

func NewService(shops ShopRepository, services ServiceLister, products ProductLister, reviews ReviewLister) *Service {
	return &Service{shops: shops, services: services, products: products, reviews: reviews}
}

func validateWorkingHours(hours []domain.WorkingHour) error {
	seen := make(map[int]bool, len(hours))
	for _, h := range hours {
		if h.Day < 0 || h.Day > 6 {
			return ErrInvalidWorkingHours
		}
		if seen[h.Day] {
			return ErrInvalidWorkingHours
		}
		seen[h.Day] = true
		if h.IsClosed {
			continue
		}
		open, err := time.Parse(timeLayout, h.OpenTime)
		if err != nil {
			return ErrInvalidWorkingHours
		}
		closeAt, err := time.Parse(timeLayout, h.CloseTime)
		if err != nil {
			return ErrInvalidWorkingHours
		}
		if !open.Before(closeAt) {
			return ErrInvalidWorkingHours
		}
	}
	return nil
}

// CreateShop registers the barber's shop. A barber owns at most one shop.
func (s *Service) CreateShop(ctx context.Context, barberID string, req CreateShopRequest) (*domain.Shop, error) {
	exists, err := s.shops.ExistsForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrShopAlreadyExists
	}

	if err := validateWorkingHours(req.WorkingHours); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sh := &domain.Shop{
		ID:            fmt.Sprintf("shop_%s", uuid.NewString()),
		BarberID:      barberID,
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Phone:         req.Phone,
		Email:         req.Email,
		GalleryImages: []string{},
		WorkingHours:  req.WorkingHours,
		IsOpen:        true,
		VacationDates: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.shops.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

// MyShop returns the shop owned by the barber.
func (s *Service) MyShop(ctx context.Context, barberID string) (*domain.Shop, error) {
	sh, err := s.shops.GetByBarberID(ctx, barberID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return sh, nil
}

// GetShop returns the public view of a shop with its catalog.
func (s *Service) GetShop(ctx context.Context, id string) (*ShopDetail, error) {
	sh, err := s.shops.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	services, err := s.services.ListByShop(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListByShop(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByShop(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ShopDetail{Shop: *sh, Services: services, Products: products, Reviews: reviews}, nil
}

// ListByCity returns shops in a city; an empty city lists all shops.
func (s *Service) ListByCity(ctx context.Context, city string, limit int) ([]domain.Shop, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.shops.ListByCity(ctx, city, limit)
}

func (s *Service) ownedShop(ctx context.Context, barberID, shopID string) (*domain.Shop, error) {
	sh, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if sh.BarberID != barberID {
		return nil, ErrNotOwner
	}
	return sh, nil
}

// UpdateShop applies the provided fields to the barber's shop.
func (s *Service) UpdateShop(ctx context.Context, barberID, shopID string, req UpdateShopRequest) (*domain.Shop, error) {
	sh, err := s.ownedShop(ctx, barberID, shopID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.Description != nil {
		sh.Description = *req.Description
	}
	if req.Address != nil {
		sh.Address = *req.Address
	}
	if req.City != nil {
		sh.City = *req.City
	}
	if req.Latitude != nil {
		sh.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		sh.Longitude = *req.Longitude
	}
	if req.Phone != nil {
		sh.Phone = *req.Phone
	}
	if req.Email != nil {
		sh.Email = *req.Email
	}
	if req.IsOpen != nil {
		sh.IsOpen = *req.IsOpen
	}
	sh.UpdatedAt = time.Now().UTC()

	if err := s.shops.Update(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

// SetWorkingHours replaces the shop's weekly schedule.
func (s *Service) SetWorkingHours(ctx context.Context, barberID, shopID string, hours []domain.WorkingHour) error {
	if _, err := s.ownedShop(ctx, barberID, shopID); err != nil {
		return err
	}
	if err := validateWorkingHours(hours); err != nil {
		return err
	}
	return s.shops.ReplaceWorkingHours(ctx, shopID, hours)
}

// SetVacationDates replaces the full set of vacation dates.
func (s *Service) SetVacationDates(ctx context.Context, barberID, shopID string, dates []string) error {
	if _, err := s.ownedShop(ctx, barberID, shopID); err != nil {
		return err
	}
	for _, d := range dates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return ErrInvalidVacationDate
		}
	}
	if dates == nil {
		dates = []string{}
	}
	return s.shops.SetVacationDates(ctx, shopID, dates)
}

// AddGalleryImage appends an image URL to the shop's gallery.
func (s *Service) AddGalleryImage(ctx context.Context, barberID, shopID, image string) ([]string, error) {
	sh, err := s.ownedShop(ctx, barberID, shopID)
	if err != nil {
		return nil, err
	}
	images := append(sh.GalleryImages, image)
	if err := s.shops.SetGalleryImages(ctx, shopID, images); err != nil {
		return nil, err
	}
	return images, nil
}

// RemoveGalleryImage drops the image at the given position.
func (s *Service) RemoveGalleryImage(ctx context.Context, barberID, shopID string, index int) ([]string, error) {
	sh, err := s.ownedShop(ctx, barberID, shopID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sh.GalleryImages) {
		return nil, ErrInvalidImageIndex
	}
	images := append(sh.GalleryImages[:index:index], sh.GalleryImages[index+1:]...)
	if err := s.shops.SetGalleryImages(ctx, shopID, images); err != nil {
		return nil, err
	}
	return images, nil
}
