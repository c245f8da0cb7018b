package shop

import "zenchair/internal/domain"

type CreateShopRequest struct {
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	Address      string               `json:"address" binding:"required"`
	City         string               `json:"city" binding:"required"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	WorkingHours []domain.WorkingHour `json:"working_hours"`
}

type UpdateShopRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	IsOpen      *bool    `json:"is_open"`
}

type WorkingHoursRequest struct {
	WorkingHours []domain.WorkingHour `json:"working_hours" binding:"required"`
}

type VacationRequest struct {
	Dates []string `json:"dates"`
}

type GalleryAddRequest struct {
	Image string `json:"image" binding:"required"`
}

// ShopDetail is the public view of a shop with its catalog and reviews
// embedded.
type ShopDetail struct {
	domain.Shop
	Services []domain.Service `json:"services"`
	Products []domain.Product `json:"products"`
	Reviews  []domain.Review  `json:"reviews"`
}
