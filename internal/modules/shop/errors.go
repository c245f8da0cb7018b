package shop

import "errors"

var (
	ErrShopNotFound        = errors.New("shop not found")
	ErrShopAlreadyExists   = errors.New("barber already has a shop")
	ErrNotOwner            = errors.New("shop belongs to another barber")
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrInvalidVacationDate = errors.New("invalid vacation date")
	ErrInvalidImageIndex   = errors.New("gallery image index out of range")
)
