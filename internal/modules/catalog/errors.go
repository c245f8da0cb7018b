package catalog

import "errors"

var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("shop belongs to another barber")
)
