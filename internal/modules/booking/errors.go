package booking

import "errors"

var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidServiceIDs = errors.New("invalid service ids")
	ErrInvalidProductIDs = errors.New("invalid product ids")
	ErrDateOutOfRange    = errors.New("date outside booking horizon")
	ErrInvalidDate       = errors.New("invalid date")
	ErrSlotTaken         = errors.New("time slot already booked")
	ErrInvalidStatus     = errors.New("unknown booking status")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrForbidden         = errors.New("access denied")
)
