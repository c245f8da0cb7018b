package subscription

import "errors"

var (
	ErrInvalidPlan          = errors.New("unknown subscription plan")
	ErrAlreadySubscribed    = errors.New("barber already has an active subscription")
	ErrNoSubscription       = errors.New("no subscription found")
	ErrNoActiveSubscription = errors.New("no active subscription to cancel")
	ErrPaymentDeclined      = errors.New("payment was declined")
)
