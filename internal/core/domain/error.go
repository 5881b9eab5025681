package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Record errors.
	ErrInvalidOrder            = errors.New("order is not valid")
	ErrUnknownOrderStatus      = errors.New("unknown order status")
	ErrUnknownDeliveryType     = errors.New("unknown delivery type")
	ErrUnknownPaymentMethod    = errors.New("unknown payment method")
	ErrUnknownRestaurantStatus = errors.New("unknown restaurant status")
	ErrInvalidUserStat         = errors.New("user stat is not valid")

	// * Invoice errors.
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrNegativePrice   = errors.New("item price must not be negative")

	// * Ranking errors.
	ErrInvalidThreshold = errors.New("cancel threshold must not be negative")
)
