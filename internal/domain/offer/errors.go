package offer

import "errors"

var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrOfferIDRequired   = errors.New("offer ID is required")
	ErrOwnerRequired     = errors.New("offer requires a partner and a menu item")
	ErrInvalidOfferPrice = errors.New("offer price must be greater than zero")
	ErrInvalidWindow     = errors.New("offer end time must be after start time")
	ErrAlreadyEnded      = errors.New("offer window has already ended")
	ErrInvalidOfferType  = errors.New("invalid offer type")
	ErrInvalidChannel    = errors.New("invalid ordering channel")
	ErrNotDiscounted     = errors.New("offer price must be below the original price")
	ErrSuperseded        = errors.New("a better offer already exists for this item")
)
