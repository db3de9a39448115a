package domain

import "errors"

// Domain errors for the Sale aggregate
var (
	// ErrSaleNotFound indicates that a sale with the given ID does not exist.
	ErrSaleNotFound = errors.New("sale not found")
)

// Domain errors for the Price value object
var (
	// ErrNegativePrice indicates an attempt to construct a negative price.
	ErrNegativePrice = errors.New("the price cannot be negative")

	// ErrInvalidPriceFormat indicates a price string that is not a valid decimal.
	ErrInvalidPriceFormat = errors.New("invalid price format")
)
