package domain

import "github.com/shopspring/decimal"

// Price represents a non-negative monetary amount.
// Price is immutable once constructed; repositories and callers share
// instances freely.
type Price struct {
	value decimal.Decimal
}

// NewPrice creates a Price from a decimal amount.
// Returns ErrNegativePrice when the amount is below zero.
func NewPrice(value decimal.Decimal) (*Price, error) {
	if value.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Price{value: value}, nil
}

// NewPriceFromString creates a Price from a decimal string such as "19.99".
func NewPriceFromString(s string) (*Price, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrInvalidPriceFormat
	}
	return NewPrice(value)
}

// Value returns the underlying decimal amount.
func (p *Price) Value() decimal.Decimal {
	return p.value
}

// Equals returns true if p and other represent the same amount.
func (p *Price) Equals(other *Price) bool {
	if other == nil {
		return false
	}
	return p.value.Equal(other.value)
}

// String returns the amount as a plain decimal string.
func (p *Price) String() string {
	return p.value.String()
}
