package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
)

// ErrNoDiscountStrategy indicates that no tier in the rule set matched a
// quantity. This is a defect in the rule configuration, not a user input
// error: the built-in set covers the whole legal quantity domain, so hitting
// this means the set was misconfigured or the caller bypassed item
// validation. It is fatal and never retried.
var ErrNoDiscountStrategy = errors.New("no discount strategy was applied")

// DiscountStrategy is one quantity tier of the discount rule set: an
// applicability predicate over quantity and the discount calculation for
// quantities in that tier.
type DiscountStrategy interface {
	Applies(quantity int) bool
	Calculate(quantity int, unitPrice *domain.Price) decimal.Decimal
}

var (
	tenPercent    = decimal.New(10, -2) // 0.10
	twentyPercent = decimal.New(20, -2) // 0.20
)

// NoDiscountStrategy is the tier for quantities 1 to 3: full price, zero
// discount. Quantities at or below zero fall outside every tier and fail
// selection.
type NoDiscountStrategy struct{}

func (NoDiscountStrategy) Applies(quantity int) bool {
	return quantity >= 1 && quantity < 4
}

func (NoDiscountStrategy) Calculate(quantity int, unitPrice *domain.Price) decimal.Decimal {
	return decimal.Zero
}

// TenPercentDiscountStrategy is the tier for quantities from 4 up to but not
// including 10: 10% of unit price times quantity.
type TenPercentDiscountStrategy struct{}

func (TenPercentDiscountStrategy) Applies(quantity int) bool {
	return quantity >= 4 && quantity < 10
}

func (TenPercentDiscountStrategy) Calculate(quantity int, unitPrice *domain.Price) decimal.Decimal {
	return gross(quantity, unitPrice).Mul(tenPercent)
}

// TwentyPercentDiscountStrategy is the tier for quantities from 10 to 20
// inclusive: 20% of unit price times quantity.
type TwentyPercentDiscountStrategy struct{}

func (TwentyPercentDiscountStrategy) Applies(quantity int) bool {
	return quantity >= 10 && quantity <= 20
}

func (TwentyPercentDiscountStrategy) Calculate(quantity int, unitPrice *domain.Price) decimal.Decimal {
	return gross(quantity, unitPrice).Mul(twentyPercent)
}

func gross(quantity int, unitPrice *domain.Price) decimal.Decimal {
	return unitPrice.Value().Mul(decimal.NewFromInt(int64(quantity)))
}

// Selector holds an ordered rule set and picks the first applicable tier for
// a quantity. Tiers must not overlap and must jointly cover the legal
// quantity domain; the selector scans, it does not enforce coverage.
type Selector struct {
	strategies []DiscountStrategy
}

// NewSelector builds a selector over the given tiers, evaluated in order.
func NewSelector(strategies ...DiscountStrategy) *Selector {
	return &Selector{strategies: strategies}
}

// DefaultSelector builds the built-in three-tier set: no discount from 1 to
// 3, 10% from 4 to 9, 20% from 10 to 20.
func DefaultSelector() *Selector {
	return NewSelector(
		NoDiscountStrategy{},
		TenPercentDiscountStrategy{},
		TwentyPercentDiscountStrategy{},
	)
}

// Select returns the first tier whose predicate holds for the quantity, or
// ErrNoDiscountStrategy when none does.
func (s *Selector) Select(quantity int) (DiscountStrategy, error) {
	for _, strategy := range s.strategies {
		if strategy.Applies(quantity) {
			return strategy, nil
		}
	}
	return nil, fmt.Errorf("%w: quantity %d", ErrNoDiscountStrategy, quantity)
}
