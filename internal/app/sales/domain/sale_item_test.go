package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, s string) *Price {
	t.Helper()
	p, err := NewPriceFromString(s)
	require.NoError(t, err)
	return p
}

func testProduct() ExternalIdentity {
	return NewExternalIdentity(uuid.New(), "Test Product")
}

func TestNewSaleItem(t *testing.T) {
	item, err := NewSaleItem(uuid.New(), testProduct(), 3, mustPrice(t, "10.00"), decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, SaleItemStatusActive, item.Status())
	assert.False(t, item.Dirty())
	assert.Equal(t, 3, item.Quantity())
}

func TestNewSaleItem_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1, 21, 25} {
		item, err := NewSaleItem(uuid.New(), testProduct(), quantity, mustPrice(t, "10.00"), decimal.Zero)
		assert.Nil(t, item, "quantity %d", quantity)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "quantity %d", quantity)
		assert.Equal(t, "quantity", verr.Errors[0].Field)
	}
}

func TestNewSaleItem_MissingProduct(t *testing.T) {
	_, err := NewSaleItem(uuid.New(), ExternalIdentity{}, 1, mustPrice(t, "10.00"), decimal.Zero)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "product", verr.Errors[0].Field)
}

func TestNewSaleItem_MissingUnitPrice(t *testing.T) {
	_, err := NewSaleItem(uuid.New(), testProduct(), 1, nil, decimal.Zero)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "unitPrice", verr.Errors[0].Field)
}

// Totals across the quantity tiers: below 4 full price, 4 to 9 minus 10%,
// 10 to 20 minus 20%. The discount arrives precomputed; the item only
// subtracts it.
func TestSaleItemTotalPrice(t *testing.T) {
	unit := mustPrice(t, "10.00")

	cases := []struct {
		name     string
		quantity int
		discount string
		want     string
	}{
		{"below discount threshold", 3, "0", "30"},
		{"ten percent tier", 5, "5", "45"},
		{"twenty percent tier lower bound", 10, "20", "80"},
		{"twenty percent tier upper bound", 20, "40", "160"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			discount, err := decimal.NewFromString(tc.discount)
			require.NoError(t, err)

			item, err := NewSaleItem(uuid.New(), testProduct(), tc.quantity, unit, discount)
			require.NoError(t, err)

			assert.Equal(t, tc.want, item.TotalPrice().String())
		})
	}
}

func TestSaleItemChangeStatus(t *testing.T) {
	item, err := NewSaleItem(uuid.New(), testProduct(), 2, mustPrice(t, "5.00"), decimal.Zero)
	require.NoError(t, err)

	item.ChangeStatus(SaleItemStatusCanceled)
	assert.Equal(t, SaleItemStatusCanceled, item.Status())
	assert.True(t, item.Dirty())

	// cancelling again stays canceled
	item.ChangeStatus(SaleItemStatusCanceled)
	assert.Equal(t, SaleItemStatusCanceled, item.Status())

	// and the status can go back; no transition guard
	item.ChangeStatus(SaleItemStatusActive)
	assert.Equal(t, SaleItemStatusActive, item.Status())
}

func TestSaleItemChangeStatus_SameStatusStaysClean(t *testing.T) {
	item, err := NewSaleItem(uuid.New(), testProduct(), 2, mustPrice(t, "5.00"), decimal.Zero)
	require.NoError(t, err)

	item.ChangeStatus(SaleItemStatusActive)
	assert.False(t, item.Dirty())
}

func TestSaleItemTotalPrice_CanceledItemStillComputes(t *testing.T) {
	item, err := NewSaleItem(uuid.New(), testProduct(), 4, mustPrice(t, "10.00"), decimal.NewFromInt(4))
	require.NoError(t, err)

	item.ChangeStatus(SaleItemStatusCanceled)
	assert.Equal(t, "36", item.TotalPrice().String())
}
