package repo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/models/m_sale"
	"github.com/murkotick/sales-record-service/internal/models/m_sale_item"
)

func buildSale(t *testing.T) *domain.Sale {
	t.Helper()

	unit, err := domain.NewPriceFromString("10.00")
	require.NoError(t, err)

	item, err := domain.NewSaleItem(uuid.New(),
		domain.NewExternalIdentity(uuid.New(), "Keyboard"),
		5, unit, decimal.NewFromInt(5))
	require.NoError(t, err)

	s, err := domain.NewSale(uuid.New(), uuid.New(),
		domain.NewExternalIdentity(uuid.New(), "Alice"),
		domain.NewExternalIdentity(uuid.New(), "Downtown"),
		[]*domain.SaleItem{item},
		time.Now().UTC())
	require.NoError(t, err)
	return s
}

// TestInsertMuts verifies the row values built for a new sale.
func TestInsertMuts(t *testing.T) {
	r := NewSaleRepo()
	s := buildSale(t)
	item := s.Items()[0]

	// Inspect values map (test-friendly)
	values := buildSaleInsertValues(s)
	require.NotNil(t, values)

	assert.Equal(t, s.ID().String(), values[m_sale.ColSaleID])
	assert.Equal(t, s.Number().String(), values[m_sale.ColNumber])
	assert.Equal(t, s.Customer().ID().String(), values[m_sale.ColCustomerID])
	assert.Equal(t, "Alice", values[m_sale.ColCustomerName])
	assert.Equal(t, "Downtown", values[m_sale.ColBranchName])
	assert.Equal(t, "45", values[m_sale.ColTotalAmount])
	assert.Equal(t, "active", values[m_sale.ColStatus])

	itemValues := buildItemInsertValues(s, item)
	require.NotNil(t, itemValues)

	assert.Equal(t, s.ID().String(), itemValues[m_sale_item.ColSaleID])
	assert.Equal(t, item.ID().String(), itemValues[m_sale_item.ColItemID])
	assert.Equal(t, "Keyboard", itemValues[m_sale_item.ColProductName])
	assert.Equal(t, int64(5), itemValues[m_sale_item.ColQuantity])
	assert.Equal(t, "10", itemValues[m_sale_item.ColUnitPrice])
	assert.Equal(t, "5", itemValues[m_sale_item.ColDiscount])
	assert.Equal(t, "45", itemValues[m_sale_item.ColTotalPrice])

	muts := r.InsertMuts(s)
	require.Len(t, muts, 2)
}

func TestInsertMuts_NilSale(t *testing.T) {
	assert.Nil(t, NewSaleRepo().InsertMuts(nil))
}

// UpdateMuts reflects only what actually changed.
func TestUpdateMuts(t *testing.T) {
	r := NewSaleRepo()
	s := buildSale(t)

	t.Run("pristine sale yields nothing", func(t *testing.T) {
		assert.Nil(t, r.UpdateMuts(s))
	})

	t.Run("status change yields one sale mutation", func(t *testing.T) {
		require.NoError(t, s.Update(s.Customer(), s.Branch(), domain.SaleStatusCanceled))

		muts := r.UpdateMuts(s)
		require.Len(t, muts, 1)
	})

	t.Run("dirty item adds an item mutation", func(t *testing.T) {
		item := s.Items()[0]
		s.ChangeItemStatus(item.ID(), domain.SaleItemStatusCanceled)

		muts := r.UpdateMuts(s)
		require.Len(t, muts, 2)
	})
}

func TestUpdateMuts_ItemOnly(t *testing.T) {
	r := NewSaleRepo()
	s := buildSale(t)
	item := s.Items()[0]

	s.ChangeItemStatus(item.ID(), domain.SaleItemStatusCanceled)

	muts := r.UpdateMuts(s)
	require.Len(t, muts, 1)
}
