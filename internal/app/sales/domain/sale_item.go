package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxItemQuantity is the largest quantity a single sale item may carry.
const MaxItemQuantity = 20

// SaleItemStatus represents the lifecycle state of a sale item.
type SaleItemStatus string

const (
	// SaleItemStatusActive indicates an item that counts toward the sale.
	SaleItemStatusActive SaleItemStatus = "active"

	// SaleItemStatusCanceled indicates an item cancelled after the fact.
	SaleItemStatusCanceled SaleItemStatus = "canceled"
)

// SaleItem is one line of a Sale. It is owned exclusively by its parent
// aggregate: there is no mutation path outside the Sale, and only the
// status may change after construction. Quantity, unit price and discount
// are fixed at creation; the discount is computed by the calling workflow
// (see services.Selector) and passed in as a value.
type SaleItem struct {
	id        uuid.UUID
	product   ExternalIdentity
	quantity  int
	unitPrice *Price
	discount  decimal.Decimal
	status    SaleItemStatus
	dirty     bool
}

// NewSaleItem creates a SaleItem in Active status and validates it.
// On failure the item is not observable.
func NewSaleItem(id uuid.UUID, product ExternalIdentity, quantity int, unitPrice *Price, discount decimal.Decimal) (*SaleItem, error) {
	i := &SaleItem{
		id:        id,
		product:   product,
		quantity:  quantity,
		unitPrice: unitPrice,
		discount:  discount,
		status:    SaleItemStatusActive,
	}
	if verr := validateSaleItem(i); verr != nil {
		return nil, verr
	}
	return i, nil
}

// ReconstructSaleItem rehydrates a SaleItem from persisted state.
// Used by repositories when loading; no validation, no dirty tracking.
func ReconstructSaleItem(id uuid.UUID, product ExternalIdentity, quantity int, unitPrice *Price, discount decimal.Decimal, status SaleItemStatus) *SaleItem {
	return &SaleItem{
		id:        id,
		product:   product,
		quantity:  quantity,
		unitPrice: unitPrice,
		discount:  discount,
		status:    status,
	}
}

func (i *SaleItem) ID() uuid.UUID {
	return i.id
}

func (i *SaleItem) Product() ExternalIdentity {
	return i.product
}

func (i *SaleItem) Quantity() int {
	return i.quantity
}

func (i *SaleItem) UnitPrice() *Price {
	return i.unitPrice
}

func (i *SaleItem) Discount() decimal.Decimal {
	return i.discount
}

func (i *SaleItem) Status() SaleItemStatus {
	return i.status
}

// Dirty reports whether the item changed since it was constructed or
// loaded. Repositories use it to update only touched rows.
func (i *SaleItem) Dirty() bool {
	return i.dirty
}

// ChangeStatus overwrites the item status. Any status is reachable from any
// status; there is deliberately no transition guard.
func (i *SaleItem) ChangeStatus(status SaleItemStatus) {
	if i.status != status {
		i.dirty = true
	}
	i.status = status
}

// TotalPrice returns unit price times quantity minus discount.
// It is recomputed on every call and never cached.
func (i *SaleItem) TotalPrice() decimal.Decimal {
	gross := i.unitPrice.Value().Mul(decimal.NewFromInt(int64(i.quantity)))
	return gross.Sub(i.discount)
}
