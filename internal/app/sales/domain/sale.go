package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field constants for change tracking
const (
	FieldCustomer = "customer"
	FieldBranch   = "branch"
	FieldStatus   = "status"
)

// SaleStatus represents the lifecycle state of a sale.
type SaleStatus string

const (
	// SaleStatusActive indicates a sale in force.
	SaleStatusActive SaleStatus = "active"

	// SaleStatusCanceled indicates a sale cancelled as a whole.
	SaleStatusCanceled SaleStatus = "canceled"
)

// Sale is the aggregate root of the sales domain. It owns an ordered list of
// SaleItems and is mutated only through its methods; every mutation
// re-validates the whole aggregate before committing, so a failed update
// leaves the prior state intact.
type Sale struct {
	id       uuid.UUID
	number   uuid.UUID
	date     time.Time
	customer ExternalIdentity
	branch   ExternalIdentity
	items    []*SaleItem
	status   SaleStatus
	changes  *ChangeTracker
}

// NewSale creates a Sale in Active status dated now and validates all
// invariants. On failure no partially-constructed Sale is observable.
func NewSale(id, number uuid.UUID, customer, branch ExternalIdentity, items []*SaleItem, now time.Time) (*Sale, error) {
	s := &Sale{
		id:       id,
		number:   number,
		date:     now,
		customer: customer,
		branch:   branch,
		items:    items,
		status:   SaleStatusActive,
		changes:  NewChangeTracker(),
	}
	if verr := validateSale(s); verr != nil {
		return nil, verr
	}
	return s, nil
}

// ReconstructSale rehydrates a Sale from persisted state.
// Used by repositories when loading from the database.
func ReconstructSale(id, number uuid.UUID, date time.Time, customer, branch ExternalIdentity, items []*SaleItem, status SaleStatus) *Sale {
	return &Sale{
		id:       id,
		number:   number,
		date:     date,
		customer: customer,
		branch:   branch,
		items:    items,
		status:   status,
		changes:  NewChangeTracker(),
	}
}

// Getters

func (s *Sale) ID() uuid.UUID {
	return s.id
}

func (s *Sale) Number() uuid.UUID {
	return s.number
}

func (s *Sale) Date() time.Time {
	return s.date
}

func (s *Sale) Customer() ExternalIdentity {
	return s.customer
}

func (s *Sale) Branch() ExternalIdentity {
	return s.branch
}

// Items returns the sale's line items in insertion order. The slice is the
// aggregate's own; callers must not modify it.
func (s *Sale) Items() []*SaleItem {
	return s.items
}

func (s *Sale) Status() SaleStatus {
	return s.status
}

func (s *Sale) Changes() *ChangeTracker {
	return s.changes
}

// TotalAmount returns the sum of every item's total price, recomputed on
// each call. Canceled items still count; cancellation is a status, not a
// removal.
func (s *Sale) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, i := range s.items {
		total = total.Add(i.TotalPrice())
	}
	return total
}

// Business Methods

// Update replaces customer, branch and status, then re-validates the whole
// aggregate. On validation failure every field is restored, so no torn
// update survives.
func (s *Sale) Update(customer, branch ExternalIdentity, status SaleStatus) error {
	prevCustomer, prevBranch, prevStatus := s.customer, s.branch, s.status

	s.customer = customer
	s.branch = branch
	s.status = status

	if verr := validateSale(s); verr != nil {
		s.customer = prevCustomer
		s.branch = prevBranch
		s.status = prevStatus
		return verr
	}

	if customer != prevCustomer {
		s.changes.MarkDirty(FieldCustomer)
	}
	if branch != prevBranch {
		s.changes.MarkDirty(FieldBranch)
	}
	if status != prevStatus {
		s.changes.MarkDirty(FieldStatus)
	}
	return nil
}

// ChangeItemStatus finds the item by id and overwrites its status. An
// unknown item id is a silent no-op, not an error; the method returns the
// affected item (nil when not found) so the calling workflow can decide
// whether the change warrants an event.
func (s *Sale) ChangeItemStatus(itemID uuid.UUID, status SaleItemStatus) *SaleItem {
	for _, i := range s.items {
		if i.id == itemID {
			i.ChangeStatus(status)
			return i
		}
	}
	return nil
}

// IsCanceled returns true if the sale as a whole has been cancelled.
func (s *Sale) IsCanceled() bool {
	return s.status == SaleStatusCanceled
}
