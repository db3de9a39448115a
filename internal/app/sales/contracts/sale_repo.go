package contracts

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/sales-record-service/internal/app/sales/domain"
)

// SaleRepo is the write-side repository interface for sales.
// Methods return Spanner mutations; they do not apply them. A sale and its
// items always travel together: the aggregate owns the item rows.
type SaleRepo interface {
	// InsertMuts returns the mutations that insert the sale row and one row
	// per item.
	InsertMuts(s *domain.Sale) []*spanner.Mutation

	// UpdateMuts returns mutations covering only what changed: dirty
	// sale-level fields per the ChangeTracker plus one mutation per dirty
	// item. Returns nil when nothing changed.
	UpdateMuts(s *domain.Sale) []*spanner.Mutation
}
