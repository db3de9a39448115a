package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/models/m_sale"
	"github.com/murkotick/sales-record-service/internal/models/m_sale_item"
)

// SaleRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type SaleRepo struct{}

func NewSaleRepo() *SaleRepo {
	return &SaleRepo{}
}

// buildSaleInsertValues constructs the values map for the sale row.
// Unexported so tests in this package can inspect the map without relying
// on spanner.Mutation internals.
func buildSaleInsertValues(s *domain.Sale) map[string]interface{} {
	return m_sale.BuildInsertMap(
		s.ID().String(),
		s.Number().String(),
		s.Date().UTC(),
		s.Customer().ID().String(),
		s.Customer().Name(),
		s.Branch().ID().String(),
		s.Branch().Name(),
		s.TotalAmount().String(),
		string(s.Status()),
	)
}

func buildItemInsertValues(s *domain.Sale, i *domain.SaleItem) map[string]interface{} {
	return m_sale_item.BuildInsertMap(
		s.ID().String(),
		i.ID().String(),
		i.Product().ID().String(),
		i.Product().Name(),
		int64(i.Quantity()),
		i.UnitPrice().String(),
		i.Discount().String(),
		i.TotalPrice().String(),
		string(i.Status()),
	)
}

// InsertMuts builds the insert mutations for a new sale: one for the sale
// row, one per item row.
func (r *SaleRepo) InsertMuts(s *domain.Sale) []*spanner.Mutation {
	if s == nil {
		return nil
	}

	muts := make([]*spanner.Mutation, 0, 1+len(s.Items()))
	muts = append(muts, m_sale.InsertMutation(buildSaleInsertValues(s)))
	for _, i := range s.Items() {
		muts = append(muts, m_sale_item.InsertMutation(buildItemInsertValues(s, i)))
	}
	return muts
}

// UpdateMuts builds update mutations from the aggregate's change tracking:
// dirty sale-level fields in one mutation, plus one mutation per dirty item.
// Returns nil when nothing changed.
func (r *SaleRepo) UpdateMuts(s *domain.Sale) []*spanner.Mutation {
	if s == nil {
		return nil
	}

	var muts []*spanner.Mutation

	if s.Changes() != nil && s.Changes().HasChanges() {
		updates := map[string]interface{}{}

		if s.Changes().Dirty(domain.FieldCustomer) {
			updates[m_sale.ColCustomerID] = s.Customer().ID().String()
			updates[m_sale.ColCustomerName] = s.Customer().Name()
		}
		if s.Changes().Dirty(domain.FieldBranch) {
			updates[m_sale.ColBranchID] = s.Branch().ID().String()
			updates[m_sale.ColBranchName] = s.Branch().Name()
		}
		if s.Changes().Dirty(domain.FieldStatus) {
			updates[m_sale.ColStatus] = string(s.Status())
		}

		if len(updates) > 0 {
			muts = append(muts, m_sale.UpdateMutation(s.ID().String(), updates))
		}
	}

	for _, i := range s.Items() {
		if !i.Dirty() {
			continue
		}
		muts = append(muts, m_sale_item.UpdateMutation(s.ID().String(), i.ID().String(),
			map[string]interface{}{m_sale_item.ColStatus: string(i.Status())}))
	}

	return muts
}
