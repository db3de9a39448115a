package contracts

import (
	"context"

	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
)

// ReadModel is the query-side port. GetSale returns domain.ErrSaleNotFound
// when no sale exists for the id.
type ReadModel interface {
	GetSale(ctx context.Context, saleID string) (*dto.SaleDTO, error)
}
