package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
	"github.com/murkotick/sales-record-service/internal/app/sales/queries/get_sale"
)

// SpannerReadModel is an infrastructure adapter that satisfies
// contracts.ReadModel by composing the individual query implementations.
type SpannerReadModel struct {
	getQ *get_sale.SpannerGetSaleQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ: get_sale.NewSpannerGetSaleQuery(client),
	}
}

func (rm *SpannerReadModel) GetSale(ctx context.Context, saleID string) (*dto.SaleDTO, error) {
	return rm.getQ.GetSale(ctx, saleID)
}
