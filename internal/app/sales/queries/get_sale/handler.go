package get_sale

import (
	"context"

	contracts "github.com/murkotick/sales-record-service/internal/app/sales/contracts"
	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, saleID string) (*dto.SaleDTO, error) {
	return h.readModel.GetSale(ctx, saleID)
}
