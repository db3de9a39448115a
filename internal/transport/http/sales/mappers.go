package sales

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/create_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/update_sale"
)

func mapCreateSaleRequest(req CreateSaleRequest) create_sale.Request {
	items := make([]create_sale.ItemRequest, 0, len(req.Items))
	for _, ir := range req.Items {
		items = append(items, create_sale.ItemRequest{
			ProductName: ir.ProductName,
			Quantity:    ir.Quantity,
			UnitPrice:   ir.UnitPrice,
		})
	}
	return create_sale.Request{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		BranchName:   req.BranchName,
		Items:        items,
	}
}

func mapUpdateSaleRequest(saleID uuid.UUID, req UpdateSaleRequest) (update_sale.Request, error) {
	status, err := parseSaleStatus(req.Status)
	if err != nil {
		return update_sale.Request{}, err
	}

	items := make([]update_sale.ItemRequest, 0, len(req.Items))
	for _, ir := range req.Items {
		itemStatus, err := parseItemStatus(ir.Status)
		if err != nil {
			return update_sale.Request{}, err
		}
		items = append(items, update_sale.ItemRequest{ID: ir.ID, Status: itemStatus})
	}

	return update_sale.Request{
		SaleID:       saleID,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		BranchName:   req.BranchName,
		Status:       status,
		Items:        items,
	}, nil
}

func parseSaleStatus(s string) (domain.SaleStatus, error) {
	switch domain.SaleStatus(s) {
	case domain.SaleStatusActive, domain.SaleStatusCanceled:
		return domain.SaleStatus(s), nil
	}
	return "", fmt.Errorf("invalid sale status %q", s)
}

func parseItemStatus(s string) (domain.SaleItemStatus, error) {
	switch domain.SaleItemStatus(s) {
	case domain.SaleItemStatusActive, domain.SaleItemStatusCanceled:
		return domain.SaleItemStatus(s), nil
	}
	return "", fmt.Errorf("invalid sale item status %q", s)
}

func mapSaleDTOToResponse(in *dto.SaleDTO) SaleResponse {
	out := SaleResponse{
		ID:           in.SaleID,
		Number:       in.Number,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		BranchID:     in.BranchID,
		BranchName:   in.BranchName,
		TotalAmount:  in.TotalAmount,
		Status:       in.Status,
		Items:        make([]SaleItemResponse, 0, len(in.Items)),
	}
	if in.Date != nil {
		out.Date = *in.Date
	}
	for _, i := range in.Items {
		out.Items = append(out.Items, SaleItemResponse{
			ID:          i.ItemID,
			ProductID:   i.ProductID,
			ProductName: i.ProductName,
			Quantity:    i.Quantity,
			UnitPrice:   i.UnitPrice,
			Discount:    i.Discount,
			TotalPrice:  i.TotalPrice,
			Status:      i.Status,
		})
	}
	return out
}
