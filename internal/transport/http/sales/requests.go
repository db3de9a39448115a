package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest is the payload for POST /sales. The customer identity
// comes resolved from the boundary; branch and products are captured by
// name only.
type CreateSaleRequest struct {
	CustomerID   uuid.UUID               `json:"customer_id" binding:"required"`
	CustomerName string                  `json:"customer_name" binding:"required"`
	BranchName   string                  `json:"branch_name" binding:"required"`
	Items        []CreateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateSaleItemRequest is one line of a create request.
type CreateSaleItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// UpdateSaleRequest is the payload for PUT /sales/:sale_id.
type UpdateSaleRequest struct {
	CustomerID   uuid.UUID               `json:"customer_id" binding:"required"`
	CustomerName string                  `json:"customer_name" binding:"required"`
	BranchName   string                  `json:"branch_name" binding:"required"`
	Status       string                  `json:"status" binding:"required"`
	Items        []UpdateSaleItemRequest `json:"items" binding:"dive"`
}

// UpdateSaleItemRequest addresses one existing line item by id.
type UpdateSaleItemRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Status string    `json:"status" binding:"required"`
}
