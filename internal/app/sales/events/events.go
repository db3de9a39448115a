// Package events defines the integration event payloads the sales workflows
// write to the outbox. The aggregate itself carries no messaging concern:
// the usecases decide which event a transition warrants from the aggregate's
// old and new state, then enqueue the payloads here.
package events

// Event types double as the relay's destination topics.
const (
	TypeSaleCreated       = "sale.created"
	TypeSaleModified      = "sale.modified"
	TypeSaleCancelled     = "sale.cancelled"
	TypeSaleItemCancelled = "sale_item.cancelled"
)

// SaleCreated is emitted once per successful sale creation.
type SaleCreated struct {
	SaleID      string `json:"sale_id"`
	TotalAmount string `json:"total_amount"`
}

// SaleModified is emitted when an update leaves the sale active.
type SaleModified struct {
	SaleID      string `json:"sale_id"`
	TotalAmount string `json:"total_amount"`
}

// SaleCancelled is emitted when an update cancels the sale as a whole.
type SaleCancelled struct {
	SaleID      string `json:"sale_id"`
	TotalAmount string `json:"total_amount"`
}

// SaleItemCancelled is emitted per line item cancelled by an update.
type SaleItemCancelled struct {
	SaleItemID string `json:"sale_item_id"`
}
