package m_sale_item

// Field constants for the sale_items table. The table is interleaved in
// sales; rows exist only under their parent sale.
const (
	TableName = "sale_items"

	ColSaleID      = "sale_id"
	ColItemID      = "item_id"
	ColProductID   = "product_id"
	ColProductName = "product_name"
	ColQuantity    = "quantity"
	ColUnitPrice   = "unit_price"
	ColDiscount    = "discount"
	ColTotalPrice  = "total_price"
	ColStatus      = "status"
)
