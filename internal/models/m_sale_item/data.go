package m_sale_item

import "cloud.google.com/go/spanner"

// BuildInsertMap prepares the canonical fields for a sale item row.
// unit_price, discount and total_price are decimal strings.
func BuildInsertMap(saleID, itemID, productID, productName string,
	quantity int64, unitPrice, discount, totalPrice, status string) map[string]interface{} {

	return map[string]interface{}{
		ColSaleID:      saleID,
		ColItemID:      itemID,
		ColProductID:   productID,
		ColProductName: productName,
		ColQuantity:    quantity,
		ColUnitPrice:   unitPrice,
		ColDiscount:    discount,
		ColTotalPrice:  totalPrice,
		ColStatus:      status,
	}
}

// InsertMutation builds a spanner.Insert mutation for a sale item row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a sale item row.
// The composite primary key (sale_id, item_id) is prepended; the values map
// must not include either key.
func UpdateMutation(saleID, itemID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColSaleID, ColItemID}
	vals := []interface{}{saleID, itemID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}
