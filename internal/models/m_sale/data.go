package m_sale

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical fields for a sale row. Monetary
// values travel as decimal strings.
func BuildInsertMap(saleID, number string, saleDate time.Time,
	customerID, customerName, branchID, branchName string,
	totalAmount, status string) map[string]interface{} {

	return map[string]interface{}{
		ColSaleID:       saleID,
		ColNumber:       number,
		ColSaleDate:     saleDate,
		ColCustomerID:   customerID,
		ColCustomerName: customerName,
		ColBranchID:     branchID,
		ColBranchName:   branchName,
		ColTotalAmount:  totalAmount,
		ColStatus:       status,
	}
}

// InsertMutation builds a spanner.Insert mutation for a sale row.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a sale row. The values
// map must not include the sale_id key; the primary key is prepended here.
func UpdateMutation(saleID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColSaleID}
	vals := []interface{}{saleID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}
