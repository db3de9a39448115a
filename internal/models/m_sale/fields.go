package m_sale

// Field constants for the sales table.
const (
	TableName = "sales"

	ColSaleID       = "sale_id"
	ColNumber       = "number"
	ColSaleDate     = "sale_date"
	ColCustomerID   = "customer_id"
	ColCustomerName = "customer_name"
	ColBranchID     = "branch_id"
	ColBranchName   = "branch_name"
	ColTotalAmount  = "total_amount"
	ColStatus       = "status"
)
