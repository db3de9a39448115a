package sales

// SaleResponse is the full sale representation returned by GET and echoed
// by the write endpoints that return a body.
type SaleResponse struct {
	ID           string             `json:"id"`
	Number       string             `json:"number"`
	Date         string             `json:"date"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	BranchID     string             `json:"branch_id"`
	BranchName   string             `json:"branch_name"`
	TotalAmount  string             `json:"total_amount"`
	Status       string             `json:"status"`
	Items        []SaleItemResponse `json:"items"`
}

// SaleItemResponse is one line item of a SaleResponse.
type SaleItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Discount    string `json:"discount"`
	TotalPrice  string `json:"total_price"`
	Status      string `json:"status"`
}

// CreateSaleResponse is returned by POST /sales.
type CreateSaleResponse struct {
	ID string `json:"id"`
}
