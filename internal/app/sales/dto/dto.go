package dto

// SaleDTO contains the full sale as returned by read queries. Monetary
// values are decimal strings; the date is RFC3339, as it comes back from
// Spanner. Use ParseTimePtr to turn it into a time.Time.
type SaleDTO struct {
	SaleID       string
	Number       string
	Date         *string
	CustomerID   string
	CustomerName string
	BranchID     string
	BranchName   string
	TotalAmount  string
	Status       string
	Items        []*SaleItemDTO
}

// SaleItemDTO is one line item of a SaleDTO.
type SaleItemDTO struct {
	ItemID      string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   string
	Discount    string
	TotalPrice  string
	Status      string
}
