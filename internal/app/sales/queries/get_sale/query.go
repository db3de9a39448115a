package get_sale

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
)

// SpannerGetSaleQuery is a concrete query implementation that reads from
// Spanner directly: the sale row first, then its interleaved item rows in
// insertion order.
type SpannerGetSaleQuery struct {
	Client *spanner.Client
}

func NewSpannerGetSaleQuery(client *spanner.Client) *SpannerGetSaleQuery {
	return &SpannerGetSaleQuery{Client: client}
}

func (q *SpannerGetSaleQuery) GetSale(ctx context.Context, saleID string) (*dto.SaleDTO, error) {
	// Multi-use read-only transaction: the sale row and its items must come
	// from the same snapshot.
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	stmt := spanner.Statement{
		SQL: `SELECT sale_id, number, sale_date,
		             customer_id, customer_name, branch_id, branch_name,
		             total_amount, status
		      FROM sales
		      WHERE sale_id = @id`,
		Params: map[string]interface{}{"id": saleID},
	}

	iter := tx.Query(ctx, stmt)
	row, err := iter.Next()
	if err == iterator.Done {
		iter.Stop()
		return nil, domain.ErrSaleNotFound
	}
	if err != nil {
		iter.Stop()
		return nil, err
	}

	var (
		id, number                 string
		saleDate                   time.Time
		customerID, customerName   string
		branchID, branchName       string
		totalAmount, status        string
	)
	if err := row.Columns(&id, &number, &saleDate,
		&customerID, &customerName, &branchID, &branchName,
		&totalAmount, &status); err != nil {
		iter.Stop()
		return nil, err
	}
	iter.Stop()

	date := saleDate.UTC().Format(time.RFC3339)
	out := &dto.SaleDTO{
		SaleID:       id,
		Number:       number,
		Date:         &date,
		CustomerID:   customerID,
		CustomerName: customerName,
		BranchID:     branchID,
		BranchName:   branchName,
		TotalAmount:  totalAmount,
		Status:       status,
	}

	items, err := q.readItems(ctx, tx, saleID)
	if err != nil {
		return nil, err
	}
	out.Items = items

	return out, nil
}

func (q *SpannerGetSaleQuery) readItems(ctx context.Context, tx *spanner.ReadOnlyTransaction, saleID string) ([]*dto.SaleItemDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT item_id, product_id, product_name,
		             quantity, unit_price, discount, total_price, status
		      FROM sale_items
		      WHERE sale_id = @id
		      ORDER BY item_id`,
		Params: map[string]interface{}{"id": saleID},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.SaleItemDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			itemID, productID, productName           string
			quantity                                 int64
			unitPrice, discount, totalPrice, status  string
		)
		if err := row.Columns(&itemID, &productID, &productName,
			&quantity, &unitPrice, &discount, &totalPrice, &status); err != nil {
			return nil, err
		}

		out = append(out, &dto.SaleItemDTO{
			ItemID:      itemID,
			ProductID:   productID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Discount:    discount,
			TotalPrice:  totalPrice,
			Status:      status,
		})
	}
}
