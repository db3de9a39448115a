package update_sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	contracts "github.com/murkotick/sales-record-service/internal/app/sales/contracts"
	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
	"github.com/murkotick/sales-record-service/internal/app/sales/events"
	shared "github.com/murkotick/sales-record-service/internal/app/sales/usecases/shared"
	"github.com/murkotick/sales-record-service/internal/pkg/clock"
	commitplan "github.com/murkotick/sales-record-service/internal/pkg/committer"
)

// Request is the application-level update-sale request. Customer and branch
// replace the stored values wholesale; Items carries per-item status
// overrides by item id.
type Request struct {
	SaleID       uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	BranchName   string
	Status       domain.SaleStatus
	Items        []ItemRequest
}

// ItemRequest addresses one existing line item by id.
type ItemRequest struct {
	ID     uuid.UUID
	Status domain.SaleItemStatus
}

// Interactor loads the sale through the read model, applies the update and
// item status changes on the aggregate, and commits the minimal mutations
// together with the events the transitions warrant.
type Interactor struct {
	SaleRepo   contracts.SaleRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	ReadModel  contracts.ReadModel
	Clock      clock.Clock
}

func NewInteractor(saleRepo contracts.SaleRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		SaleRepo:   saleRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		ReadModel:  readModel,
		Clock:      clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load and rehydrate the aggregate.
	dtoOut, err := it.ReadModel.GetSale(ctx, req.SaleID.String())
	if err != nil {
		return err
	}
	sale, err := reconstructSale(dtoOut)
	if err != nil {
		return err
	}

	// 2. Apply the update. The branch arrives as a name from the boundary
	// and gets a fresh external id, same as at creation.
	customer := domain.NewExternalIdentity(req.CustomerID, req.CustomerName)
	branch := domain.NewExternalIdentity(uuid.New(), req.BranchName)
	if err := sale.Update(customer, branch, req.Status); err != nil {
		return err
	}

	// 3. Per-item status overrides. Unknown ids are silent no-ops; only
	// items the aggregate actually carries can produce an event.
	cancelledItems := make([]uuid.UUID, 0, len(req.Items))
	for _, ir := range req.Items {
		item := sale.ChangeItemStatus(ir.ID, ir.Status)
		if item != nil && item.Status() == domain.SaleItemStatusCanceled {
			cancelledItems = append(cancelledItems, item.ID())
		}
	}

	// 4. Minimal mutations plus the events this update warrants.
	plan := commitplan.NewPlan()
	plan.AddAll(it.SaleRepo.UpdateMuts(sale))

	saleEv, err := it.saleEvent(sale, now)
	if err != nil {
		return err
	}
	plan.Add(it.OutboxRepo.InsertMut(saleEv))

	for _, itemID := range cancelledItems {
		ev, err := shared.NewOutboxEvent(events.TypeSaleItemCancelled, sale.ID().String(),
			events.SaleItemCancelled{SaleItemID: itemID.String()}, now)
		if err != nil {
			return err
		}
		plan.Add(it.OutboxRepo.InsertMut(ev))
	}

	// 5. Apply atomically.
	return it.Committer.Apply(ctx, plan)
}

// saleEvent picks the sale-level event for this update: cancelled when the
// sale ends up Canceled, modified otherwise.
func (it *Interactor) saleEvent(sale *domain.Sale, now time.Time) (*contracts.OutboxEvent, error) {
	if sale.IsCanceled() {
		return shared.NewOutboxEvent(events.TypeSaleCancelled, sale.ID().String(), events.SaleCancelled{
			SaleID:      sale.ID().String(),
			TotalAmount: sale.TotalAmount().String(),
		}, now)
	}
	return shared.NewOutboxEvent(events.TypeSaleModified, sale.ID().String(), events.SaleModified{
		SaleID:      sale.ID().String(),
		TotalAmount: sale.TotalAmount().String(),
	}, now)
}

func reconstructSale(d *dto.SaleDTO) (*domain.Sale, error) {
	saleID, err := uuid.Parse(d.SaleID)
	if err != nil {
		return nil, fmt.Errorf("parse sale id %q: %w", d.SaleID, err)
	}
	number, err := uuid.Parse(d.Number)
	if err != nil {
		return nil, fmt.Errorf("parse sale number %q: %w", d.Number, err)
	}
	customerID, err := uuid.Parse(d.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("parse customer id %q: %w", d.CustomerID, err)
	}
	branchID, err := uuid.Parse(d.BranchID)
	if err != nil {
		return nil, fmt.Errorf("parse branch id %q: %w", d.BranchID, err)
	}

	items := make([]*domain.SaleItem, 0, len(d.Items))
	for _, di := range d.Items {
		item, err := reconstructItem(di)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	date := dto.TimeOrZero(dto.ParseTimePtr(d.Date))
	customer := domain.NewExternalIdentity(customerID, d.CustomerName)
	branch := domain.NewExternalIdentity(branchID, d.BranchName)

	return domain.ReconstructSale(saleID, number, date, customer, branch, items, domain.SaleStatus(d.Status)), nil
}

func reconstructItem(d *dto.SaleItemDTO) (*domain.SaleItem, error) {
	itemID, err := uuid.Parse(d.ItemID)
	if err != nil {
		return nil, fmt.Errorf("parse item id %q: %w", d.ItemID, err)
	}
	productID, err := uuid.Parse(d.ProductID)
	if err != nil {
		return nil, fmt.Errorf("parse product id %q: %w", d.ProductID, err)
	}

	unitPrice, err := domain.NewPriceFromString(d.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("parse unit price %q: %w", d.UnitPrice, err)
	}
	discount, err := decimal.NewFromString(d.Discount)
	if err != nil {
		return nil, fmt.Errorf("parse discount %q: %w", d.Discount, err)
	}

	product := domain.NewExternalIdentity(productID, d.ProductName)
	return domain.ReconstructSaleItem(itemID, product, int(d.Quantity), unitPrice, discount, domain.SaleItemStatus(d.Status)), nil
}
