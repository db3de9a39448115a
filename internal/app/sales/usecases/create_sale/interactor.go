package create_sale

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	contracts "github.com/murkotick/sales-record-service/internal/app/sales/contracts"
	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/app/sales/domain/services"
	"github.com/murkotick/sales-record-service/internal/app/sales/events"
	shared "github.com/murkotick/sales-record-service/internal/app/sales/usecases/shared"
	"github.com/murkotick/sales-record-service/internal/pkg/clock"
	commitplan "github.com/murkotick/sales-record-service/internal/pkg/committer"
)

// Request is the application-level create-sale request. The customer
// identity arrives resolved from the boundary; branch and products are
// captured by name and assigned fresh external ids here.
type Request struct {
	CustomerID   uuid.UUID
	CustomerName string
	BranchName   string
	Items        []ItemRequest
}

// ItemRequest is one line of a create-sale request.
type ItemRequest struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Interactor implements the create-sale usecase: discounts are computed per
// item through the strategy selector before the aggregate is built, and the
// sale, its items and the sale.created outbox row commit together.
type Interactor struct {
	SaleRepo   contracts.SaleRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	Discounts  *services.Selector
	Clock      clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(saleRepo contracts.SaleRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, discounts *services.Selector, clk clock.Clock) *Interactor {
	return &Interactor{
		SaleRepo:   saleRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		Discounts:  discounts,
		Clock:      clk,
	}
}

// Execute creates a new sale and persists it together with its outbox event
// in a single commit. Returns the new sale id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// 1. Build domain aggregate; discounts come from the tier selector.
	items := make([]*domain.SaleItem, 0, len(req.Items))
	for _, ir := range req.Items {
		item, err := it.buildItem(ir)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}

	customer := domain.NewExternalIdentity(req.CustomerID, req.CustomerName)
	branch := domain.NewExternalIdentity(uuid.New(), req.BranchName)

	sale, err := domain.NewSale(uuid.New(), uuid.New(), customer, branch, items, now)
	if err != nil {
		return "", err
	}

	// 2. Build commit plan: sale + item rows, then the outbox event.
	plan := commitplan.NewPlan()
	plan.AddAll(it.SaleRepo.InsertMuts(sale))

	ev, err := shared.NewOutboxEvent(events.TypeSaleCreated, sale.ID().String(), events.SaleCreated{
		SaleID:      sale.ID().String(),
		TotalAmount: sale.TotalAmount().String(),
	}, now)
	if err != nil {
		return "", err
	}
	plan.Add(it.OutboxRepo.InsertMut(ev))

	// 3. Apply atomically.
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return sale.ID().String(), nil
}

func (it *Interactor) buildItem(ir ItemRequest) (*domain.SaleItem, error) {
	// A bad unit price is user input, so it travels as a field-level
	// validation error rather than the bare sentinel.
	unitPrice, err := domain.NewPrice(ir.UnitPrice)
	if err != nil {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "unitPrice", Message: err.Error()},
		}}
	}

	// Bounds first: the tier set only covers the legal quantity domain, so
	// an out-of-range quantity must fail as input, not as a selector defect.
	if err := domain.ValidateItemQuantity(ir.Quantity); err != nil {
		return nil, err
	}

	strategy, err := it.Discounts.Select(ir.Quantity)
	if err != nil {
		return nil, err
	}
	discount := strategy.Calculate(ir.Quantity, unitPrice)

	product := domain.NewExternalIdentity(uuid.New(), ir.ProductName)
	return domain.NewSaleItem(uuid.New(), product, ir.Quantity, unitPrice, discount)
}
