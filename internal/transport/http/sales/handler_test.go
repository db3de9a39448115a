package sales

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/sales-record-service/internal/app/sales/domain"
	"github.com/murkotick/sales-record-service/internal/app/sales/domain/services"
	"github.com/murkotick/sales-record-service/internal/app/sales/dto"
	"github.com/murkotick/sales-record-service/internal/app/sales/queries/get_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/repo"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/create_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/update_sale"
	"github.com/murkotick/sales-record-service/internal/pkg/clock"
	commitplan "github.com/murkotick/sales-record-service/internal/pkg/committer"
)

type fakeCommitter struct {
	plan *commitplan.Plan
}

func (f *fakeCommitter) Apply(ctx context.Context, plan *commitplan.Plan) error {
	f.plan = plan
	return nil
}

type fakeReadModel struct {
	sales map[string]*dto.SaleDTO
}

func (f *fakeReadModel) GetSale(ctx context.Context, saleID string) (*dto.SaleDTO, error) {
	s, ok := f.sales[saleID]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	return s, nil
}

func newTestRouter(rm *fakeReadModel, cm *fakeCommitter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	clk := clock.NewFake(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	saleRepo := repo.NewSaleRepo()
	outboxRepo := repo.NewOutboxRepo()

	h := NewHandler(Commands{
		Create: create_sale.NewInteractor(saleRepo, outboxRepo, cm, services.DefaultSelector(), clk),
		Update: update_sale.NewInteractor(saleRepo, outboxRepo, cm, rm, clk),
	}, Queries{
		Get: get_sale.NewHandler(rm),
	}, slog.New(slog.DiscardHandler))

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func storedSale(saleID, itemID uuid.UUID) *dto.SaleDTO {
	date := "2026-03-14T12:00:00Z"
	return &dto.SaleDTO{
		SaleID:       saleID.String(),
		Number:       uuid.New().String(),
		Date:         &date,
		CustomerID:   uuid.New().String(),
		CustomerName: "Alice",
		BranchID:     uuid.New().String(),
		BranchName:   "Downtown",
		TotalAmount:  "45",
		Status:       "active",
		Items: []*dto.SaleItemDTO{
			{
				ItemID:      itemID.String(),
				ProductID:   uuid.New().String(),
				ProductName: "Keyboard",
				Quantity:    5,
				UnitPrice:   "10",
				Discount:    "5",
				TotalPrice:  "45",
				Status:      "active",
			},
		},
	}
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSale(t *testing.T) {
	cm := &fakeCommitter{}
	router := newTestRouter(&fakeReadModel{}, cm)

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Alice",
		"branch_name": "Downtown",
		"items": [{"product_name": "Keyboard", "quantity": 5, "unit_price": "10.00"}]
	}`

	w := do(t, router, http.MethodPost, "/api/v1/sales", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateSaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, cm.plan.Len())
}

func TestCreateSale_MissingItems(t *testing.T) {
	router := newTestRouter(&fakeReadModel{}, &fakeCommitter{})

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Alice",
		"branch_name": "Downtown",
		"items": []
	}`

	w := do(t, router, http.MethodPost, "/api/v1/sales", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSale_QuantityAboveLimit(t *testing.T) {
	router := newTestRouter(&fakeReadModel{}, &fakeCommitter{})

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Alice",
		"branch_name": "Downtown",
		"items": [{"product_name": "Keyboard", "quantity": 25, "unit_price": "10.00"}]
	}`

	w := do(t, router, http.MethodPost, "/api/v1/sales", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity")
}

func TestCreateSale_NegativePrice(t *testing.T) {
	cm := &fakeCommitter{}
	router := newTestRouter(&fakeReadModel{}, cm)

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Alice",
		"branch_name": "Downtown",
		"items": [{"product_name": "Keyboard", "quantity": 5, "unit_price": "-1.00"}]
	}`

	w := do(t, router, http.MethodPost, "/api/v1/sales", body)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "unitPrice")
	assert.Nil(t, cm.plan)
}

func TestGetSale(t *testing.T) {
	saleID, itemID := uuid.New(), uuid.New()
	rm := &fakeReadModel{sales: map[string]*dto.SaleDTO{saleID.String(): storedSale(saleID, itemID)}}
	router := newTestRouter(rm, &fakeCommitter{})

	w := do(t, router, http.MethodGet, "/api/v1/sales/"+saleID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, saleID.String(), resp.ID)
	assert.Equal(t, "45", resp.TotalAmount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, itemID.String(), resp.Items[0].ID)
}

func TestGetSale_NotFound(t *testing.T) {
	router := newTestRouter(&fakeReadModel{}, &fakeCommitter{})

	w := do(t, router, http.MethodGet, "/api/v1/sales/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSale_InvalidID(t *testing.T) {
	router := newTestRouter(&fakeReadModel{}, &fakeCommitter{})

	w := do(t, router, http.MethodGet, "/api/v1/sales/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSale(t *testing.T) {
	saleID, itemID := uuid.New(), uuid.New()
	rm := &fakeReadModel{sales: map[string]*dto.SaleDTO{saleID.String(): storedSale(saleID, itemID)}}
	cm := &fakeCommitter{}
	router := newTestRouter(rm, cm)

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Bob",
		"branch_name": "Uptown",
		"status": "canceled",
		"items": [{"id": "` + itemID.String() + `", "status": "canceled"}]
	}`

	w := do(t, router, http.MethodPut, "/api/v1/sales/"+saleID.String(), body)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	require.NotNil(t, cm.plan)
}

func TestUpdateSale_InvalidStatus(t *testing.T) {
	saleID := uuid.New()
	rm := &fakeReadModel{sales: map[string]*dto.SaleDTO{}}
	router := newTestRouter(rm, &fakeCommitter{})

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Bob",
		"branch_name": "Uptown",
		"status": "paused",
		"items": []
	}`

	w := do(t, router, http.MethodPut, "/api/v1/sales/"+saleID.String(), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSale_NotFound(t *testing.T) {
	router := newTestRouter(&fakeReadModel{}, &fakeCommitter{})

	body := `{
		"customer_id": "` + uuid.New().String() + `",
		"customer_name": "Bob",
		"branch_name": "Uptown",
		"status": "active",
		"items": []
	}`

	w := do(t, router, http.MethodPut, "/api/v1/sales/"+uuid.New().String(), body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
