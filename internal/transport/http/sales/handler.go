package sales

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/murkotick/sales-record-service/internal/app/sales/queries/get_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/create_sale"
	"github.com/murkotick/sales-record-service/internal/app/sales/usecases/update_sale"
)

// Commands groups the write interactors; Queries the read handlers.
// The transport depends on the application layer only.
type Commands struct {
	Create *create_sale.Interactor
	Update *update_sale.Interactor
}

type Queries struct {
	Get *get_sale.Handler
}

// Handler is a thin HTTP transport adapter: it binds and validates input,
// maps JSON <-> application requests and delegates to the usecases.
type Handler struct {
	commands Commands
	queries  Queries
	log      *slog.Logger
}

func NewHandler(cmd Commands, qry Queries, log *slog.Logger) *Handler {
	return &Handler{commands: cmd, queries: qry, log: log}
}

// RegisterRoutes mounts the sales endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.CreateSale)
		sales.GET("/:sale_id", h.GetSale)
		sales.PUT("/:sale_id", h.UpdateSale)
	}
}

func (h *Handler) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.commands.Create.Execute(c.Request.Context(), mapCreateSaleRequest(req))
	if err != nil {
		h.log.Error("create sale failed", "error", err)
		writeError(c, err)
		return
	}

	h.log.Info("sale created", "sale_id", id)
	c.JSON(http.StatusCreated, CreateSaleResponse{ID: id})
}

func (h *Handler) GetSale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("sale_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
		return
	}

	dtoOut, err := h.queries.Get.Execute(c.Request.Context(), saleID.String())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapSaleDTOToResponse(dtoOut))
}

func (h *Handler) UpdateSale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("sale_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
		return
	}

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appReq, err := mapUpdateSaleRequest(saleID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.commands.Update.Execute(c.Request.Context(), appReq); err != nil {
		h.log.Error("update sale failed", "sale_id", saleID, "error", err)
		writeError(c, err)
		return
	}

	h.log.Info("sale updated", "sale_id", saleID)
	c.Status(http.StatusNoContent)
}
