package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/models"
	"github.com/cyclehub/inventoryman/internal/server/middleware"
	catalogsvc "github.com/cyclehub/inventoryman/internal/service/catalog"
	stocksvc "github.com/cyclehub/inventoryman/internal/service/stocks"
)

// StockHandler handles stock intake and browsing.
type StockHandler struct {
	stocks  *stocksvc.Service
	catalog *catalogsvc.Service
	logger  *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter.
func NewStockHandler(stocks *stocksvc.Service, catalog *catalogsvc.Service, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{stocks: stocks, catalog: catalog, logger: logger}
}

// FormMetadata returns the categories, brands and sizes the intake form
// offers.
func (h *StockHandler) FormMetadata(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	brands, err := h.catalog.ListBrands(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	sizes, err := h.catalog.ListSizes(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "brands": brands, "sizes": sizes})
}

// Submit ingests the bulk intake form.
func (h *StockHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}

	items, err := h.stocks.SubmitStock(c.Request.Context(), c.Request.PostForm, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted": len(items), "items": items})
}

// List returns every stock item.
func (h *StockHandler) List(c *gin.Context) {
	items, err := h.stocks.ListStocks(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stocks": items})
}

// Query returns stock items matching the posted filter.
func (h *StockHandler) Query(c *gin.Context) {
	var filter models.StockFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	items, err := h.stocks.FilterStocks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stocks": items})
}

type fetchItemRequest struct {
	ItemID string `form:"itemid" json:"itemid" binding:"required"`
}

// FetchItem returns one stock record for billing autofill.
func (h *StockHandler) FetchItem(c *gin.Context) {
	var req fetchItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemid is required"})
		return
	}

	item, err := h.stocks.FetchItem(c.Request.Context(), req.ItemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

type deleteRequest struct {
	DeleteID string `form:"deleteid" json:"deleteid" binding:"required"`
}

// Delete removes one stock record.
func (h *StockHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deleteid is required"})
		return
	}

	if err := h.stocks.DeleteStock(c.Request.Context(), req.DeleteID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
