package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/models"
	barcodesvc "github.com/cyclehub/inventoryman/internal/service/barcode"
	stocksvc "github.com/cyclehub/inventoryman/internal/service/stocks"
)

// BarcodeHandler handles label selection and batch generation.
type BarcodeHandler struct {
	barcodes *barcodesvc.Service
	stocks   *stocksvc.Service
	logger   *zap.Logger
}

// NewBarcodeHandler constructs the HTTP handler adapter.
func NewBarcodeHandler(barcodes *barcodesvc.Service, stocks *stocksvc.Service, logger *zap.Logger) *BarcodeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BarcodeHandler{barcodes: barcodes, stocks: stocks, logger: logger}
}

// Page lists the stock items available for label printing.
func (h *BarcodeHandler) Page(c *gin.Context) {
	items, err := h.stocks.ListStocks(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stocks": items})
}

// Query narrows the label-selection list with the stock filter.
func (h *BarcodeHandler) Query(c *gin.Context) {
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

// Generate renders the selected products into paged label sheets. The page
// posts the selection as a JSON array in the allStocks form field.
func (h *BarcodeHandler) Generate(c *gin.Context) {
	payload := c.PostForm("allStocks")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "allStocks is required"})
		return
	}

	var products []models.LabelProduct
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "allStocks must be a JSON product array"})
		return
	}

	pages, err := h.barcodes.GeneratePages(c.Request.Context(), products)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}
