package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogsvc "github.com/cyclehub/inventoryman/internal/service/catalog"
)

// CatalogHandler handles the category and brand tag pages.
type CatalogHandler struct {
	svc    *catalogsvc.Service
	logger *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(svc *catalogsvc.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

type addTagRequest struct {
	New string `form:"new" json:"new" binding:"required"`
}

// ListCategories returns every category tag.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AddCategory creates a category tag.
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var req addTagRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new category name is required"})
		return
	}

	if err := h.svc.AddCategory(c.Request.Context(), req.New); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DeleteCategory removes a category tag.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deleteid is required"})
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), req.DeleteID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBrands returns every brand tag.
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.svc.ListBrands(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// AddBrand creates a brand tag.
func (h *CatalogHandler) AddBrand(c *gin.Context) {
	var req addTagRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new brand name is required"})
		return
	}

	if err := h.svc.AddBrand(c.Request.Context(), req.New); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DeleteBrand removes a brand tag.
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deleteid is required"})
		return
	}

	if err := h.svc.DeleteBrand(c.Request.Context(), req.DeleteID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
