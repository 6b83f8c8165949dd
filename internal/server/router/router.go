package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/server/handlers"
	"github.com/cyclehub/inventoryman/internal/server/middleware"
)

// Handlers bundles the HTTP adapters the router wires up.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Stock   *handlers.StockHandler
	Order   *handlers.OrderHandler
	Catalog *handlers.CatalogHandler
	Report  *handlers.ReportHandler
	Barcode *handlers.BarcodeHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, validator middleware.TokenValidator, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := r.Group("/", middleware.Authenticated(validator, logger))

	authed.GET("/", h.Report.Summary)
	authed.POST("/sales_filter_query", h.Report.SalesFilter)
	authed.POST("/stock_filter_query", h.Report.StockFilter)

	authed.GET("/stocks", h.Stock.FormMetadata)
	authed.POST("/submitstock", h.Stock.Submit)
	authed.GET("/viewstocks", h.Stock.List)
	authed.POST("/stocks_query", h.Stock.Query)
	authed.POST("/fetchitem", h.Stock.FetchItem)
	authed.POST("/deletestock", h.Stock.Delete)

	authed.GET("/viewbarcodepage", h.Barcode.Page)
	authed.POST("/barcode_query", h.Barcode.Query)
	authed.POST("/barcodegen", h.Barcode.Generate)

	authed.GET("/orders", h.Order.List)
	authed.GET("/billing", h.Stock.FormMetadata)
	authed.POST("/orders_query", h.Order.Query)
	authed.POST("/submitbill", h.Order.SubmitBill)
	authed.POST("/fetchorderitem", h.Order.FetchOrderLines)
	authed.POST("/fetchcustomer", h.Order.FetchCustomer)
	authed.POST("/deleteitem", h.Order.Delete)
	authed.POST("/sendmail", h.Order.SendInvoice)

	authed.GET("/categories", h.Catalog.ListCategories)
	authed.POST("/addcategory", h.Catalog.AddCategory)
	authed.POST("/deletecategory", h.Catalog.DeleteCategory)
	authed.GET("/brands", h.Catalog.ListBrands)
	authed.POST("/addbrand", h.Catalog.AddBrand)
	authed.POST("/deletebrand", h.Catalog.DeleteBrand)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
