package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ordersvc "github.com/cyclehub/inventoryman/internal/service/orders"
	reportingsvc "github.com/cyclehub/inventoryman/internal/service/reporting"
)

// OrderHandler handles billing, order browsing and invoice mail.
type OrderHandler struct {
	orders    *ordersvc.Service
	reporting *reportingsvc.Service
	logger    *zap.Logger
}

// NewOrderHandler constructs the HTTP handler adapter.
func NewOrderHandler(orders *ordersvc.Service, reporting *reportingsvc.Service, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{orders: orders, reporting: reporting, logger: logger}
}

// List returns every order line.
func (h *OrderHandler) List(c *gin.Context) {
	lines, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": lines})
}

// Query rolls up a customer's transactions by phone number.
func (h *OrderHandler) Query(c *gin.Context) {
	phone := c.PostForm("phone")

	transactions, err := h.reporting.TransactionsByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	customers, err := h.orders.LookupCustomer(c.Request.Context(), phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "customerInfo": customers})
}

// SubmitBill ingests the billing form and records one transaction.
func (h *OrderHandler) SubmitBill(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}

	phone := c.PostForm("phone")
	customerName := c.PostForm("customername")

	bill, err := h.orders.SubmitBill(c.Request.Context(), phone, customerName, c.Request.PostForm)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, bill)
}

type fetchOrderRequest struct {
	TransactionID string `form:"transactionid" json:"transactionid" binding:"required"`
}

// FetchOrderLines returns the line items of one transaction.
func (h *OrderHandler) FetchOrderLines(c *gin.Context) {
	var req fetchOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transactionid is required"})
		return
	}

	lines, err := h.orders.FetchOrderLines(c.Request.Context(), req.TransactionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": lines})
}

type fetchCustomerRequest struct {
	Phone string `form:"phone" json:"phone" binding:"required"`
}

// FetchCustomer returns the contact records for a phone number.
func (h *OrderHandler) FetchCustomer(c *gin.Context) {
	var req fetchCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	customers, err := h.orders.LookupCustomer(c.Request.Context(), req.Phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Delete removes order lines by record id.
func (h *OrderHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deleteid is required"})
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), req.DeleteID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type sendInvoiceRequest struct {
	TransactionID string `form:"transactionid" json:"transactionid" binding:"required"`
	Email         string `form:"email" json:"email" binding:"required"`
	Name          string `form:"name" json:"name"`
}

// SendInvoice mails the invoice of one transaction.
func (h *OrderHandler) SendInvoice(c *gin.Context) {
	var req sendInvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transactionid and email are required"})
		return
	}

	if err := h.orders.SendInvoice(c.Request.Context(), req.TransactionID, req.Email, req.Name); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "invoice queued"})
}
