package orders

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	"github.com/cyclehub/inventoryman/internal/forms"
	repo "github.com/cyclehub/inventoryman/internal/repository/mongodb"
	"github.com/cyclehub/inventoryman/pkg/clients/mailersend"
)

// BillSchema declares the labels of one bill line, in the order the billing
// form lays them out.
var BillSchema = []string{"itemid", "itemname", "category", "brand", "amount"}

// Service handles billing: order-line persistence, customer records and
// invoice mail.
type Service struct {
	store     repo.OrderStore
	customers repo.CustomerStore
	mailer    mailersend.Client
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires a new order service instance. mailer may be nil when
// outbound mail is not configured.
func NewService(store repo.OrderStore, customers repo.CustomerStore, mailer mailersend.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		customers: customers,
		mailer:    mailer,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Bill is the outcome of a submitted bill: the minted transaction id and the
// decimal-summed total across its lines.
type Bill struct {
	TransactionID string  `json:"transactionId"`
	Lines         int     `json:"lines"`
	Total         float64 `json:"total"`
}

// SubmitBill decodes the billing form, mints one transaction id for the
// batch, persists the order lines and records the customer contact. Every
// line gets the same capture timestamp.
func (s *Service) SubmitBill(ctx context.Context, phone, customerName string, form url.Values) (*Bill, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: customer phone must not be empty", apperror.ErrValidation)
	}

	rows, err := forms.DecodeRows(form, BillSchema)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: bill contains no lines", apperror.ErrValidation)
	}

	capturedAt := s.now()
	transactionID := s.newID()
	transactionDate := fmt.Sprintf("%d/%d/%d", capturedAt.Day(), int(capturedAt.Month()), capturedAt.Year())
	transactionTime := fmt.Sprintf("%d:%d:%d", capturedAt.Hour(), capturedAt.Minute(), capturedAt.Second())

	total := decimal.Zero
	lines := make([]models.OrderLine, 0, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(strings.TrimSpace(row["amount"]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: amount %q is not numeric", apperror.ErrValidation, i+1, row["amount"])
		}
		total = total.Add(amount)

		lines = append(lines, models.OrderLine{
			TransactionID:   transactionID,
			CustomerPhone:   phone,
			CustomerName:    customerName,
			ItemID:          row["itemid"],
			ItemName:        row["itemname"],
			Category:        row["category"],
			Brand:           strings.ToUpper(row["brand"]),
			Amount:          amount.InexactFloat64(),
			TransactionDate: transactionDate,
			TransactionTime: transactionTime,
			TMonth:          int(capturedAt.Month()),
			TYear:           capturedAt.Year(),
		})
	}

	if err := s.store.InsertOrders(ctx, lines); err != nil {
		return nil, err
	}

	if err := s.customers.UpsertCustomer(ctx, models.Customer{PhoneNumber: phone, CustomerName: customerName}); err != nil {
		// The sale is already recorded; a stale contact card is not worth
		// failing the bill over.
		s.logger.Error("failed recording customer contact", zap.String("phone", phone), zap.Error(err))
	}

	s.logger.Info("bill persisted",
		zap.String("transaction_id", transactionID),
		zap.Int("lines", len(lines)))

	return &Bill{
		TransactionID: transactionID,
		Lines:         len(lines),
		Total:         total.InexactFloat64(),
	}, nil
}

// ListOrders returns every order line.
func (s *Service) ListOrders(ctx context.Context) ([]models.OrderLine, error) {
	return s.store.ListOrders(ctx)
}

// FetchOrderLines returns the order lines of one transaction.
func (s *Service) FetchOrderLines(ctx context.Context, transactionID string) ([]models.OrderLine, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction id must not be empty", apperror.ErrValidation)
	}
	return s.store.FindOrdersByTransaction(ctx, transactionID)
}

// DeleteOrder removes order lines by record id.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if err := s.store.DeleteOrders(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("id", id))
	return nil
}

// LookupCustomer returns the contact records for a phone number.
func (s *Service) LookupCustomer(ctx context.Context, phone string) ([]models.Customer, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone must not be empty", apperror.ErrValidation)
	}
	return s.customers.FindCustomersByPhone(ctx, phone)
}

// SendInvoice mails the line items of one transaction to the recipient.
func (s *Service) SendInvoice(ctx context.Context, transactionID, toEmail, toName string) error {
	if s.mailer == nil {
		return fmt.Errorf("%w: outbound mail is not configured", apperror.ErrValidation)
	}
	if toEmail == "" {
		return fmt.Errorf("%w: recipient email must not be empty", apperror.ErrValidation)
	}

	lines, err := s.FetchOrderLines(ctx, transactionID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: transaction %s", apperror.ErrNotFound, transactionID)
	}

	req := mailersend.SendEmailRequest{
		ToEmail: toEmail,
		ToName:  toName,
		Subject: fmt.Sprintf("Invoice %s", transactionID),
		HTML:    invoiceHTML(lines),
		Text:    fmt.Sprintf("Invoice %s from The Cycle Hub.", transactionID),
	}

	if err := s.mailer.SendEmail(ctx, req); err != nil {
		s.logger.Error("failed sending invoice mail",
			zap.String("transaction_id", transactionID),
			zap.Error(err))
		return fmt.Errorf("send invoice %s: %w", transactionID, err)
	}

	s.logger.Info("invoice mailed", zap.String("transaction_id", transactionID), zap.String("to", toEmail))
	return nil
}

// invoiceHTML builds the line-item table embedded in the invoice mail.
func invoiceHTML(lines []models.OrderLine) string {
	var b strings.Builder
	b.WriteString(`<table width="100%">`)
	for _, line := range lines {
		fmt.Fprintf(&b,
			`<tr><td style="padding: 5px 10px 5px 0" width="80%%" align="left"><p>%s</p></td>`+
				`<td style="padding: 5px 0" width="20%%" align="left"><p>₹%.2f</p></td></tr>`,
			line.ItemName, line.Amount)
	}
	b.WriteString(`</table>`)
	return b.String()
}
