package stocks

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	"github.com/cyclehub/inventoryman/internal/forms"
	repo "github.com/cyclehub/inventoryman/internal/repository/mongodb"
)

// SubmissionSchema declares the labels of one intake row, in the order the
// intake form lays them out.
var SubmissionSchema = []string{"itemid", "itemname", "category", "brand", "size", "amount"}

// Service handles stock intake and browsing.
type Service struct {
	store  repo.StockStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new stock service instance.
func NewService(store repo.StockStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// SubmitStock decodes the intake form, builds the stock records and persists
// them in one bulk insert. Every row in the submission gets the same capture
// timestamp.
func (s *Service) SubmitStock(ctx context.Context, form url.Values, by models.Identity) ([]models.StockItem, error) {
	rows, err := forms.DecodeRows(form, SubmissionSchema)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: submission contains no stock rows", apperror.ErrValidation)
	}

	items, err := BuildRecords(rows, s.now(), by)
	if err != nil {
		return nil, err
	}

	if err := s.store.InsertStocks(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("stock submission persisted",
		zap.Int("items", len(items)),
		zap.String("user", by.User))
	return items, nil
}

// BuildRecords is the pure transform from decoded rows to stock records:
// brand uppercased, size and amount coerced to numbers, date and time fields
// derived from the single capture timestamp.
func BuildRecords(rows []forms.Row, capturedAt time.Time, by models.Identity) ([]models.StockItem, error) {
	stockDate := fmt.Sprintf("%d/%d/%d", capturedAt.Day(), int(capturedAt.Month()), capturedAt.Year())
	stockTime := fmt.Sprintf("%d:%d:%d", capturedAt.Hour(), capturedAt.Minute(), capturedAt.Second())

	items := make([]models.StockItem, 0, len(rows))
	for i, row := range rows {
		size, err := strconv.Atoi(strings.TrimSpace(row["size"]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: size %q is not numeric", apperror.ErrValidation, i+1, row["size"])
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row["amount"]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: amount %q is not numeric", apperror.ErrValidation, i+1, row["amount"])
		}

		items = append(items, models.StockItem{
			EnteredBy: by,
			ItemID:    row["itemid"],
			ItemName:  row["itemname"],
			Category:  row["category"],
			Brand:     strings.ToUpper(row["brand"]),
			Size:      size,
			Amount:    amount.InexactFloat64(),
			StockDate: stockDate,
			StockTime: stockTime,
			TDay:      capturedAt.Day(),
			TMonth:    int(capturedAt.Month()),
			TYear:     capturedAt.Year(),
		})
	}

	return items, nil
}

// ListStocks returns every stock item.
func (s *Service) ListStocks(ctx context.Context) ([]models.StockItem, error) {
	return s.store.ListStocks(ctx)
}

// FilterStocks returns stock items matching the filter.
func (s *Service) FilterStocks(ctx context.Context, filter models.StockFilter) ([]models.StockItem, error) {
	return s.store.FilterStocks(ctx, filter)
}

// FetchItem returns the stock record for one item id.
func (s *Service) FetchItem(ctx context.Context, itemID string) (*models.StockItem, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item id must not be empty", apperror.ErrValidation)
	}
	return s.store.FindStockByItemID(ctx, itemID)
}

// DeleteStock removes one stock record.
func (s *Service) DeleteStock(ctx context.Context, id string) error {
	if err := s.store.DeleteStock(ctx, id); err != nil {
		return err
	}
	s.logger.Info("stock deleted", zap.String("id", id))
	return nil
}
