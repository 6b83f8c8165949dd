package reporting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	repo "github.com/cyclehub/inventoryman/internal/repository/mongodb"
)

// Reporting dimensions accepted by the sales and stock reports.
const (
	DimensionBrand    = "brand"
	DimensionCategory = "category"
	DimensionAll      = "all"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Service builds and runs the aggregation reports.
type Service struct {
	stocks  repo.StockStore
	orders  repo.OrderStore
	catalog repo.CatalogStore
	logger  *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(stocks repo.StockStore, orders repo.OrderStore, catalog repo.CatalogStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{stocks: stocks, orders: orders, catalog: catalog, logger: logger}
}

// StockSummary rolls up the stocks collection by brand or category and
// returns the rows plus the total number of stock documents.
func (s *Service) StockSummary(ctx context.Context, dimension string) ([]models.StockSummaryRow, int64, error) {
	var groupField string
	switch dimension {
	case DimensionBrand:
		groupField = "Brand"
	case DimensionCategory:
		groupField = "Category"
	default:
		return nil, 0, fmt.Errorf("%w: unknown stock dimension %q", apperror.ErrValidation, dimension)
	}

	rows, err := s.stocks.AggregateStocks(ctx, stockRollupPipeline(groupField))
	if err != nil {
		return nil, 0, err
	}

	count, err := s.stocks.CountStocks(ctx)
	if err != nil {
		return nil, 0, err
	}

	return rows, count, nil
}

// MonthlySales reports one month's sales grouped by brand, category or, for
// "all", by transaction date. Month and year arrive as raw form input and
// are validated before any query runs.
func (s *Service) MonthlySales(ctx context.Context, monthParam, yearParam, dimension string) (*models.SalesReport, error) {
	month, err := parseIntParam("month", monthParam)
	if err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", apperror.ErrValidation, month)
	}

	year, err := parseIntParam("year", yearParam)
	if err != nil {
		return nil, err
	}

	groupID, err := salesGroupID(dimension, "$TransactionDate")
	if err != nil {
		return nil, err
	}

	rows, err := s.orders.AggregateSales(ctx, monthlySalesPipeline(month, year, groupID))
	if err != nil {
		return nil, err
	}

	total, err := s.orders.AggregateSalesTotal(ctx, salesTotalPipeline(monthlyMatch(month, year)))
	if err != nil {
		return nil, err
	}

	return &models.SalesReport{
		Rows:      rows,
		Total:     *total,
		Dimension: dimension,
		MonthName: monthNames[month-1],
		Year:      year,
	}, nil
}

// YearlySales reports one year's sales grouped by brand, category or, for
// "all", by month number.
func (s *Service) YearlySales(ctx context.Context, yearParam, dimension string) (*models.SalesReport, error) {
	year, err := parseIntParam("year", yearParam)
	if err != nil {
		return nil, err
	}

	groupID, err := salesGroupID(dimension, "$TMonth")
	if err != nil {
		return nil, err
	}

	rows, err := s.orders.AggregateSales(ctx, yearlySalesPipeline(year, groupID))
	if err != nil {
		return nil, err
	}

	total, err := s.orders.AggregateSalesTotal(ctx, salesTotalPipeline(yearlyMatch(year)))
	if err != nil {
		return nil, err
	}

	return &models.SalesReport{
		Rows:      rows,
		Total:     *total,
		Dimension: dimension,
		Year:      year,
	}, nil
}

// TransactionsByPhone rolls up one customer's order lines into per-transaction
// summaries, one row per invoice.
func (s *Service) TransactionsByPhone(ctx context.Context, phone string) ([]models.TransactionSummary, error) {
	if len(phone) != 10 {
		return nil, fmt.Errorf("%w: phone number must be 10 digits", apperror.ErrValidation)
	}
	return s.orders.AggregateTransactions(ctx, transactionsPipeline(phone))
}

// DailySnapshot computes one day's sales total, used by the bookkeeping
// export job.
func (s *Service) DailySnapshot(ctx context.Context, day time.Time) (*models.DailySnapshot, error) {
	transactionDate := fmt.Sprintf("%d/%d/%d", day.Day(), int(day.Month()), day.Year())

	total, err := s.orders.AggregateSalesTotal(ctx, salesTotalPipeline(dailyMatch(transactionDate, int(day.Month()), day.Year())))
	if err != nil {
		return nil, err
	}

	return &models.DailySnapshot{
		Date:   transactionDate,
		Count:  total.Count,
		Amount: total.Amount,
	}, nil
}

// HomeSummary counts the main collections for the landing page.
func (s *Service) HomeSummary(ctx context.Context) (*models.HomeSummary, error) {
	stocks, err := s.stocks.CountStocks(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.catalog.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.catalog.CountBrands(ctx)
	if err != nil {
		return nil, err
	}

	return &models.HomeSummary{
		Stocks:     stocks,
		Orders:     orders,
		Categories: categories,
		Brands:     brands,
	}, nil
}

// salesGroupID resolves the grouping expression for a sales report. allGroup
// is the natural time grouping used when the dimension is "all".
func salesGroupID(dimension, allGroup string) (string, error) {
	switch dimension {
	case DimensionBrand:
		return "$Brand", nil
	case DimensionCategory:
		return "$Category", nil
	case DimensionAll:
		return allGroup, nil
	default:
		return "", fmt.Errorf("%w: unknown sales dimension %q", apperror.ErrValidation, dimension)
	}
}

func parseIntParam(name, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", apperror.ErrValidation, name, value)
	}
	return parsed, nil
}
