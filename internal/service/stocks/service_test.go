package stocks

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	"github.com/cyclehub/inventoryman/internal/forms"
)

type fakeStockStore struct {
	inserted []models.StockItem
	items    []models.StockItem
	deleted  []string
}

func (f *fakeStockStore) InsertStocks(_ context.Context, items []models.StockItem) error {
	f.inserted = append(f.inserted, items...)
	return nil
}

func (f *fakeStockStore) ListStocks(_ context.Context) ([]models.StockItem, error) {
	return f.items, nil
}

func (f *fakeStockStore) FilterStocks(_ context.Context, _ models.StockFilter) ([]models.StockItem, error) {
	return f.items, nil
}

func (f *fakeStockStore) FindStockByItemID(_ context.Context, itemID string) (*models.StockItem, error) {
	for i := range f.items {
		if f.items[i].ItemID == itemID {
			return &f.items[i], nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeStockStore) DeleteStock(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStockStore) CountStocks(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeStockStore) AggregateStocks(_ context.Context, _ mongo.Pipeline) ([]models.StockSummaryRow, error) {
	return nil, nil
}

func stockRow(values ...string) forms.Row {
	row := forms.Row{}
	for i, field := range SubmissionSchema {
		row[field] = values[i]
	}
	return row
}

func TestBuildRecords(t *testing.T) {
	capturedAt := time.Date(2024, time.March, 7, 9, 5, 4, 0, time.UTC)
	by := models.Identity{User: "keyur", Role: "admin"}

	items, err := BuildRecords([]forms.Row{
		stockRow("SKU1", "Widget", "Tools", "acme", "10", "2.50"),
	}, capturedAt, by)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "SKU1", item.ItemID)
	assert.Equal(t, "Widget", item.ItemName)
	assert.Equal(t, "Tools", item.Category)
	assert.Equal(t, "ACME", item.Brand)
	assert.Equal(t, 10, item.Size)
	assert.Equal(t, 2.5, item.Amount)
	assert.Equal(t, "7/3/2024", item.StockDate)
	assert.Equal(t, "9:5:4", item.StockTime)
	assert.Equal(t, 7, item.TDay)
	assert.Equal(t, 3, item.TMonth)
	assert.Equal(t, 2024, item.TYear)
	assert.Equal(t, by, item.EnteredBy)
}

func TestBuildRecordsSharedTimestamp(t *testing.T) {
	capturedAt := time.Date(2024, time.December, 31, 23, 59, 58, 0, time.UTC)

	items, err := BuildRecords([]forms.Row{
		stockRow("SKU1", "Widget", "Tools", "acme", "10", "2.50"),
		stockRow("SKU2", "Gadget", "Tools", "globex", "4", "12"),
	}, capturedAt, models.Identity{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, items[0].StockDate, items[1].StockDate)
	assert.Equal(t, items[0].StockTime, items[1].StockTime)
}

func TestBuildRecordsRejectsNonNumericSize(t *testing.T) {
	items, err := BuildRecords([]forms.Row{
		stockRow("SKU1", "Widget", "Tools", "acme", "lots", "2.50"),
	}, time.Now(), models.Identity{})

	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Nil(t, items)
}

func TestBuildRecordsRejectsNonNumericAmount(t *testing.T) {
	items, err := BuildRecords([]forms.Row{
		stockRow("SKU1", "Widget", "Tools", "acme", "10", "cheap"),
	}, time.Now(), models.Identity{})

	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Nil(t, items)
}

func TestSubmitStockPersistsDecodedRows(t *testing.T) {
	store := &fakeStockStore{}
	svc := NewService(store, nil)
	svc.now = func() time.Time { return time.Date(2024, time.March, 7, 9, 5, 4, 0, time.UTC) }

	form := url.Values{
		"itemid1":   {"SKU1"},
		"itemname1": {"Widget"},
		"category1": {"Tools"},
		"brand1":    {"acme"},
		"size1":     {"10"},
		"amount1":   {"2.50"},
		"itemid2":   {"SKU2"},
		"itemname2": {"Gadget"},
		"category2": {"Tools"},
		"brand2":    {"globex"},
		"size2":     {"4"},
		"amount2":   {"12"},
		"number1":   {"1"},
		"rowtotal1": {"25"},
	}

	items, err := svc.SubmitStock(context.Background(), form, models.Identity{User: "keyur", Role: "staff"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Len(t, store.inserted, 2)

	assert.Equal(t, "SKU1", store.inserted[0].ItemID)
	assert.Equal(t, "GLOBEX", store.inserted[1].Brand)
	assert.Equal(t, "keyur", store.inserted[0].EnteredBy.User)
}

func TestSubmitStockRejectsEmptySubmission(t *testing.T) {
	store := &fakeStockStore{}
	svc := NewService(store, nil)

	_, err := svc.SubmitStock(context.Background(), url.Values{"phone": {"123"}}, models.Identity{})
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, store.inserted)
}

func TestSubmitStockRejectsBadRowBeforeInsert(t *testing.T) {
	store := &fakeStockStore{}
	svc := NewService(store, nil)

	form := url.Values{
		"itemid1":   {"SKU1"},
		"itemname1": {"Widget"},
		"category1": {"Tools"},
		"brand1":    {"acme"},
		"size1":     {"ten"},
		"amount1":   {"2.50"},
	}

	_, err := svc.SubmitStock(context.Background(), form, models.Identity{})
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, store.inserted)
}
