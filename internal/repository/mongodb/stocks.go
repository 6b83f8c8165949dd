package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

// InsertStocks bulk-inserts the submitted intake rows. The write is not
// transactional; a failure partway through may leave a subset persisted.
func (r *Repository) InsertStocks(ctx context.Context, items []models.StockItem) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}

	if _, err := r.db.Collection(stocksCollection).InsertMany(ctx, docs); err != nil {
		return wrapWriteErr("insert stocks", err)
	}
	return nil
}

// ListStocks returns every stock item.
func (r *Repository) ListStocks(ctx context.Context) ([]models.StockItem, error) {
	return r.findStocks(ctx, bson.D{})
}

// FilterStocks returns stock items matching the non-empty filter fields.
func (r *Repository) FilterStocks(ctx context.Context, filter models.StockFilter) ([]models.StockItem, error) {
	query := bson.D{}
	if filter.ItemID != "" {
		query = append(query, bson.E{Key: "ItemID", Value: filter.ItemID})
	}
	if filter.ItemName != "" {
		query = append(query, bson.E{Key: "ItemName", Value: filter.ItemName})
	}
	if filter.Category != "" {
		query = append(query, bson.E{Key: "Category", Value: filter.Category})
	}
	if filter.Brand != "" {
		query = append(query, bson.E{Key: "Brand", Value: filter.Brand})
	}
	return r.findStocks(ctx, query)
}

func (r *Repository) findStocks(ctx context.Context, query bson.D) ([]models.StockItem, error) {
	cursor, err := r.db.Collection(stocksCollection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: find stocks: %v", apperror.ErrPersistence, err)
	}

	var items []models.StockItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode stocks: %v", apperror.ErrPersistence, err)
	}
	return items, nil
}

// FindStockByItemID returns the stock record for the given item id, used by
// the billing page to autofill line items.
func (r *Repository) FindStockByItemID(ctx context.Context, itemID string) (*models.StockItem, error) {
	var item models.StockItem
	err := r.db.Collection(stocksCollection).FindOne(ctx, bson.D{{Key: "ItemID", Value: itemID}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: stock item %s", apperror.ErrNotFound, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find stock item: %v", apperror.ErrPersistence, err)
	}
	return &item, nil
}

// DeleteStock removes one stock record by its hex object id.
func (r *Repository) DeleteStock(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid stock id %q", apperror.ErrValidation, id)
	}

	if _, err := r.db.Collection(stocksCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}}); err != nil {
		return wrapWriteErr("delete stock", err)
	}
	return nil
}

// CountStocks counts every document in the stocks collection.
func (r *Repository) CountStocks(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(stocksCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: count stocks: %v", apperror.ErrPersistence, err)
	}
	return count, nil
}

// AggregateStocks runs a rollup pipeline against the stocks collection.
func (r *Repository) AggregateStocks(ctx context.Context, pipeline mongo.Pipeline) ([]models.StockSummaryRow, error) {
	cursor, err := r.db.Collection(stocksCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate stocks: %v", apperror.ErrPersistence, err)
	}

	var rows []models.StockSummaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode stock rollup: %v", apperror.ErrPersistence, err)
	}
	return rows, nil
}
