package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

// InsertOrders bulk-inserts the order lines of one transaction.
func (r *Repository) InsertOrders(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		docs = append(docs, line)
	}

	if _, err := r.db.Collection(ordersCollection).InsertMany(ctx, docs); err != nil {
		return wrapWriteErr("insert orders", err)
	}
	return nil
}

// ListOrders returns every order line.
func (r *Repository) ListOrders(ctx context.Context) ([]models.OrderLine, error) {
	cursor, err := r.db.Collection(ordersCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: find orders: %v", apperror.ErrPersistence, err)
	}

	var lines []models.OrderLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", apperror.ErrPersistence, err)
	}
	return lines, nil
}

// FindOrdersByTransaction returns the order lines sharing one transaction id.
func (r *Repository) FindOrdersByTransaction(ctx context.Context, transactionID string) ([]models.OrderLine, error) {
	cursor, err := r.db.Collection(ordersCollection).Find(ctx, bson.D{{Key: "TransactionID", Value: transactionID}})
	if err != nil {
		return nil, fmt.Errorf("%w: find transaction orders: %v", apperror.ErrPersistence, err)
	}

	var lines []models.OrderLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("%w: decode transaction orders: %v", apperror.ErrPersistence, err)
	}
	return lines, nil
}

// DeleteOrders removes order lines by hex object id.
func (r *Repository) DeleteOrders(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid order id %q", apperror.ErrValidation, id)
	}

	if _, err := r.db.Collection(ordersCollection).DeleteMany(ctx, bson.D{{Key: "_id", Value: objectID}}); err != nil {
		return wrapWriteErr("delete orders", err)
	}
	return nil
}

// CountOrders counts every document in the orders collection.
func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(ordersCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: count orders: %v", apperror.ErrPersistence, err)
	}
	return count, nil
}

// AggregateSales runs a grouped sales pipeline against the orders collection.
func (r *Repository) AggregateSales(ctx context.Context, pipeline mongo.Pipeline) ([]models.SalesSummaryRow, error) {
	cursor, err := r.db.Collection(ordersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate sales: %v", apperror.ErrPersistence, err)
	}

	var rows []models.SalesSummaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode sales rows: %v", apperror.ErrPersistence, err)
	}
	return rows, nil
}

// AggregateSalesTotal runs a grand-total pipeline. A window with no matching
// orders yields a zero total.
func (r *Repository) AggregateSalesTotal(ctx context.Context, pipeline mongo.Pipeline) (*models.SalesTotal, error) {
	cursor, err := r.db.Collection(ordersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate sales total: %v", apperror.ErrPersistence, err)
	}

	var totals []models.SalesTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("%w: decode sales total: %v", apperror.ErrPersistence, err)
	}
	if len(totals) == 0 {
		return &models.SalesTotal{}, nil
	}
	return &totals[0], nil
}

// AggregateTransactions runs a per-transaction rollup pipeline.
func (r *Repository) AggregateTransactions(ctx context.Context, pipeline mongo.Pipeline) ([]models.TransactionSummary, error) {
	cursor, err := r.db.Collection(ordersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate transactions: %v", apperror.ErrPersistence, err)
	}

	var rows []models.TransactionSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode transactions: %v", apperror.ErrPersistence, err)
	}
	return rows, nil
}
