package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

// Collection names used by the application.
const (
	usersCollection      = "users"
	stocksCollection     = "stocks"
	ordersCollection     = "orders"
	customerCollection   = "customer"
	categoriesCollection = "categories"
	brandsCollection     = "brands"
	sizesCollection      = "sizes"
)

// UserStore provides access to staff accounts.
type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) error
}

// StockStore provides access to the stocks collection.
type StockStore interface {
	InsertStocks(ctx context.Context, items []models.StockItem) error
	ListStocks(ctx context.Context) ([]models.StockItem, error)
	FilterStocks(ctx context.Context, filter models.StockFilter) ([]models.StockItem, error)
	FindStockByItemID(ctx context.Context, itemID string) (*models.StockItem, error)
	DeleteStock(ctx context.Context, id string) error
	CountStocks(ctx context.Context) (int64, error)
	AggregateStocks(ctx context.Context, pipeline mongo.Pipeline) ([]models.StockSummaryRow, error)
}

// OrderStore provides access to the orders collection.
type OrderStore interface {
	InsertOrders(ctx context.Context, lines []models.OrderLine) error
	ListOrders(ctx context.Context) ([]models.OrderLine, error)
	FindOrdersByTransaction(ctx context.Context, transactionID string) ([]models.OrderLine, error)
	DeleteOrders(ctx context.Context, id string) error
	CountOrders(ctx context.Context) (int64, error)
	AggregateSales(ctx context.Context, pipeline mongo.Pipeline) ([]models.SalesSummaryRow, error)
	AggregateSalesTotal(ctx context.Context, pipeline mongo.Pipeline) (*models.SalesTotal, error)
	AggregateTransactions(ctx context.Context, pipeline mongo.Pipeline) ([]models.TransactionSummary, error)
}

// CustomerStore provides access to the customer collection.
type CustomerStore interface {
	UpsertCustomer(ctx context.Context, customer models.Customer) error
	FindCustomersByPhone(ctx context.Context, phone string) ([]models.Customer, error)
}

// CatalogStore provides access to the category, brand and size tags.
type CatalogStore interface {
	InsertCategory(ctx context.Context, name string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, name string) error
	CountCategories(ctx context.Context) (int64, error)
	InsertBrand(ctx context.Context, name string) error
	ListBrands(ctx context.Context) ([]models.Brand, error)
	DeleteBrand(ctx context.Context, name string) error
	CountBrands(ctx context.Context) (int64, error)
	ListSizes(ctx context.Context) ([]models.Size, error)
}

// Repository implements every store interface over a single MongoDB database
// handle. The client is constructed once at startup and injected wherever a
// store is needed.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// EnsureIndexes creates the unique indexes that back uniqueness of usernames,
// categories and brands. Concurrent check-then-insert races surface as
// duplicate-key errors instead of silently creating duplicates.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{usersCollection, bson.D{{Key: "username", Value: 1}}},
		{categoriesCollection, bson.D{{Key: "Category", Value: 1}}},
		{brandsCollection, bson.D{{Key: "Brand", Value: 1}}},
	}

	for _, idx := range indexes {
		_, err := r.db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.keys,
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}

	return nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// wrapWriteErr maps driver errors to the shared taxonomy.
func wrapWriteErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", apperror.ErrDuplicate, op)
	}
	return fmt.Errorf("%w: %s: %v", apperror.ErrPersistence, op, err)
}
