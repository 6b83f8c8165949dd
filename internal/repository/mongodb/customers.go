package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

// UpsertCustomer records the customer contact for a bill, keyed by phone.
func (r *Repository) UpsertCustomer(ctx context.Context, customer models.Customer) error {
	filter := bson.D{{Key: "PhoneNumber", Value: customer.PhoneNumber}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "PhoneNumber", Value: customer.PhoneNumber},
		{Key: "CustomerName", Value: customer.CustomerName},
	}}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.db.Collection(customerCollection).UpdateOne(ctx, filter, update, opts); err != nil {
		return wrapWriteErr("upsert customer", err)
	}
	return nil
}

// FindCustomersByPhone returns the contact records for a phone number, most
// recent first.
func (r *Repository) FindCustomersByPhone(ctx context.Context, phone string) ([]models.Customer, error) {
	filter := bson.D{{Key: "PhoneNumber", Value: bson.D{{Key: "$in", Value: bson.A{phone}}}}}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.db.Collection(customerCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find customers: %v", apperror.ErrPersistence, err)
	}

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("%w: decode customers: %v", apperror.ErrPersistence, err)
	}
	return customers, nil
}
