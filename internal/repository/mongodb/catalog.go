package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

// InsertCategory adds a category tag.
func (r *Repository) InsertCategory(ctx context.Context, name string) error {
	doc := bson.D{{Key: "Category", Value: name}}
	if _, err := r.db.Collection(categoriesCollection).InsertOne(ctx, doc); err != nil {
		return wrapWriteErr("insert category", err)
	}
	return nil
}

// ListCategories returns every category tag.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.db.Collection(categoriesCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: find categories: %v", apperror.ErrPersistence, err)
	}

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("%w: decode categories: %v", apperror.ErrPersistence, err)
	}
	return categories, nil
}

// DeleteCategory removes a category tag by name.
func (r *Repository) DeleteCategory(ctx context.Context, name string) error {
	if _, err := r.db.Collection(categoriesCollection).DeleteOne(ctx, bson.D{{Key: "Category", Value: name}}); err != nil {
		return wrapWriteErr("delete category", err)
	}
	return nil
}

// CountCategories counts every category tag.
func (r *Repository) CountCategories(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(categoriesCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: count categories: %v", apperror.ErrPersistence, err)
	}
	return count, nil
}

// InsertBrand adds a brand tag.
func (r *Repository) InsertBrand(ctx context.Context, name string) error {
	doc := bson.D{{Key: "Brand", Value: name}}
	if _, err := r.db.Collection(brandsCollection).InsertOne(ctx, doc); err != nil {
		return wrapWriteErr("insert brand", err)
	}
	return nil
}

// ListBrands returns every brand tag.
func (r *Repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	cursor, err := r.db.Collection(brandsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: find brands: %v", apperror.ErrPersistence, err)
	}

	var brands []models.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("%w: decode brands: %v", apperror.ErrPersistence, err)
	}
	return brands, nil
}

// DeleteBrand removes a brand tag by name.
func (r *Repository) DeleteBrand(ctx context.Context, name string) error {
	if _, err := r.db.Collection(brandsCollection).DeleteOne(ctx, bson.D{{Key: "Brand", Value: name}}); err != nil {
		return wrapWriteErr("delete brand", err)
	}
	return nil
}

// CountBrands counts every brand tag.
func (r *Repository) CountBrands(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(brandsCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: count brands: %v", apperror.ErrPersistence, err)
	}
	return count, nil
}

// ListSizes returns the predefined size options.
func (r *Repository) ListSizes(ctx context.Context) ([]models.Size, error) {
	cursor, err := r.db.Collection(sizesCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: find sizes: %v", apperror.ErrPersistence, err)
	}

	var sizes []models.Size
	if err := cursor.All(ctx, &sizes); err != nil {
		return nil, fmt.Errorf("%w: decode sizes: %v", apperror.ErrPersistence, err)
	}
	return sizes, nil
}
