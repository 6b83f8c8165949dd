package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

type fakeCatalogStore struct {
	categories []string
	brands     []string
}

func (f *fakeCatalogStore) InsertCategory(_ context.Context, name string) error {
	for _, existing := range f.categories {
		if existing == name {
			return fmt.Errorf("%w: insert category", apperror.ErrDuplicate)
		}
	}
	f.categories = append(f.categories, name)
	return nil
}

func (f *fakeCatalogStore) ListCategories(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, name := range f.categories {
		out = append(out, models.Category{Name: name})
	}
	return out, nil
}

func (f *fakeCatalogStore) DeleteCategory(_ context.Context, name string) error {
	for i, existing := range f.categories {
		if existing == name {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCatalogStore) CountCategories(_ context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCatalogStore) InsertBrand(_ context.Context, name string) error {
	for _, existing := range f.brands {
		if existing == name {
			return fmt.Errorf("%w: insert brand", apperror.ErrDuplicate)
		}
	}
	f.brands = append(f.brands, name)
	return nil
}

func (f *fakeCatalogStore) ListBrands(_ context.Context) ([]models.Brand, error) {
	out := make([]models.Brand, 0, len(f.brands))
	for _, name := range f.brands {
		out = append(out, models.Brand{Name: name})
	}
	return out, nil
}

func (f *fakeCatalogStore) DeleteBrand(_ context.Context, name string) error {
	for i, existing := range f.brands {
		if existing == name {
			f.brands = append(f.brands[:i], f.brands[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCatalogStore) CountBrands(_ context.Context) (int64, error) {
	return int64(len(f.brands)), nil
}

func (f *fakeCatalogStore) ListSizes(_ context.Context) ([]models.Size, error) {
	return []models.Size{{Name: "S"}, {Name: "M"}, {Name: "L"}}, nil
}

func TestAddCategoryTrimsName(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := NewService(store, nil)

	require.NoError(t, svc.AddCategory(context.Background(), "  Tools  "))
	assert.Equal(t, []string{"Tools"}, store.categories)
}

func TestAddCategoryRejectsBlank(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := NewService(store, nil)

	err := svc.AddCategory(context.Background(), "   ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, store.categories)
}

func TestAddCategoryDuplicate(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := NewService(store, nil)

	require.NoError(t, svc.AddCategory(context.Background(), "Tools"))
	err := svc.AddCategory(context.Background(), "Tools")
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestAddBrandUppercases(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := NewService(store, nil)

	require.NoError(t, svc.AddBrand(context.Background(), "acme"))
	assert.Equal(t, []string{"ACME"}, store.brands)

	// Case variants collapse to the same tag.
	err := svc.AddBrand(context.Background(), "Acme")
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestDeleteBrand(t *testing.T) {
	store := &fakeCatalogStore{brands: []string{"ACME", "GLOBEX"}}
	svc := NewService(store, nil)

	require.NoError(t, svc.DeleteBrand(context.Background(), "ACME"))
	assert.Equal(t, []string{"GLOBEX"}, store.brands)

	err := svc.DeleteBrand(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
