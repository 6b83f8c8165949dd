package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	repo "github.com/cyclehub/inventoryman/internal/repository/mongodb"
)

// Service manages the category, brand and size tags backing the intake form.
type Service struct {
	store  repo.CatalogStore
	logger *zap.Logger
}

// NewService wires a new catalog service instance.
func NewService(store repo.CatalogStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// AddCategory creates a category tag. Uniqueness is enforced by the store's
// unique index.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name must not be empty", apperror.ErrValidation)
	}
	if err := s.store.InsertCategory(ctx, name); err != nil {
		return err
	}
	s.logger.Info("category added", zap.String("name", name))
	return nil
}

// ListCategories returns every category tag.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// DeleteCategory removes a category tag by name.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: category name must not be empty", apperror.ErrValidation)
	}
	return s.store.DeleteCategory(ctx, name)
}

// AddBrand creates a brand tag, uppercased like the stock records that will
// reference it.
func (s *Service) AddBrand(ctx context.Context, name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("%w: brand name must not be empty", apperror.ErrValidation)
	}
	if err := s.store.InsertBrand(ctx, name); err != nil {
		return err
	}
	s.logger.Info("brand added", zap.String("name", name))
	return nil
}

// ListBrands returns every brand tag.
func (s *Service) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.store.ListBrands(ctx)
}

// DeleteBrand removes a brand tag by name.
func (s *Service) DeleteBrand(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: brand name must not be empty", apperror.ErrValidation)
	}
	return s.store.DeleteBrand(ctx, name)
}

// ListSizes returns the predefined size options.
func (s *Service) ListSizes(ctx context.Context) ([]models.Size, error) {
	return s.store.ListSizes(ctx)
}
