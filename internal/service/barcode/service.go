package barcode

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	"github.com/cyclehub/inventoryman/pkg/clients/bwip"
)

const (
	// Physical label dimensions of the sticker sheet.
	labelWidthCm  = 5.25
	labelHeightCm = 2.0
	cmToPoints    = 37.7952756

	symbology    = "code128"
	renderScale  = 3
	pageCapacity = 48

	// Cap on concurrent in-flight renders so a large batch cannot exhaust
	// the rendering service.
	defaultMaxInFlight = 8
)

// Service renders one label per product and partitions the batch into
// fixed-capacity print pages.
type Service struct {
	renderer    bwip.Client
	logger      *zap.Logger
	maxInFlight int
}

// NewService wires a new barcode batch generator.
func NewService(renderer bwip.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, logger: logger, maxInFlight: defaultMaxInFlight}
}

// GeneratePages renders one label per product, in input order, and chunks the
// results into pages of at most 48 labels. The batch is all-or-nothing: one
// failed render fails the whole batch and nothing is returned.
func (s *Service) GeneratePages(ctx context.Context, products []models.LabelProduct) ([][]models.Label, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: no products selected", apperror.ErrValidation)
	}

	labels := make([]models.Label, len(products))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)

	for i, product := range products {
		g.Go(func() error {
			png, err := s.renderer.RenderPNG(ctx, bwip.RenderRequest{
				Symbology: symbology,
				Text:      product.ItemID,
				Scale:     renderScale,
				WidthPts:  labelWidthCm * cmToPoints,
				HeightPts: labelHeightCm * cmToPoints,
			})
			if err != nil {
				return fmt.Errorf("%w: label for item %s: %v", apperror.ErrImaging, product.ItemID, err)
			}

			labels[i] = models.Label{
				Sticker:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
				HeaderText: product.ItemName + "(" + product.Brand + ")",
				FooterText: strconv.FormatFloat(product.Amount, 'f', -1, 64),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("label batch rendered", zap.Int("labels", len(labels)))
	return chunkLabels(labels, pageCapacity), nil
}

// chunkLabels partitions labels into pages of at most capacity, preserving
// order; the last page may be short.
func chunkLabels(labels []models.Label, capacity int) [][]models.Label {
	pages := make([][]models.Label, 0, (len(labels)+capacity-1)/capacity)
	for start := 0; start < len(labels); start += capacity {
		end := start + capacity
		if end > len(labels) {
			end = len(labels)
		}
		pages = append(pages, labels[start:end])
	}
	return pages
}
