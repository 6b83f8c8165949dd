package barcode

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	"github.com/cyclehub/inventoryman/pkg/clients/bwip"
)

type fakeRenderer struct {
	mu       sync.Mutex
	requests []bwip.RenderRequest
	failFor  string

	inFlight    atomic.Int32
	maxObserved atomic.Int32
}

func (f *fakeRenderer) RenderPNG(_ context.Context, req bwip.RenderRequest) ([]byte, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		observed := f.maxObserved.Load()
		if current <= observed || f.maxObserved.CompareAndSwap(observed, current) {
			break
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if req.Text == f.failFor {
		return nil, errors.New("render backend unavailable")
	}
	return []byte("png-" + req.Text), nil
}

func products(n int) []models.LabelProduct {
	out := make([]models.LabelProduct, n)
	for i := range out {
		out[i] = models.LabelProduct{
			ItemID:   fmt.Sprintf("SKU%03d", i+1),
			ItemName: fmt.Sprintf("Item %d", i+1),
			Brand:    "ACME",
			Amount:   float64(i + 1),
		}
	}
	return out
}

func TestGeneratePagesChunksAt48(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewService(renderer, nil)

	pages, err := svc.GeneratePages(context.Background(), products(100))
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 48)
	assert.Len(t, pages[1], 48)
	assert.Len(t, pages[2], 4)
}

func TestGeneratePagesPreservesInputOrder(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewService(renderer, nil)

	pages, err := svc.GeneratePages(context.Background(), products(50))
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, "Item 1(ACME)", pages[0][0].HeaderText)
	assert.Equal(t, "Item 48(ACME)", pages[0][47].HeaderText)
	assert.Equal(t, "Item 49(ACME)", pages[1][0].HeaderText)
}

func TestGeneratePagesLabelContents(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewService(renderer, nil)

	pages, err := svc.GeneratePages(context.Background(), []models.LabelProduct{
		{ItemID: "SKU1", ItemName: "Widget", Brand: "ACME", Amount: 2.5},
	})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Len(t, pages[0], 1)

	label := pages[0][0]
	assert.Equal(t, "Widget(ACME)", label.HeaderText)
	assert.Equal(t, "2.5", label.FooterText)
	assert.Contains(t, label.Sticker, "data:image/png;base64,")

	require.Len(t, renderer.requests, 1)
	req := renderer.requests[0]
	assert.Equal(t, "code128", req.Symbology)
	assert.Equal(t, "SKU1", req.Text)
	assert.Equal(t, 3, req.Scale)
	assert.InDelta(t, 5.25*37.7952756, req.WidthPts, 0.0001)
	assert.InDelta(t, 2.0*37.7952756, req.HeightPts, 0.0001)
}

func TestGeneratePagesFailsWholeBatchOnOneError(t *testing.T) {
	renderer := &fakeRenderer{failFor: "SKU037"}
	svc := NewService(renderer, nil)

	pages, err := svc.GeneratePages(context.Background(), products(60))
	require.ErrorIs(t, err, apperror.ErrImaging)
	assert.Contains(t, err.Error(), "SKU037")
	assert.Nil(t, pages)
}

func TestGeneratePagesRejectsEmptyBatch(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewService(renderer, nil)

	_, err := svc.GeneratePages(context.Background(), nil)
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, renderer.requests)
}

func TestGeneratePagesCapsConcurrentRenders(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewService(renderer, nil)
	svc.maxInFlight = 3

	_, err := svc.GeneratePages(context.Background(), products(40))
	require.NoError(t, err)

	assert.LessOrEqual(t, renderer.maxObserved.Load(), int32(3))
}
