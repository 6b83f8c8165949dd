package bwip

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cyclehub/inventoryman/internal/config"
)

// Client exposes the barcode rendering operations used by the application.
type Client interface {
	RenderPNG(ctx context.Context, req RenderRequest) ([]byte, error)
}

// APIClient is a resty-backed implementation of Client that talks to a
// BWIPP rendering service.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a barcode API client using the provided configuration values.
func NewClient(cfg config.BarcodeConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// RenderRequest describes one barcode to render. Width and height are in
// points; the caller converts from physical units.
type RenderRequest struct {
	Symbology   string
	Text        string
	Scale       int
	WidthPts    float64
	HeightPts   float64
	IncludeText bool
}

// RenderPNG renders one barcode and returns the raw PNG bytes.
func (c *APIClient) RenderPNG(ctx context.Context, req RenderRequest) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"bcid":        req.Symbology,
			"text":        req.Text,
			"scale":       strconv.Itoa(req.Scale),
			"width":       strconv.FormatFloat(req.WidthPts, 'f', 4, 64),
			"height":      strconv.FormatFloat(req.HeightPts, 'f', 4, 64),
			"includetext": strconv.FormatBool(req.IncludeText),
		}).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("render barcode: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("barcode api error: code=%d, message=%s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	return resp.Body(), nil
}
