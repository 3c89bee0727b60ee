// Package off is a thin client for the OpenFoodFacts HTTP API.
package off

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Client struct {
	http           *http.Client
	productBaseURL string
	searchBaseURL  string
	pageSize       int
	ins            instrument.Instrumentation
}

func NewClient(cfg config.Config, ins instrument.Instrumentation) *Client {
	timeout := cfg.GetSecond("modules.nutrition.off.timeout_seconds")
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	productBase := cfg.GetString("modules.nutrition.off.product_base_url")
	if productBase == "" {
		productBase = "https://world.openfoodfacts.org"
	}

	searchBase := cfg.GetString("modules.nutrition.off.search_base_url")
	if searchBase == "" {
		searchBase = "https://tr.openfoodfacts.org"
	}

	pageSize := cfg.GetInt("modules.nutrition.off.search_page_size")
	if pageSize <= 0 {
		pageSize = 20
	}

	return &Client{
		http:           &http.Client{Timeout: timeout},
		productBaseURL: strings.TrimRight(productBase, "/"),
		searchBaseURL:  strings.TrimRight(searchBase, "/"),
		pageSize:       pageSize,
		ins:            ins,
	}
}

type productPayload struct {
	ProductName string     `json:"product_name"`
	Brands      string     `json:"brands"`
	Code        string     `json:"code"`
	Nutriments  nutriments `json:"nutriments"`
}

type nutriments struct {
	EnergyKcal100g flexNumber `json:"energy-kcal_100g"`
	Proteins100g   flexNumber `json:"proteins_100g"`
	Carbs100g      flexNumber `json:"carbohydrates_100g"`
	Fat100g        flexNumber `json:"fat_100g"`
}

// flexNumber accepts JSON numbers and numeric strings; anything else reads
// as zero. OpenFoodFacts serves both forms for the same field.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}

	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = flexNumber(v)
	return nil
}

// Int floors the value and clamps negatives to zero.
func (f flexNumber) Int() int {
	v := math.Floor(float64(f))
	if v < 0 {
		return 0
	}
	return int(v)
}

func (c *Client) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("nutrition.outbound.off").Start(ctx, name)
}

func (c *Client) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetProduct fetches a single product by barcode.
// Returns goerror.ErrNotFound when the API reports status != 1.
func (c *Client) GetProduct(ctx context.Context, barcode string) (_ *entity.LookupResult, err error) {
	ctx, span := c.startSpan(ctx, "GetProduct")
	defer func() { c.endSpan(span, err) }()

	u := fmt.Sprintf("%s/api/v0/product/%s.json", c.productBaseURL, url.PathEscape(barcode))

	var payload struct {
		Status  int            `json:"status"`
		Product productPayload `json:"product"`
	}
	if err = c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	if payload.Status != 1 {
		err = goerror.ErrNotFound
		return nil, err
	}

	result := toLookupResult(payload.Product)
	result.Barcode = barcode

	return &result, nil
}

// Search runs a free-text search and returns the raw result page.
func (c *Client) Search(ctx context.Context, query string) (_ []entity.LookupResult, err error) {
	ctx, span := c.startSpan(ctx, "Search")
	defer func() { c.endSpan(span, err) }()

	q := url.Values{}
	q.Set("search_terms", query)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page_size", strconv.Itoa(c.pageSize))

	u := c.searchBaseURL + "/cgi/search.pl?" + q.Encode()

	var payload struct {
		Products []productPayload `json:"products"`
	}
	if err = c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	out := make([]entity.LookupResult, 0, len(payload.Products))
	for _, p := range payload.Products {
		out = append(out, toLookupResult(p))
	}

	return out, nil
}

func (c *Client) getJSON(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("off: unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func toLookupResult(p productPayload) entity.LookupResult {
	name := p.ProductName
	if name == "" {
		name = "Unnamed product"
	}

	return entity.LookupResult{
		Source:   entity.SourceAPI,
		Barcode:  p.Code,
		Name:     name,
		Brand:    p.Brands,
		Calories: p.Nutriments.EnergyKcal100g.Int(),
		Protein:  p.Nutriments.Proteins100g.Int(),
		Carbs:    p.Nutriments.Carbs100g.Int(),
		Fat:      p.Nutriments.Fat100g.Int(),
	}
}
