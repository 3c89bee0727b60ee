package off

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
)

type staticConfig struct {
	strings map[string]string
	ints    map[string]int
}

func (c *staticConfig) Close() error                        { return nil }
func (c *staticConfig) GetInt(key string) int               { return c.ints[key] }
func (c *staticConfig) GetInt32(key string) int32           { return int32(c.ints[key]) }
func (c *staticConfig) GetInt64(key string) int64           { return int64(c.ints[key]) }
func (c *staticConfig) GetUint(key string) uint             { return uint(c.ints[key]) }
func (c *staticConfig) GetBool(string) bool                 { return false }
func (c *staticConfig) GetFloat64(key string) float64       { return float64(c.ints[key]) }
func (c *staticConfig) GetString(key string) string         { return c.strings[key] }
func (c *staticConfig) GetSecond(key string) time.Duration  { return time.Duration(c.ints[key]) * time.Second }
func (c *staticConfig) GetMinute(key string) time.Duration  { return time.Duration(c.ints[key]) * time.Minute }
func (c *staticConfig) GetHour(key string) time.Duration    { return time.Duration(c.ints[key]) * time.Hour }
func (c *staticConfig) GetDay(key string) time.Duration     { return time.Duration(c.ints[key]) * 24 * time.Hour }
func (c *staticConfig) GetBinary(string) []byte             { return nil }
func (c *staticConfig) GetArray(string) []string            { return nil }

func newTestClient(baseURL string) *Client {
	return NewClient(&staticConfig{
		strings: map[string]string{
			"modules.nutrition.off.product_base_url": baseURL,
			"modules.nutrition.off.search_base_url":  baseURL,
		},
		ints: map[string]int{
			"modules.nutrition.off.timeout_seconds":  2,
			"modules.nutrition.off.search_page_size": 20,
		},
	}, instrument.NewNoop())
}

func TestGetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/5901234123457.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Dark Chocolate",
				"brands": "Choco Co",
				"code": "5901234123457",
				"nutriments": {
					"energy-kcal_100g": 545.7,
					"proteins_100g": "7.9",
					"carbohydrates_100g": -3,
					"fat_100g": null
				}
			}
		}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetProduct(context.Background(), "5901234123457")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}

	if got.Name != "Dark Chocolate" || got.Brand != "Choco Co" {
		t.Fatalf("unexpected product: %+v", got)
	}
	if got.Calories != 545 {
		t.Fatalf("fractional calories must floor, got %d", got.Calories)
	}
	if got.Protein != 7 {
		t.Fatalf("string-typed protein must parse and floor, got %d", got.Protein)
	}
	if got.Carbs != 0 {
		t.Fatalf("negative carbs must clamp to zero, got %d", got.Carbs)
	}
	if got.Fat != 0 {
		t.Fatalf("null fat must read as zero, got %d", got.Fat)
	}
	if got.Barcode != "5901234123457" {
		t.Fatalf("expected requested barcode on the result, got %q", got.Barcode)
	}
}

func TestGetProductStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetProduct(context.Background(), "000")
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetProductMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GetProduct(context.Background(), "123"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGetProductServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GetProduct(context.Background(), "123"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi/search.pl" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search_terms") != "nescafe" || q.Get("json") != "1" || q.Get("page_size") != "20" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"products": [
				{"product_name": "Nescafe Gold", "brands": "Nestle", "code": "1", "nutriments": {"energy-kcal_100g": 80}},
				{"product_name": "", "code": "2", "nutriments": {}}
			]
		}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Search(context.Background(), "nescafe")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Name != "Nescafe Gold" || got[0].Calories != 80 {
		t.Fatalf("unexpected first result: %+v", got[0])
	}
	if got[1].Name != "Unnamed product" {
		t.Fatalf("missing names get a placeholder, got %q", got[1].Name)
	}
}

func TestSearchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Search(context.Background(), "slow"); err == nil {
		t.Fatalf("expected timeout error")
	}
}
