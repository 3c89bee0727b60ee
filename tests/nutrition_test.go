package tests

import (
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestNutritionLookup(t *testing.T) {
	cookie := loginSession(t)

	t.Run("EmptyQuery", func(t *testing.T) {
		status, _, body := doJSON(t, http.MethodGet, "/api/v1/nutrition/lookup?q=", nil, auth{cookie: cookie})
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", status, body)
		}

		var out struct {
			Found   bool  `json:"found"`
			Results []any `json:"results"`
		}
		decodeSuccess(t, body, &out)
		if out.Found || len(out.Results) != 0 {
			t.Fatalf("empty query lookup = %+v, want not found", out)
		}
	})

	t.Run("UnknownBarcode", func(t *testing.T) {
		// Lookups never fail; unknown products come back as not found.
		status, _, body := doJSON(t, http.MethodGet,
			"/api/v1/nutrition/lookup?q=0000000000000&mode=barcode", nil, auth{cookie: cookie})
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", status, body)
		}

		var out struct {
			Found bool `json:"found"`
		}
		decodeSuccess(t, body, &out)
		if out.Found {
			t.Fatal("unknown barcode reported as found")
		}
	})
}

func TestNutritionMeals(t *testing.T) {
	cookie := loginSession(t)
	today := time.Now().UTC().Format("2006-01-02")

	var created struct {
		ID string `json:"id"`
	}
	status, _, body := doJSON(t, http.MethodPost, "/api/v1/nutrition/meals", map[string]any{
		"name":     "grilled chicken",
		"eaten_on": today,
		"calories": 230,
		"protein":  31,
		"carbs":    0,
		"fat":      11,
	}, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("create meal status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &created)
	if created.ID == "" {
		t.Fatal("meal created without id")
	}

	status, _, body = doJSON(t, http.MethodGet, "/api/v1/nutrition/meals?date="+today, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("list meals status = %d: %s", status, body)
	}
	var list struct {
		Meals []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"meals"`
	}
	decodeSuccess(t, body, &list)
	var found bool
	for _, m := range list.Meals {
		if m.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created meal %s missing from list", created.ID)
	}

	status, _, body = doJSON(t, http.MethodGet, "/api/v1/nutrition/summary?date="+today, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("summary status = %d: %s", status, body)
	}
	var summary struct {
		Meals    int `json:"meals"`
		Calories int `json:"calories"`
	}
	decodeSuccess(t, body, &summary)
	if summary.Meals < 1 || summary.Calories < 230 {
		t.Fatalf("summary = %+v", summary)
	}

	status, _, body = doJSON(t, http.MethodDelete, "/api/v1/nutrition/meals/"+url.PathEscape(created.ID), nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("delete meal status = %d: %s", status, body)
	}

	status, _, _ = doJSON(t, http.MethodDelete, "/api/v1/nutrition/meals/"+url.PathEscape(created.ID), nil, auth{cookie: cookie})
	if status != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", status)
	}
}

func TestNutritionMealValidation(t *testing.T) {
	cookie := loginSession(t)

	status, _, body := doJSON(t, http.MethodPost, "/api/v1/nutrition/meals", map[string]any{
		"eaten_on": time.Now().UTC().Format("2006-01-02"),
		"calories": 100,
	}, auth{cookie: cookie})
	if status == http.StatusOK {
		t.Fatalf("meal without name accepted: %s", body)
	}
}
