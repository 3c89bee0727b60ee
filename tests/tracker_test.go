package tests

import (
	"net/http"
	"testing"
	"time"
)

func TestTrackerWeights(t *testing.T) {
	cookie := loginSession(t)
	today := time.Now().UTC().Format("2006-01-02")

	var created struct {
		ID string `json:"id"`
	}
	status, _, body := doJSON(t, http.MethodPost, "/api/v1/tracker/weights", map[string]any{
		"measured_on": today,
		"kilograms":   82.4,
		"note":        "after run",
	}, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("create weight status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &created)

	status, _, _ = doJSON(t, http.MethodPost, "/api/v1/tracker/weights", map[string]any{
		"measured_on": today,
		"kilograms":   -3,
	}, auth{cookie: cookie})
	if status == http.StatusOK {
		t.Fatal("negative weight accepted")
	}

	status, _, body = doJSON(t, http.MethodDelete, "/api/v1/tracker/weights/"+created.ID, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("delete weight status = %d: %s", status, body)
	}
}

func TestTrackerTodos(t *testing.T) {
	cookie := loginSession(t)

	var created struct {
		ID   string `json:"id"`
		Done bool   `json:"done"`
	}
	status, _, body := doJSON(t, http.MethodPost, "/api/v1/tracker/todos", map[string]any{
		"title": "book dentist appointment",
	}, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("create todo status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &created)
	if created.Done {
		t.Fatal("new todo created as done")
	}

	var toggled struct {
		Done bool `json:"done"`
	}
	status, _, body = doJSON(t, http.MethodPatch, "/api/v1/tracker/todos/"+created.ID+"/toggle", nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &toggled)
	if !toggled.Done {
		t.Fatal("toggle did not mark todo done")
	}

	status, _, _ = doJSON(t, http.MethodDelete, "/api/v1/tracker/todos/"+created.ID, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("delete todo status = %d", status)
	}
}

func TestTrackerGoals(t *testing.T) {
	cookie := loginSession(t)

	var created struct {
		ID string `json:"id"`
	}
	status, _, body := doJSON(t, http.MethodPost, "/api/v1/tracker/goals", map[string]any{
		"title": "run a half marathon",
	}, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("create goal status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &created)

	var first struct {
		Achieved   bool   `json:"achieved"`
		AchievedAt string `json:"achieved_at"`
	}
	status, _, body = doJSON(t, http.MethodPatch, "/api/v1/tracker/goals/"+created.ID+"/achieve", nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("achieve status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &first)
	if !first.Achieved || first.AchievedAt == "" {
		t.Fatalf("achieve = %+v", first)
	}

	// Achieving again keeps the original timestamp.
	var second struct {
		AchievedAt string `json:"achieved_at"`
	}
	status, _, body = doJSON(t, http.MethodPatch, "/api/v1/tracker/goals/"+created.ID+"/achieve", nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("second achieve status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &second)
	if second.AchievedAt != first.AchievedAt {
		t.Fatalf("achieved_at changed from %s to %s", first.AchievedAt, second.AchievedAt)
	}

	status, _, _ = doJSON(t, http.MethodDelete, "/api/v1/tracker/goals/"+created.ID, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("delete goal status = %d", status)
	}
}

func TestTrackerShortcuts(t *testing.T) {
	cookie := loginSession(t)

	status, _, body := doJSON(t, http.MethodPost, "/api/v1/tracker/shortcuts", map[string]any{
		"title": "bank",
		"url":   "not a url",
	}, auth{cookie: cookie})
	if status == http.StatusOK {
		t.Fatalf("invalid shortcut url accepted: %s", body)
	}

	var created struct {
		ID string `json:"id"`
	}
	status, _, body = doJSON(t, http.MethodPost, "/api/v1/tracker/shortcuts", map[string]any{
		"title":    "bank",
		"url":      "https://bank.example.com",
		"position": 1,
	}, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("create shortcut status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &created)

	status, _, _ = doJSON(t, http.MethodDelete, "/api/v1/tracker/shortcuts/"+created.ID, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("delete shortcut status = %d", status)
	}
}

func TestTrackerExport(t *testing.T) {
	cookie := loginSession(t)

	// Exports are deduplicated per snapshot window, so a rerun within the
	// same minute yields a conflict instead of a second object.
	status, _, body := doJSON(t, http.MethodPost, "/api/v1/tracker/export", nil, auth{cookie: cookie})
	if status != http.StatusOK && status != http.StatusConflict {
		t.Fatalf("export status = %d: %s", status, body)
	}

	if status == http.StatusOK {
		var out struct {
			DownloadURL string `json:"download_url"`
			ObjectKey   string `json:"object_key"`
		}
		decodeSuccess(t, body, &out)
		if out.DownloadURL == "" || out.ObjectKey == "" {
			t.Fatalf("export = %+v", out)
		}
	}
}
