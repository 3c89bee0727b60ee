package tests

import (
	"net/http"
	"testing"
	"time"
)

func TestReminders(t *testing.T) {
	cookie := loginSession(t)

	var created struct {
		ID         string `json:"id"`
		Dispatched bool   `json:"dispatched"`
	}
	status, _, body := doJSON(t, http.MethodPost, "/api/v1/reminders", map[string]any{
		"message":   "pay the rent",
		"remind_at": time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	}, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("create reminder status = %d: %s", status, body)
	}
	decodeSuccess(t, body, &created)
	if created.ID == "" || created.Dispatched {
		t.Fatalf("created reminder = %+v", created)
	}

	status, _, body = doJSON(t, http.MethodGet, "/api/v1/reminders", nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("list reminders status = %d: %s", status, body)
	}
	var list struct {
		Reminders []struct {
			ID string `json:"id"`
		} `json:"reminders"`
	}
	decodeSuccess(t, body, &list)
	var found bool
	for _, r := range list.Reminders {
		if r.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created reminder %s missing from list", created.ID)
	}

	status, _, _ = doJSON(t, http.MethodDelete, "/api/v1/reminders/"+created.ID, nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("delete reminder status = %d", status)
	}

	status, _, _ = doJSON(t, http.MethodDelete, "/api/v1/reminders/"+created.ID, nil, auth{cookie: cookie})
	if status != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", status)
	}
}

func TestReminderValidation(t *testing.T) {
	cookie := loginSession(t)

	status, _, body := doJSON(t, http.MethodPost, "/api/v1/reminders", map[string]any{
		"remind_at": time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	}, auth{cookie: cookie})
	if status == http.StatusOK {
		t.Fatalf("reminder without message accepted: %s", body)
	}
}
