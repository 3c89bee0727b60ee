package tests

import (
	"net/http"
	"os"
	"strings"
	"testing"
)

func username() string {
	if v := strings.TrimSpace(os.Getenv("LIFEHUB_USERNAME")); v != "" {
		return v
	}
	return "Muhammed"
}

func password() string {
	if v := strings.TrimSpace(os.Getenv("LIFEHUB_PASSWORD")); v != "" {
		return v
	}
	return "admin123"
}

// loginSession performs a Basic auth request against any guarded endpoint
// and returns the session cookie value issued by the gate.
func loginSession(t *testing.T) string {
	t.Helper()

	status, header, _ := doJSON(t, http.MethodGet, "/api/v1/gate/session", nil, auth{
		user: username(),
		pass: password(),
	})
	if status != http.StatusOK {
		t.Fatalf("basic login failed with status %d", status)
	}

	for _, c := range readSetCookies(header) {
		if c.Name == "lifehub_session" && c.Value != "" {
			return c.Value
		}
	}

	t.Fatal("no session cookie issued on basic login")
	return ""
}

// bearerToken exchanges an authenticated session for a JWT.
func bearerToken(t *testing.T, cookie string) string {
	t.Helper()

	status, _, body := doJSON(t, http.MethodPost, "/api/v1/gate/token", nil, auth{cookie: cookie})
	if status != http.StatusOK {
		t.Fatalf("token issue failed with status %d: %s", status, body)
	}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeSuccess(t, body, &out)
	if out.AccessToken == "" {
		t.Fatal("empty access token")
	}

	return out.AccessToken
}

func readSetCookies(header http.Header) []*http.Cookie {
	resp := http.Response{Header: header}
	return resp.Cookies()
}
