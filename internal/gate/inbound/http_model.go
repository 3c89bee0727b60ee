package inbound

import "net/http"

type LogoutResponse struct{}

func (LogoutResponse) Message() string {
	return "Logged out"
}

func (LogoutResponse) Cookies() []*http.Cookie {
	return []*http.Cookie{{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}}
}

type IssueTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SessionResponse struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}
