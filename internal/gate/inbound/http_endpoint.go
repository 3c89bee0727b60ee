package inbound

import (
	"github.com/muhdemir/lifehub/internal/gate/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for session management.
type HTTPEndpoint struct {
	uc uc
}

// Logout destroys the caller's session and clears the session cookie.
// A request without a session cookie still succeeds.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	var token string
	if c, err := r.Cookie(SessionCookieName); err == nil {
		token = c.Value
	}

	if _, err := h.uc.Logout(r.Context(), usecase.LogoutInput{Token: token}); err != nil {
		return nil, err
	}

	return LogoutResponse{}, nil
}

// IssueToken mints a bearer token for the authenticated caller.
func (h *HTTPEndpoint) IssueToken(r *router.Request) (any, error) {
	claims := jwt.GetAuth(r.Context())
	if claims == nil {
		return nil, goerror.NewBusiness("not authenticated", goerror.CodeUnauthorized)
	}

	resp, err := h.uc.IssueToken(r.Context(), usecase.IssueTokenInput{Username: claims.Username})
	if err != nil {
		return nil, err
	}

	return IssueTokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}, nil
}

// Session reports the caller's authenticated identity.
func (h *HTTPEndpoint) Session(r *router.Request) (any, error) {
	resp, err := h.uc.Session(r.Context())
	if err != nil {
		return nil, err
	}

	return SessionResponse{
		Username:      resp.Username,
		Authenticated: resp.Authenticated,
	}, nil
}
