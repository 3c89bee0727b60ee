package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/muhdemir/lifehub/internal/gate/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/router"
)

// SessionCookieName is the cookie that carries the opaque session token.
const SessionCookieName = "lifehub_session"

// Guard authenticates every non-public request.
//
// Credentials are tried in order: session cookie, bearer token, then HTTP
// Basic where the password slot carries the TOTP code or fallback password.
// A successful Basic login mints a session and sets the cookie on the way
// out. Anything else gets a 401 with a Basic challenge so browsers prompt.
func Guard(uc uc) router.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
				out, err := uc.Admit(ctx, usecase.AdmitInput{Token: c.Value})
				if err == nil {
					next.ServeHTTP(w, r.WithContext(authContext(ctx, out.Username)))
					return
				}
				// stale cookie, fall through to the other schemes
			}

			if scheme, value, ok := authorizationScheme(r); ok {
				switch scheme {
				case "bearer":
					claims, err := uc.VerifyToken(ctx, value)
					if err == nil {
						next.ServeHTTP(w, r.WithContext(jwt.SetAuth(ctx, *claims)))
						return
					}
				case "basic":
					if username, code, ok := r.BasicAuth(); ok {
						out, err := uc.Login(ctx, usecase.LoginInput{Username: username, Code: code})
						if err == nil {
							http.SetCookie(w, &http.Cookie{
								Name:     SessionCookieName,
								Value:    out.Token,
								Path:     "/",
								Expires:  out.ExpiresAt,
								HttpOnly: true,
								SameSite: http.SameSiteLaxMode,
							})
							next.ServeHTTP(w, r.WithContext(authContext(ctx, out.Username)))
							return
						}
					}
				}
			}

			challenge(w)
		})
	}
}

func authorizationScheme(r *http.Request) (scheme, value string, ok bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 {
		return "", "", false
	}

	return strings.ToLower(parts[0]), parts[1], true
}

func authContext(ctx context.Context, username string) context.Context {
	return jwt.SetAuth(ctx, jwt.Claims{Username: username})
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Lifehub"`)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Authentication required"}); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
