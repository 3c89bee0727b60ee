package router

import "net/http"

// middlewareGuard applies the configured authentication guard to every route
// except those listed as public for the request method.
func middlewareGuard(guard Middleware, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		guarded := guard(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			guarded.ServeHTTP(w, r)
		})
	}
}
