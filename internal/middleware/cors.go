package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS habilita al front del dashboard. Sin orígenes configurados no agrega headers.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-Id"}),
	)
}
