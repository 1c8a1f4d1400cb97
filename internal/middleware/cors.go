package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware allowing cross-origin calls from origins.
// An empty list allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	})
}
