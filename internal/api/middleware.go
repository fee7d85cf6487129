package api

import (
	"fmt"
	"net/http"
	"strings"

	"apnadost/backend/internal/auth"
	apperrors "apnadost/backend/internal/errors"
	"apnadost/backend/internal/observability"
)

const bearerPrefix = "Bearer "

// requireAuth guards a route group behind bearer-token verification. Requests
// without a `Bearer ` Authorization header are rejected before any
// collaborator is touched; otherwise the token is verified remotely and the
// resulting uid is stored in the request context for handlers downstream.
//
// The raw token value is never logged.
func requireAuth(verifier auth.Verifier, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				metrics.AuthRejections.WithLabelValues("missing_or_invalid_header").Inc()
				respondWithError(w, fmt.Errorf("%w: missing or invalid Authorization header", apperrors.ErrAuth))
				return
			}

			idToken := strings.TrimPrefix(header, bearerPrefix)
			uid, err := verifier.Verify(r.Context(), idToken)
			if err != nil {
				metrics.AuthRejections.WithLabelValues("invalid_token").Inc()
				respondWithError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUID(r.Context(), uid)))
		})
	}
}
