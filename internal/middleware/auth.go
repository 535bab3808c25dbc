package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/drollins/taskbox/internal/auth"
)

const bearerPrefix = "Bearer "

// RequireAuth validates the bearer token on each request and populates the
// authenticated user id in the request context. A missing or malformed
// Authorization header is 401; a present token that fails verification
// (bad signature or expired) is 403. The gate touches no stores and a
// rejected request never reaches the next handler.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := auth.VerifyToken(token, secret)
			if err != nil {
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}

			ctx := auth.WithUser(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
