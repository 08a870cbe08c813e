package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

type contextKey string

const accountContextKey contextKey = "account"

// SessionResolver validates a session token and resolves its account.
type SessionResolver interface {
	Session(ctx context.Context, token string) (*entities.Account, error)
}

// AuthMiddleware requires a valid bearer session token and stores the
// resolved account, role included, in the request context.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "missing Authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "invalid Authorization header format")
				return
			}

			account, err := resolver.Session(r.Context(), parts[1])
			if err != nil {
				unauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountFromContext returns the authenticated account, if any.
func AccountFromContext(ctx context.Context) (*entities.Account, bool) {
	account, ok := ctx.Value(accountContextKey).(*entities.Account)
	return account, ok
}

// ContextWithAccount returns ctx carrying the given account. Exposed
// for handler tests.
func ContextWithAccount(ctx context.Context, account *entities.Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
