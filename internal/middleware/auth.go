package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brainjot/server/internal/token"
	"github.com/brainjot/server/pkg/apperrors"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth gates a handler behind a bearer token. On success the verified
// claims are attached to the request context; the wrapped handler is never
// reached otherwise. Each request is evaluated independently.
func Auth(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			reject(w, apperrors.ErrNoToken)
			return
		}

		claims, err := token.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			reject(w, apperrors.ErrBadToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the claims attached by Auth, if any.
func ClaimsFrom(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(token.Claims)
	return claims, ok
}

// WithClaims attaches claims to ctx directly, bypassing the HTTP gate.
func WithClaims(ctx context.Context, claims token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func reject(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.CodeOf(err).HTTPStatus())
	json.NewEncoder(w).Encode(map[string]string{"message": apperrors.MessageOf(err)})
}
