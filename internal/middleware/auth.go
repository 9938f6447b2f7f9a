package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ryuk156/backend-AOL/internal/domain"
	"github.com/ryuk156/backend-AOL/internal/jwt"
	"github.com/ryuk156/backend-AOL/internal/utils"
)

// Key to store the token claims in the request context
type key int

const claimsKey key = 0

// Auth validates the Authorization bearer token and puts the decoded claims
// into the request context.
func Auth(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				http.Error(w, "Authorization header must use the Bearer scheme", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, &claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext retrieves the authenticated claims, or nil when the
// request did not pass Auth.
func GetClaimsFromContext(r *http.Request) *domain.TokenClaims {
	claims, ok := r.Context().Value(claimsKey).(*domain.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}
