package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

// UserIDKey carries the authenticated user id through the request context.
const UserIDKey ctxKey = "user_id"

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

func parseUserID(authHeader, secret string) string {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

// JWT validates the Authorization header and attaches user_id to the
// request context, rejecting anonymous requests.
func JWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := parseUserID(r.Header.Get("Authorization"), secret)
			if userID == "" {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWT attaches user_id when a valid bearer token is present but
// lets anonymous requests through. The chat endpoint works either way;
// persistence simply requires an identity.
func OptionalJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := parseUserID(r.Header.Get("Authorization"), secret); userID != "" {
				r = r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
