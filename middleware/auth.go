package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yashasvi9199/MatchFind/models"
)

// Auth verifies the bearer token issued by the external auth provider and
// puts the caller's identity on the request context. Identity only; user
// management stays with the provider. Paths listed in public are served
// without a token, as is the socket.io handshake (clients authenticate by
// joining their room).
func Auth(secret string, public ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path, public) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" || tokenString == authHeader {
				unauthorized(w, "Authorization header required")
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				log.Printf("Token validation failed: %v", err)
				unauthorized(w, "Invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "Invalid claims")
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				unauthorized(w, "Token missing subject")
				return
			}
			role, _ := claims["role"].(string)
			if role == "" {
				role = models.RoleUser
			}

			ctx := context.WithValue(r.Context(), models.KeyUserID, sub)
			ctx = context.WithValue(ctx, models.KeyUserRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublic matches a public entry exactly or as a path prefix, so catalog
// sub-routes stay open alongside their parent. The socket.io handshake is
// always open.
func isPublic(path string, public []string) bool {
	if strings.HasPrefix(path, "/socket.io/") {
		return true
	}
	for _, p := range public {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// UserID extracts the authenticated user id from a request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(models.KeyUserID).(string)
	return id
}

// IsAdmin reports whether the authenticated caller carries the admin role.
func IsAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(models.KeyUserRole).(string)
	return role == models.RoleAdmin
}
