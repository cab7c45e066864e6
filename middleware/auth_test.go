package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashasvi9199/MatchFind/middleware"
	"github.com/yashasvi9199/MatchFind/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.UserID(r.Context())))
	})
	return middleware.Auth(testSecret, "/health")(inner)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestAuthRejectsMissingOrBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + func() string {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
			signed, _ := token.SignedString([]byte("other-secret"))
			return signed
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protectedEcho(t).ServeHTTP(w, r)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsTokenWithoutSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthSkipsPublicPaths(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	// Sub-routes of a public path are public too.
	r = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w = httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/socket.io/?EIO=4", nil)
	w = httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthPopulatesRole(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(models.KeyUserRole).(string)
		w.Write([]byte(role))
	})
	handler := middleware.Auth(testSecret)(inner)

	send := func(claims jwt.MapClaims) string {
		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Bearer "+signToken(t, claims))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Body.String()
	}

	assert.Equal(t, models.RoleAdmin, send(jwt.MapClaims{
		"sub":  "u1",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}))

	// A token without a role claim defaults to the plain user role.
	assert.Equal(t, models.RoleUser, send(jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
}
