package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestParseTokenFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	validClaims := jwt.MapClaims{
		"user_id":  float64(7),
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", validClaims))

		claims, err := ParseTokenFromRequest(r)
		if err != nil {
			t.Fatalf("expected valid token, got error: %v", err)
		}
		if claims["username"] != "alice" {
			t.Errorf("expected username claim alice, got %v", claims["username"])
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		if _, err := ParseTokenFromRequest(r); err == nil {
			t.Error("expected error for missing Authorization header")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", validClaims))
		if _, err := ParseTokenFromRequest(r); err == nil {
			t.Error("expected error for token signed with wrong secret")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.MapClaims{
			"user_id":  float64(7),
			"username": "alice",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		}
		r := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", expired))
		if _, err := ParseTokenFromRequest(r); err == nil {
			t.Error("expected error for expired token")
		}
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID int64
	var gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value("user_id").(int64)
		gotUsername = r.Context().Value("username").(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTAuthMiddleware(next)

	t.Run("injects identity into context", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/budgets", nil)
		r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", jwt.MapClaims{
			"user_id":  float64(42),
			"username": "bob",
			"exp":      time.Now().Add(time.Hour).Unix(),
		}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotUserID != 42 || gotUsername != "bob" {
			t.Errorf("expected user 42/bob in context, got %d/%s", gotUserID, gotUsername)
		}
	})

	t.Run("rejects missing token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/budgets", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects token without user_id claim", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/budgets", nil)
		r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", jwt.MapClaims{
			"username": "bob",
			"exp":      time.Now().Add(time.Hour).Unix(),
		}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
