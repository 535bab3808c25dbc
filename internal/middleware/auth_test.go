package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drollins/taskbox/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("middleware-test-secret")

func protected(t *testing.T, onCall func(userID int64)) http.Handler {
	t.Helper()
	return RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.UserID(r.Context())
		if !ok {
			t.Fatal("expected user id in request context")
		}
		if onCall != nil {
			onCall(id)
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAuthMissingHeader(t *testing.T) {
	handler := RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/todos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthWrongScheme(t *testing.T) {
	tok, err := auth.IssueToken(1, testSecret)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	// The Bearer prefix is case-sensitive.
	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	handler := RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	tok, err := auth.IssueToken(1, []byte("some-other-secret"))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	now := time.Now()
	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, struct {
		jwt.RegisteredClaims
		UserID int64 `json:"userId"`
	}{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: 1,
	})
	tok, err := stale.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	handler := RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	tok, err := auth.IssueToken(42, testSecret)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var gotID int64
	handler := protected(t, func(id int64) { gotID = id })

	req := httptest.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotID != 42 {
		t.Errorf("user id = %d, want 42", gotID)
	}
}
