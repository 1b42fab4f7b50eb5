package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, admin bool) string {
	t.Helper()
	claims := Claims{
		UserID: "alice",
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func callAdminEndpoint(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	var reached bool
	handler := RequireAdmin(testSecret, func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/kpis/export", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec, reached
}

func TestRequireAdminAllowsAdminToken(t *testing.T) {
	rec, reached := callAdminEndpoint(t, "Bearer "+signToken(t, testSecret, true))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Fatal("handler should run for an admin token")
	}
}

func TestRequireAdminRejectsNonAdminToken(t *testing.T) {
	rec, reached := callAdminEndpoint(t, "Bearer "+signToken(t, testSecret, false))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Fatal("handler must not run without the admin claim")
	}
}

func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	rec, reached := callAdminEndpoint(t, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Fatal("handler must not run without a token")
	}
}

func TestRequireAdminRejectsForgedToken(t *testing.T) {
	rec, reached := callAdminEndpoint(t, "Bearer "+signToken(t, "wrong-secret", true))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Fatal("handler must not run with a forged signature")
	}
}
