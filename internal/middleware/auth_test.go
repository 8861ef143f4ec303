package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-backend/internal/auth"
	"studio-backend/internal/config"
	"studio-backend/internal/models"
)

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 168
	cfg.JWT.Issuer = "studio-backend"
	return auth.NewJWTManager(cfg)
}

func identityEcho(t *testing.T, wantID int, wantEmail, wantRole string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r.Context())
		if !ok || id != wantID {
			t.Errorf("user id: got %d ok=%v want %d", id, ok, wantID)
		}
		email, _ := GetEmailFromContext(r.Context())
		if email != wantEmail {
			t.Errorf("email: got %q want %q", email, wantEmail)
		}
		role, _ := GetRoleFromContext(r.Context())
		if role != wantRole {
			t.Errorf("role: got %q want %q", role, wantRole)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateNoToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTManager())
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a token")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/clients", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", rr.Code)
	}
}

func TestAuthenticateBearerHeader(t *testing.T) {
	jwtManager := testJWTManager()
	m := NewAuthMiddleware(jwtManager)

	token, err := jwtManager.GenerateToken(&models.User{ID: 7, Email: "e@studio.local", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	m.Authenticate(identityEcho(t, 7, "e@studio.local", models.RoleUser)).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rr.Code)
	}
}

func TestAuthenticateCookieFallback(t *testing.T) {
	jwtManager := testJWTManager()
	m := NewAuthMiddleware(jwtManager)

	token, err := jwtManager.GenerateToken(&models.User{ID: 3, Email: "c@studio.local", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/clients", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	rr := httptest.NewRecorder()
	m.Authenticate(identityEcho(t, 3, "c@studio.local", models.RoleAdmin)).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rr.Code)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(testJWTManager())
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with a malformed header")
	}))

	req := httptest.NewRequest("GET", "/api/clients", nil)
	req.Header.Set("Authorization", "token abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", rr.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTManager())
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with an invalid token")
	}))

	req := httptest.NewRequest("GET", "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", rr.Code)
	}
}

func TestRequireRole(t *testing.T) {
	jwtManager := testJWTManager()
	m := NewAuthMiddleware(jwtManager)

	adminOnly := m.RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	adminToken, err := jwtManager.GenerateToken(&models.User{ID: 1, Email: "a@s.local", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	userToken, err := jwtManager.GenerateToken(&models.User{ID: 2, Email: "u@s.local", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rr := httptest.NewRecorder()
	adminOnly.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("admin: got %d want 200", rr.Code)
	}

	req = httptest.NewRequest("GET", "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rr = httptest.NewRecorder()
	adminOnly.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("non-admin: got %d want 403", rr.Code)
	}

	rr = httptest.NewRecorder()
	adminOnly.ServeHTTP(rr, httptest.NewRequest("GET", "/api/dashboard", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d want 401", rr.Code)
	}
}
