package auth

import (
	"testing"

	"studio-backend/internal/config"
	"studio-backend/internal/models"
)

func testManager() *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 168
	cfg.JWT.Issuer = "studio-backend"
	return NewJWTManager(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	m := testManager()
	user := &models.User{ID: 12, Email: "admin@studio.local", Role: models.RoleAdmin}

	token, err := m.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 12 || claims.Email != "admin@studio.local" || claims.Role != models.RoleAdmin {
		t.Errorf("claims: %+v", claims)
	}
	if claims.Issuer != "studio-backend" {
		t.Errorf("issuer: got %q", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m := testManager()
	token, err := m.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	other.JWT.ExpirationHours = 168
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := testManager().ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token validated")
	}
}

func TestTempTokenRoundTrip(t *testing.T) {
	m := testManager()
	user := &models.User{ID: 5, Email: "two@fa.local"}

	token, err := m.GenerateTempToken(user)
	if err != nil {
		t.Fatalf("GenerateTempToken: %v", err)
	}

	claims, err := m.ValidateTempToken(token)
	if err != nil {
		t.Fatalf("ValidateTempToken: %v", err)
	}
	if claims.UserID != 5 || claims.Type != "2fa_pending" {
		t.Errorf("claims: %+v", claims)
	}
}

func TestTempTokenTypeEnforced(t *testing.T) {
	m := testManager()
	user := &models.User{ID: 5, Email: "two@fa.local", Role: models.RoleUser}

	// A full session token must not pass the 2FA-pending check
	full, err := m.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m.ValidateTempToken(full); err == nil {
		t.Fatal("session token accepted as temp token")
	}

	// And a temp token must not open a session
	temp, err := m.GenerateTempToken(user)
	if err != nil {
		t.Fatalf("GenerateTempToken: %v", err)
	}
	claims, err := m.ValidateToken(temp)
	if err == nil && claims.UserID != 0 && claims.Role != "" {
		t.Fatal("temp token carries session role claims")
	}
}
