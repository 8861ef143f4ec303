package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studio-backend/internal/auth"
	"studio-backend/internal/config"
	"studio-backend/internal/models"
)

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, errors.New("no rows")
}

func newTestUserService() *UserService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 168
	cfg.JWT.Issuer = "studio-backend"
	return NewUserService(newFakeUserStore(), auth.NewJWTManager(cfg))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     "Priya",
		Email:    "Priya@Studio.LOCAL",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Errorf("register response: %+v", resp)
	}
	if resp.User.Email != "priya@studio.local" {
		t.Errorf("email not lowercased: %q", resp.User.Email)
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("role: got %q want user", resp.User.Role)
	}
	if resp.User.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "priya@studio.local", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !login.Success || login.Token == "" || login.RequiresTOTP {
		t.Errorf("login response: %+v", login)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &models.RegisterRequest{Name: "A", Email: "a@s.local", Password: "right-pass"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, &models.LoginRequest{Email: "a@s.local", Password: "wrong-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@s.local", Password: "right-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &models.RegisterRequest{Name: "A", Email: "a@s.local", Password: "pass1234"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "B", Email: "A@s.local", Password: "pass1234"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginWithTOTPEnabled(t *testing.T) {
	store := newFakeUserStore()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 168
	svc := NewUserService(store, auth.NewJWTManager(cfg))
	ctx := context.Background()

	resp, err := svc.Register(ctx, &models.RegisterRequest{Name: "Admin", Email: "admin@s.local", Password: "pass1234"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	store.users[resp.User.ID].TOTPEnabled = true

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@s.local", Password: "pass1234"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !login.RequiresTOTP || login.TempToken == "" {
		t.Errorf("expected temp token for 2FA account: %+v", login)
	}
	if login.Token != "" {
		t.Error("session token issued before TOTP verification")
	}
}
