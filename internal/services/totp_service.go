package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "StudioBackend"

var (
	ErrNoTOTPSecret    = errors.New("2FA setup not initiated")
	ErrInvalidTOTPCode = errors.New("invalid verification code")
	ErrTOTPNotEnabled  = errors.New("2FA is not enabled")
)

// TOTPService handles authenticator-app 2FA for admin accounts.
type TOTPService struct {
	userRepo *repositories.UserRepository
}

func NewTOTPService(userRepo *repositories.UserRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo}
}

// GenerateSetup creates a fresh secret for the user and returns it with a
// base64 PNG QR code. The secret stays disabled until VerifyAndEnable.
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable checks a code against the stored secret and turns 2FA on.
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	secret, err := s.userRepo.GetTOTPSecret(ctx, userID)
	if err != nil || secret == "" {
		return ErrNoTOTPSecret
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}
	return s.userRepo.EnableTOTP(ctx, userID)
}

// Verify validates a login code for a user with 2FA enabled.
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TOTPEnabled {
		return ErrTOTPNotEnabled
	}
	secret, err := s.userRepo.GetTOTPSecret(ctx, userID)
	if err != nil || secret == "" {
		return ErrNoTOTPSecret
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}
	return nil
}
