package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// MFAEnrollment is returned when TOTP enrollment starts.
type MFAEnrollment struct {
	Secret  string
	URL     string // otpauth:// URL for QR codes
	Issuer  string
	Account string
}

type MFAService struct {
	Store  store.Store
	Issuer string // shown in authenticator apps, e.g. "Rollcall"
}

// EnrollTOTP generates a TOTP secret for the user. MFA is not enabled until
// VerifyTOTP succeeds; enrolling again replaces a pending secret.
func (s *MFAService) EnrollTOTP(ctx context.Context, userID string) (MFAEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return MFAEnrollment{}, ErrUserNotFound
		}
		return MFAEnrollment{}, err
	}
	if user.MFAEnabled != nil {
		return MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return MFAEnrollment{}, fmt.Errorf("generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return MFAEnrollment{}, fmt.Errorf("store MFA secret: %w", err)
	}

	return MFAEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: user.Email,
	}, nil
}

// VerifyTOTP checks a code against the pending secret and enables MFA.
func (s *MFAService) VerifyTOTP(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.MFAEnabled != nil {
		return ErrMFAAlreadyEnabled
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidOTP
	}

	if err := s.Store.Users().EnableMFA(ctx, userID); err != nil {
		return fmt.Errorf("enable MFA: %w", err)
	}
	slogx.FromContext(ctx).Info("mfa enabled", slog.String("user_id", userID))
	return nil
}

// Disable turns MFA off after checking a current code.
func (s *MFAService) Disable(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.MFAEnabled == nil || user.MFASecret == nil {
		return ErrMFANotEnabled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidOTP
	}

	if err := s.Store.Users().DisableMFA(ctx, userID); err != nil {
		return fmt.Errorf("disable MFA: %w", err)
	}
	slogx.FromContext(ctx).Info("mfa disabled", slog.String("user_id", userID))
	return nil
}
