package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

// AMR values recorded in the session credential.
const (
	AMRPassword = "pwd"
	AMROTP      = "otp"
)

// TokenSigner signs session claims; *jwtx.KeyManager implements it.
type TokenSigner interface {
	Sign(claims jwtx.Claims) (string, error)
}

// SessionService issues and refreshes session credentials.
type SessionService struct {
	Store    store.Store
	Signer   TokenSigner
	Issuer   string
	Audience []string
	TTL      time.Duration

	Now func() time.Time
}

// LoginRequest carries the user's credentials. OTP is required only for
// users with MFA enabled.
type LoginRequest struct {
	Email    string
	Password string
	OTP      string
}

// Credential is a signed session token and its claims.
type Credential struct {
	Token  string
	Claims jwtx.Claims
}

func (c Credential) ExpiresAt() time.Time {
	if c.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.Claims.ExpiresAt.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// dummyHash is verified against when the email is unknown so both paths
// cost one argon2 evaluation.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("rollcall-dummy-password")
	return h
})

// Login authenticates the user and issues a credential carrying their role
// and current location.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (Credential, domain.User, error) {
	log := slogx.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return Credential{}, domain.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidRequest)
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(req.Password, dummyHash())
			return Credential{}, domain.User{}, ErrInvalidCredentials
		}
		return Credential{}, domain.User{}, fmt.Errorf("load user: %w", err)
	}

	if err := cryptox.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unusable", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		return Credential{}, domain.User{}, ErrInvalidCredentials
	}

	if user.Status != domain.StatusActive {
		log.Warn("login attempt on inactive account", slog.String("user_id", user.ID))
		return Credential{}, domain.User{}, ErrAccountInactive
	}

	amr := []string{AMRPassword}
	if user.MFAEnabled != nil && user.MFASecret != nil {
		code := strings.TrimSpace(req.OTP)
		if code == "" {
			return Credential{}, domain.User{}, ErrMFARequired
		}
		if !totp.Validate(code, *user.MFASecret) {
			return Credential{}, domain.User{}, ErrInvalidOTP
		}
		amr = append(amr, AMROTP)
	}

	cred, err := s.issue(user, idx.New().String(), amr)
	if err != nil {
		return Credential{}, domain.User{}, err
	}

	log.Info("session started",
		slog.String("user_id", user.ID),
		slog.String("sid", cred.Claims.SID),
		slog.String("role", user.Role.String()),
	)
	return cred, user, nil
}

func (s *SessionService) issue(user domain.User, sid string, amr []string) (Credential, error) {
	claims := jwtx.NewSessionClaims(jwtx.SessionParams{
		Subject:    user.ID,
		SID:        sid,
		Role:       user.Role.String(),
		LocationID: user.CurrentLocationID,
		Name:       user.Name,
		Email:      user.Email,
		AMR:        amr,
		Issuer:     s.Issuer,
		Audience:   s.Audience,
		TTL:        s.TTL,
	}, s.now())
	return s.sign(claims)
}

func (s *SessionService) sign(claims jwtx.Claims) (Credential, error) {
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Credential{}, fmt.Errorf("sign session: %w", err)
	}
	return Credential{Token: token, Claims: claims}, nil
}

// Resync re-signs a live credential with a new cached location. Subject,
// session and expiry are unchanged and no re-authentication happens.
func (s *SessionService) Resync(ctx context.Context, claims jwtx.Claims, locationID string) (Credential, error) {
	if claims.Subject == "" {
		return Credential{}, ErrInvalidSession
	}
	cred, err := s.sign(claims.WithLocation(locationID, s.now()))
	if err != nil {
		return Credential{}, err
	}
	slogx.FromContext(ctx).Debug("session resynced",
		slog.String("sid", claims.SID),
		slog.String("location_id", locationID),
	)
	return cred, nil
}

// Current returns the stored user behind a credential. A user deleted or
// deactivated since login no longer has a valid session.
func (s *SessionService) Current(ctx context.Context, claims jwtx.Claims) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidSession
		}
		return domain.User{}, err
	}
	if user.Status != domain.StatusActive {
		return domain.User{}, ErrAccountInactive
	}
	return user, nil
}

// Logout records the end of a session. Credentials are stateless, so the
// transport clears its copy.
func (s *SessionService) Logout(ctx context.Context, claims jwtx.Claims) {
	slogx.FromContext(ctx).Info("session ended",
		slog.String("user_id", claims.Subject),
		slog.String("sid", claims.SID),
	)
}
