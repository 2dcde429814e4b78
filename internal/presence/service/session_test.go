package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://rollcall.test"

func newSessions(t *testing.T) (*SessionService, *jwtx.KeyManager, *UserService) {
	t.Helper()
	st := newTestStore(t)
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, NumKeys: 1})
	require.NoError(t, err)
	return &SessionService{Store: st, Signer: km, Issuer: testIssuer, TTL: time.Hour}, km, &UserService{Store: st}
}

func TestSessionLogin(t *testing.T) {
	ctx := context.Background()
	sessions, km, users := newSessions(t)

	u, _, err := users.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass", Role: domain.RoleManagerAdmin})
	require.NoError(t, err)

	cred, got, err := sessions.Login(ctx, LoginRequest{Email: "ADA@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	claims, err := km.Verifier.Verify(cred.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "MANAGER_ADMIN", claims.Role)
	require.NotEmpty(t, claims.SID)
	require.Empty(t, claims.LocationID)
	require.Equal(t, []string{AMRPassword}, claims.AMR)
	require.WithinDuration(t, time.Now().Add(time.Hour), cred.ExpiresAt(), 5*time.Second)

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, KindUnauthenticated, Kind(err))

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	inactive := domain.StatusInactive
	_, err = users.Update(ctx, u.ID, UserUpdate{Status: &inactive})
	require.NoError(t, err)
	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.ErrorIs(t, err, ErrAccountInactive)
	require.Equal(t, KindForbidden, Kind(err))

	_, err = sessions.Current(ctx, claims)
	require.ErrorIs(t, err, ErrAccountInactive)
}

func TestSessionLoginCarriesCurrentLocation(t *testing.T) {
	ctx := context.Background()
	sessions, km, users := newSessions(t)
	st := sessions.Store

	u, _, err := users.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	l := seedLocation(t, st, "North")
	_, err = newPresence(st).CheckIn(ctx, TransitionRequest{UserID: u.ID, LocationID: l.ID})
	require.NoError(t, err)

	cred, _, err := sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	claims, err := km.Verifier.Verify(cred.Token)
	require.NoError(t, err)
	require.Equal(t, l.ID, claims.LocationID)
}

func TestSessionResync(t *testing.T) {
	ctx := context.Background()
	sessions, km, users := newSessions(t)

	_, _, err := users.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	cred, _, err := sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	fresh, err := sessions.Resync(ctx, cred.Claims, "01JLOCATION")
	require.NoError(t, err)
	require.NotEqual(t, cred.Token, fresh.Token)

	claims, err := km.Verifier.Verify(fresh.Token)
	require.NoError(t, err)
	require.Equal(t, "01JLOCATION", claims.LocationID)
	require.Equal(t, cred.Claims.Subject, claims.Subject)
	require.Equal(t, cred.Claims.SID, claims.SID)
	require.Equal(t, cred.Claims.Role, claims.Role)
	require.Equal(t, cred.ExpiresAt().Unix(), claims.ExpiresAt.Unix())
	require.NotEqual(t, cred.Claims.ID, claims.ID)

	cleared, err := sessions.Resync(ctx, claims, "")
	require.NoError(t, err)
	require.Empty(t, cleared.Claims.LocationID)

	_, err = sessions.Resync(ctx, jwtx.Claims{}, "x")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestMFAFlow(t *testing.T) {
	ctx := context.Background()
	sessions, km, users := newSessions(t)
	mfa := &MFAService{Store: sessions.Store, Issuer: "Rollcall"}

	u, _, err := users.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.ErrorIs(t, mfa.VerifyTOTP(ctx, u.ID, "123456"), ErrMFANotEnrolled)
	require.ErrorIs(t, mfa.Disable(ctx, u.ID, "123456"), ErrMFANotEnabled)

	enrollment, err := mfa.EnrollTOTP(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.URL, "otpauth://totp/")
	require.Equal(t, "ada@example.com", enrollment.Account)

	// Pending enrollment does not yet gate login.
	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.ErrorIs(t, mfa.VerifyTOTP(ctx, u.ID, "000000x"), ErrInvalidOTP)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfa.VerifyTOTP(ctx, u.ID, code))

	_, err = mfa.EnrollTOTP(ctx, u.ID)
	require.ErrorIs(t, err, ErrMFAAlreadyEnabled)

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.ErrorIs(t, err, ErrMFARequired)

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass", OTP: "000000x"})
	require.ErrorIs(t, err, ErrInvalidOTP)

	cred, _, err := sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass", OTP: code})
	require.NoError(t, err)
	claims, err := km.Verifier.Verify(cred.Token)
	require.NoError(t, err)
	require.Equal(t, []string{AMRPassword, AMROTP}, claims.AMR)

	require.NoError(t, mfa.Disable(ctx, u.ID, code))
	_, _, err = sessions.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
}

func TestErrorClassification(t *testing.T) {
	require.Equal(t, KindInternal, Kind(context.Canceled))
	require.Equal(t, "server_error", Reason(context.Canceled))
	require.Equal(t, "location_in_use", Reason(ErrLocationInUse))
	require.Equal(t, KindConflict, Kind(ErrLocationInUse))
	require.Equal(t, "conflict", KindConflict.String())
}

func TestAdminResetMFA(t *testing.T) {
	ctx := context.Background()
	sessions, _, users := newSessions(t)
	mfa := &MFAService{Store: sessions.Store, Issuer: "Rollcall"}

	u, _, err := users.Create(ctx, UserInput{Name: "Grace", Email: "grace@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	enrollment, err := mfa.EnrollTOTP(ctx, u.ID)
	require.NoError(t, err)
	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfa.VerifyTOTP(ctx, u.ID, code))

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "grace@example.com", Password: "s3cret-pass"})
	require.ErrorIs(t, err, ErrMFARequired)

	updated, err := users.Update(ctx, u.ID, UserUpdate{ResetMFA: true})
	require.NoError(t, err)
	require.Nil(t, updated.MFAEnabled)
	require.Nil(t, updated.MFASecret)

	_, _, err = sessions.Login(ctx, LoginRequest{Email: "grace@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = users.Update(ctx, "missing", UserUpdate{ResetMFA: true})
	require.ErrorIs(t, err, ErrUserNotFound)
}
