package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://rollcall.example.com"

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "rollcall"}}

	require.NoError(t, c.ValidateIssuer("rollcall"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"web", "api"}}}

	require.NoError(t, c.ValidateAudience([]string{"web"}))
	require.NoError(t, c.ValidateAudience([]string{"foo", "api"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
		want   error
	}{
		{"valid", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}, nil},
		{"expired", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}, jwtx.ErrExpired},
		{"not yet valid", jwt.RegisteredClaims{NotBefore: jwt.NewNumericDate(now.Add(time.Minute))}, jwtx.ErrNotYetValid},
		{"no exp or nbf", jwt.RegisteredClaims{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &jwtx.Claims{RegisteredClaims: tt.claims}
			err := c.ValidateExpiry()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Now().UTC()

	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second))}}
	require.NoError(t, c.ValidateExpiryWithLeeway(30*time.Second))

	c = &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-2 * time.Minute))}}
	require.ErrorIs(t, c.ValidateExpiryWithLeeway(30*time.Second), jwtx.ErrExpired)
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	c := jwtx.NewSessionClaims(jwtx.SessionParams{
		Subject:    "user-1",
		SID:        "sid-1",
		Role:       "PERSONAL",
		LocationID: "loc-1",
		Name:       "Ada",
		Email:      "ada@example.com",
		AMR:        []string{"pwd"},
		Issuer:     exampleIssuer,
	}, now)

	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, exampleIssuer, c.Issuer)
	require.Equal(t, now.Add(jwtx.DefaultSessionTTL), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.Equal(t, "loc-1", c.LocationID)
}

func TestWithLocationKeepsIdentity(t *testing.T) {
	issued := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	c := jwtx.NewSessionClaims(jwtx.SessionParams{
		Subject: "user-1",
		SID:     "sid-1",
		Role:    "MANAGER_ADMIN",
		Issuer:  exampleIssuer,
		TTL:     2 * time.Hour,
	}, issued)

	later := issued.Add(30 * time.Minute)
	moved := c.WithLocation("loc-2", later)

	require.Equal(t, "loc-2", moved.LocationID)
	require.Empty(t, c.LocationID, "original must be untouched")
	require.Equal(t, c.Subject, moved.Subject)
	require.Equal(t, c.SID, moved.SID)
	require.Equal(t, c.Role, moved.Role)
	require.Equal(t, c.ExpiresAt.Time, moved.ExpiresAt.Time)
	require.Equal(t, later, moved.IssuedAt.Time)
	require.NotEqual(t, c.ID, moved.ID)
}
