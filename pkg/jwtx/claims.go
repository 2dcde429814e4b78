package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of a session credential when the
// service does not override it.
const DefaultSessionTTL = 12 * time.Hour

// Claims are the session credential claims. The location is a cache for
// display; authorization decisions only read the role.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID, stable across resyncs of the same login.
	SID string `json:"sid,omitempty"`

	Role string `json:"role"`

	// LocationID is the user's current location when the credential was
	// last signed. Empty when the user is absent.
	LocationID string `json:"loc,omitempty"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	// Authentication Methods Reference, "pwd" and optionally "otp".
	AMR []string `json:"amr,omitempty"`
}

// SessionParams describe a fresh session credential.
type SessionParams struct {
	Subject    string
	SID        string
	Role       string
	LocationID string
	Name       string
	Email      string
	AMR        []string

	Issuer   string
	Audience []string
	TTL      time.Duration
}

// NewSessionClaims builds claims issued at now.
func NewSessionClaims(p SessionParams, now time.Time) Claims {
	ttl := p.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.Subject,
			Audience:  jwt.ClaimStrings(p.Audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:        p.SID,
		Role:       p.Role,
		LocationID: p.LocationID,
		Name:       p.Name,
		Email:      p.Email,
		AMR:        p.AMR,
	}
}

// WithLocation returns a copy of c carrying locationID, reissued at now.
// Subject, session and expiry are preserved.
func (c Claims) WithLocation(locationID string, now time.Time) Claims {
	out := c
	out.LocationID = locationID
	out.IssuedAt = jwt.NewNumericDate(now)
	out.ID = NewJTI()
	out.AMR = slices.Clone(c.AMR)
	out.Audience = slices.Clone(c.Audience)
	return out
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
