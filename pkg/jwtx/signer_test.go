package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type keyGen struct {
	alg       string
	generate  func() ([]byte, error)
	newSigner func(string, []byte) (jwtx.Signer, error)
}

var keyGens = []keyGen{
	{jwtx.AlgorithmEdDSA, cryptox.GenerateEd25519Key, jwtx.NewSignerEdDSA},
	{jwtx.AlgorithmES256, cryptox.GenerateES256Key, jwtx.NewSignerES256},
}

func newTestSigner(t *testing.T, g keyGen, kid string) jwtx.Signer {
	t.Helper()
	pemKey, err := g.generate()
	require.NoError(t, err)
	s, err := g.newSigner(kid, pemKey)
	require.NoError(t, err)
	return s
}

func sessionClaims(now time.Time) jwtx.Claims {
	return jwtx.NewSessionClaims(jwtx.SessionParams{
		Subject:    "user-456",
		SID:        "session-1",
		Role:       "SUPER_ADMIN",
		LocationID: "loc-9",
		Name:       "Grace",
		Email:      "grace@example.com",
		AMR:        []string{"pwd", "otp"},
		Issuer:     exampleIssuer,
		Audience:   []string{"rollcall"},
		TTL:        5 * time.Minute,
	}, now)
}

func TestSignAndVerify(t *testing.T) {
	for _, g := range keyGens {
		t.Run(g.alg, func(t *testing.T) {
			signer := newTestSigner(t, g, "k1")
			require.Equal(t, g.alg, signer.Alg())
			require.Equal(t, "k1", signer.KID())

			claims := sessionClaims(time.Now().UTC())
			token, err := signer.Sign(claims)
			require.NoError(t, err)

			keys := jwtx.NewKeySet()
			require.NoError(t, keys.AddSigner(signer))

			got, err := jwtx.NewVerifier(keys, g.alg, exampleIssuer, []string{"rollcall"}).Verify(token)
			require.NoError(t, err)
			require.Equal(t, claims.Subject, got.Subject)
			require.Equal(t, claims.SID, got.SID)
			require.Equal(t, claims.Role, got.Role)
			require.Equal(t, claims.LocationID, got.LocationID)
			require.Equal(t, claims.Name, got.Name)
			require.Equal(t, claims.Email, got.Email)
			require.ElementsMatch(t, claims.AMR, got.AMR)
		})
	}
}

func TestVerifyFailures(t *testing.T) {
	for _, g := range keyGens {
		t.Run(g.alg, func(t *testing.T) {
			signer := newTestSigner(t, g, "k1")
			keys := jwtx.NewKeySet()
			require.NoError(t, keys.AddSigner(signer))
			now := time.Now().UTC()

			t.Run("wrong issuer", func(t *testing.T) {
				token, err := signer.Sign(sessionClaims(now))
				require.NoError(t, err)
				_, err = jwtx.NewVerifier(keys, g.alg, "someone-else", nil).Verify(token)
				require.ErrorIs(t, err, jwtx.ErrIssuer)
			})

			t.Run("expired", func(t *testing.T) {
				token, err := signer.Sign(sessionClaims(now.Add(-time.Hour)))
				require.NoError(t, err)
				_, err = jwtx.NewVerifier(keys, g.alg, exampleIssuer, nil).Verify(token)
				require.ErrorIs(t, err, jwtx.ErrExpired)
			})

			t.Run("unknown key", func(t *testing.T) {
				other := newTestSigner(t, g, "k2")
				token, err := other.Sign(sessionClaims(now))
				require.NoError(t, err)
				_, err = jwtx.NewVerifier(keys, g.alg, exampleIssuer, nil).Verify(token)
				require.ErrorIs(t, err, jwtx.ErrNoKey)
			})

			t.Run("garbage", func(t *testing.T) {
				_, err := jwtx.NewVerifier(keys, g.alg, exampleIssuer, nil).Verify("not.a.jwt")
				require.Error(t, err)
			})
		})
	}
}

func TestVerifyRejectsOtherAlgorithm(t *testing.T) {
	ed := newTestSigner(t, keyGens[0], "shared")
	token, err := ed.Sign(sessionClaims(time.Now().UTC()))
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(ed))

	_, err = jwtx.NewVerifier(keys, jwtx.AlgorithmES256, exampleIssuer, nil).Verify(token)
	require.Error(t, err)
}

func TestNewSignerRejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("k", []byte("not-a-pem-key"))
	require.ErrorContains(t, err, "invalid PEM")

	ecKey, err := cryptox.GenerateES256Key()
	require.NoError(t, err)
	_, err = jwtx.NewSignerEdDSA("k", ecKey)
	require.ErrorContains(t, err, "not Ed25519")
}
