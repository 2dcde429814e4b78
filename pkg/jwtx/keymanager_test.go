package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewEphemeralKeyManager(t *testing.T) {
	tests := []struct {
		name    string
		opts    jwtx.KeyManagerOptions
		alg     string
		signers int
	}{
		{"defaults", jwtx.KeyManagerOptions{Issuer: exampleIssuer}, jwtx.AlgorithmEdDSA, 3},
		{"ES256 single key", jwtx.KeyManagerOptions{Issuer: exampleIssuer, Algorithm: jwtx.AlgorithmES256, NumKeys: 1}, jwtx.AlgorithmES256, 1},
		{"capped", jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 50}, jwtx.AlgorithmEdDSA, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := jwtx.NewEphemeralKeyManager(tt.opts)
			require.NoError(t, err)
			require.Equal(t, tt.alg, km.Algorithm())
			require.Equal(t, tt.signers, km.NumSigners())
			require.True(t, km.IsReady())
		})
	}
}

func TestNewEphemeralKeyManager_Errors(t *testing.T) {
	_, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)

	_, err = jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, Algorithm: "RS256"})
	require.ErrorContains(t, err, "unsupported algorithm")
}

func TestKeyManager_SignAndVerifyAcrossKeys(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 4})
	require.NoError(t, err)

	now := time.Now().UTC()
	for range 20 {
		token, err := km.Sign(sessionClaims(now))
		require.NoError(t, err)

		got, err := km.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "user-456", got.Subject)
	}
}

func TestKeyManager_RejectsForeignTokens(t *testing.T) {
	a, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 1})
	require.NoError(t, err)
	b, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 1})
	require.NoError(t, err)

	token, err := a.Sign(sessionClaims(time.Now().UTC()))
	require.NoError(t, err)

	_, err = b.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}
