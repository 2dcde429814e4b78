package cryptox_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func parsePKCS8(t *testing.T, pemBytes []byte) any {
	t.Helper()
	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	return key
}

func TestGenerateEd25519Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	key, ok := parsePKCS8(t, pemBytes).(ed25519.PrivateKey)
	require.True(t, ok)
	require.Len(t, key, ed25519.PrivateKeySize)
}

func TestGenerateES256Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateES256Key()
	require.NoError(t, err)

	key, ok := parsePKCS8(t, pemBytes).(*ecdsa.PrivateKey)
	require.True(t, ok)
	require.Equal(t, "P-256", key.Curve.Params().Name)
}
