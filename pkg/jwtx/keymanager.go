package jwtx

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
)

// KeyManager owns the signing keys of one instance. Keys are generated at
// startup and only live in memory, so every session is invalidated when
// the process restarts.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	algorithm string
	signers   []Signer
}

// KeyManagerOptions configures NewEphemeralKeyManager.
type KeyManagerOptions struct {
	// Algorithm is "EdDSA" (default) or "ES256".
	Algorithm string

	// Issuer is required and checked on verification.
	Issuer string

	// Audience, if set, must be present in every verified token.
	Audience []string

	// NumKeys defaults to 3, capped at 10.
	NumKeys int
}

// NewEphemeralKeyManager generates NumKeys signing keys and a verifier
// accepting any of them.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: Issuer is required")
	}
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmEdDSA
	}

	numKeys := opts.NumKeys
	if numKeys <= 0 {
		numKeys = 3
	}
	numKeys = min(numKeys, 10)

	keyset := NewKeySet()
	signers := make([]Signer, 0, numKeys)

	for i := range numKeys {
		kid := "rollcall-" + cryptox.MustGenerateToken(cryptox.TokenSize128)

		signer, err := generateSigner(opts.Algorithm, kid)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate signer %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: add signer %d to keyset: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier:  NewVerifier(keyset, opts.Algorithm, opts.Issuer, opts.Audience),
		KeySet:    keyset,
		algorithm: opts.Algorithm,
		signers:   signers,
	}, nil
}

func generateSigner(algorithm, kid string) (Signer, error) {
	switch algorithm {
	case AlgorithmES256:
		pemBytes, err := cryptox.GenerateES256Key()
		if err != nil {
			return nil, err
		}
		return NewSignerES256(kid, pemBytes)

	case AlgorithmEdDSA:
		pemBytes, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		return NewSignerEdDSA(kid, pemBytes)

	default:
		return nil, fmt.Errorf("unsupported algorithm %q (supported: ES256, EdDSA)", algorithm)
	}
}

// Algorithm returns the signing algorithm being used.
func (km *KeyManager) Algorithm() string { return km.algorithm }

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }

// NumSigners returns the number of signing keys.
func (km *KeyManager) NumSigners() int { return len(km.signers) }

// GetSigner returns a randomly selected signer.
func (km *KeyManager) GetSigner() Signer {
	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

// Sign signs claims with one of the managed keys.
func (km *KeyManager) Sign(claims Claims) (string, error) {
	s := km.GetSigner()
	if s == nil {
		return "", errors.New("jwtx: no signing keys")
	}
	return s.Sign(claims)
}
