package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
)

// InitSessionKeys generates the session signing keys. Keys only live in
// memory: every session becomes invalid when the service restarts and users
// sign in again.
//
// Supported algorithms: ES256, EdDSA
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	logger.Info("generating session signing keys",
		"algorithm", cfg.Algorithm,
		"num_keys", cfg.NumKeys,
	)

	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Algorithm: cfg.Algorithm,
		Issuer:    cfg.Issuer,
		NumKeys:   cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session key manager: %w", err)
	}

	logger.Info("session signing keys ready",
		"algorithm", keyManager.Algorithm(),
		"num_keys", keyManager.NumSigners(),
	)
	return keyManager, nil
}
