package localtoken

import (
	"fmt"
	"time"
)

// minMasterKeyBytes is the minimum accepted master key length.
const minMasterKeyBytes = 32

// Config holds the configuration for token encoding and parsing.
//
// Fields:
//   - MasterKey: Secret from which per-issuer key material is derived (min 32 bytes)
//   - AccessTokenDuration: Default access token lifespan applied when a record carries none
//   - AuthorizationCodeDuration: Default authorization code lifespan applied when a record carries none
type Config struct {
	MasterKey                 string
	AccessTokenDuration       time.Duration
	AuthorizationCodeDuration time.Duration
}

// DefaultConfig returns a Config with the standard lifespans: one hour for
// access tokens and ten minutes for authorization codes.
func DefaultConfig(masterKey string) Config {
	return Config{
		MasterKey:                 masterKey,
		AccessTokenDuration:       time.Hour,
		AuthorizationCodeDuration: 10 * time.Minute,
	}
}

func validateConfig(config *Config) error {
	if len(config.MasterKey) < minMasterKeyBytes {
		return fmt.Errorf("master key must be at least %d bytes", minMasterKeyBytes)
	}
	if config.AccessTokenDuration <= 0 {
		return fmt.Errorf("access token duration must be positive")
	}
	if config.AuthorizationCodeDuration <= 0 {
		return fmt.Errorf("authorization code duration must be positive")
	}
	return nil
}
