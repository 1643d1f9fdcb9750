package jwt

import "fmt"

// MinSecretKeyLen is the minimum accepted HS256 secret length.
const MinSecretKeyLen = 32

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	if cfg.TTL <= 0 {
		return fmt.Errorf("jwt: token TTL must be positive")
	}
	return nil
}
