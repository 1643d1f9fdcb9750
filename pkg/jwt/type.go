package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims represents the JWT claims structure.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	blacklist Blacklist
}
