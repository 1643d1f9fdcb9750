package jwt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"chat-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Generate generates a new JWT token with HS256.
func (m *managerImpl) Generate(userID int64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify verifies and parses a JWT token, including the revocation check.
func (m *managerImpl) Verify(ctx context.Context, tokenString string) (scope.Payload, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return scope.Payload{}, err
	}

	if m.blacklist != nil && claims.ID != "" {
		revoked, err := m.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return scope.Payload{}, fmt.Errorf("blacklist lookup: %w", err)
		}
		if revoked {
			return scope.Payload{}, ErrTokenRevoked
		}
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return scope.Payload{}, ErrInvalidToken
	}

	p := scope.Payload{
		UserID:  userID,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	return p, nil
}

// Revoke blacklists the token's ID for its remaining lifetime.
func (m *managerImpl) Revoke(ctx context.Context, tokenString string) error {
	if m.blacklist == nil {
		return nil
	}

	claims, err := m.parse(tokenString)
	if err != nil {
		return err
	}
	if claims.ID == "" {
		return ErrInvalidToken
	}

	ttl := m.ttl
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return m.blacklist.Revoke(ctx, claims.ID, ttl)
}

func (m *managerImpl) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
