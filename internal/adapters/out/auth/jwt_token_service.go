// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrSecretIsRequired = errors.New("jwt secret is required")

// Claims is the token payload. userId and email are read by every
// authenticated endpoint.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 tokens.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	clock  kernel.Clock
}

func NewJWTTokenService(secret string, ttl time.Duration, clock kernel.Clock) (*JWTTokenService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (s *JWTTokenService) Issue(userID kernel.UUID, email string) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := s.clock.Now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify accepts only HS256 tokens signed with the service secret that have
// not expired. Any failure is reported as errs.ErrNotAuthenticated.
func (s *JWTTokenService) Verify(token string) (ports.Principal, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", errs.ErrNotAuthenticated, err)
	}
	if !parsed.Valid {
		return ports.Principal{}, errs.ErrNotAuthenticated
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", errs.ErrNotAuthenticated, err)
	}

	return ports.Principal{UserID: userID, Email: claims.Email}, nil
}
