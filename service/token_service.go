package service

import (
	"fmt"
	"go-lists-api/logger"
	"go-lists-api/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and verifies HS256 access tokens. It holds only the
// signing secret and the token lifetime, both fixed at construction, so a
// single instance is safe for concurrent use.
//
// There is no revocation: a token stays valid until it expires or the
// secret changes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	key := make([]byte, len(secret))
	copy(key, secret)
	return &TokenService{secret: key, ttl: ttl, now: time.Now}
}

// Issue signs a token asserting identity, valid for the configured TTL.
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	now := s.now()
	claims := &model.AppClaims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.Itoa(identity.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", identity.ID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature, algorithm and expiry of raw and returns the
// identity it carries. Every failure wraps ErrInvalidToken.
func (s *TokenService) Verify(raw string) (model.Identity, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	return claims.User, nil
}
