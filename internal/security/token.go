package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"carrental-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// CallerClaims carries the opaque caller identity in the Subject claim.
// The server only validates tokens; issuance belongs to whatever auth
// provider shares the signing secret. GenerateToken exists for tests and
// operator tooling.
type CallerClaims struct {
	jwt.RegisteredClaims
}

// Identity returns the opaque caller identity the token asserts.
func (c *CallerClaims) Identity() domain.Identity {
	return domain.Identity(c.Subject)
}

type TokenManager interface {
	GenerateToken(identity domain.Identity, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*CallerClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) GenerateToken(identity domain.Identity, ttl time.Duration) (string, error) {
	claims := CallerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(identity),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "carrental-backend",
			Audience:  jwt.ClaimStrings{"api-access"},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*CallerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CallerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*CallerClaims); ok && token.Valid {
		if claims.Subject == "" {
			return nil, ErrInvalidToken
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Simple unique ID generator
func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
