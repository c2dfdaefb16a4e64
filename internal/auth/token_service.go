package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenExpiry is the validity window of a session token.
const DefaultTokenExpiry = time.Hour

// Claims represents the session token payload. The user id is the only
// application claim; everything else is standard registered claims.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens. It is stateless:
// constructed once at startup with the signing secret and expiry, and safe for
// concurrent use.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a token service. A zero expiry falls back to
// DefaultTokenExpiry; a negative expiry is kept as-is so tests can mint
// already-expired tokens.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	if expiry == 0 {
		expiry = DefaultTokenExpiry
	}
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue generates a signed session token for the user.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
