package services

import (
	"time"

	"tripbook/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// SessionClaims is the payload carried by a session token.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens.
type TokenService struct {
	Secret []byte
	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s TokenService) Issue(userID int64, email string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "sign session token", Err: err}
	}
	return signed, nil
}

// Validate parses and verifies a session token. Missing, malformed,
// tampered and expired tokens all come back as UnauthenticatedError.
func (s TokenService) Validate(tokenString string) (SessionClaims, error) {
	if tokenString == "" {
		return SessionClaims{}, domain.UnauthenticatedError{Msg: "no token provided"}
	}

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return SessionClaims{}, domain.UnauthenticatedError{Msg: "invalid token", Err: err}
	}
	return claims, nil
}
