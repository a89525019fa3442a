//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 12 * time.Hour

// AuthService verifies operator credentials and issues session tokens for
// the admin API. The operator identity store itself is external; this
// service checks a single configured bcrypt hash.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	jwtSecret    []byte
	passwordHash string
}

// NewAuthService creates the operator auth service.
func NewAuthService(jwtSecret string, passwordHash string) AuthService {
	return &authService{jwtSecret: []byte(jwtSecret), passwordHash: passwordHash}
}

func (s *authService) Login(_ context.Context, password string) (string, error) {
	if len(s.jwtSecret) == 0 || s.passwordHash == "" {
		return "", ErrAuthNotConfigured
	}
	if password == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator",
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) ValidateToken(tokenString string) (bool, error) {
	if len(s.jwtSecret) == 0 {
		return false, ErrAuthNotConfigured
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return false, nil
	}
	return token.Valid, nil
}
