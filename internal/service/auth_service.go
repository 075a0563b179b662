//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

const adminSubject = "admin"

// AuthService authenticates the single admin account and issues the JWTs
// that guard the admin API group.
type AuthService interface {
	// Login checks the password against the configured bcrypt hash and
	// returns a signed token. ErrUnauthorized on mismatch.
	Login(ctx context.Context, password string) (string, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	secret       []byte
	passwordHash []byte
	now          func() time.Time
}

// NewAuthService creates the auth service. Both arguments come from config;
// an empty hash disables login entirely while tokens remain verifiable.
func NewAuthService(jwtSecret, adminPasswordHash string) AuthService {
	return &authService{
		secret:       []byte(jwtSecret),
		passwordHash: []byte(adminPasswordHash),
		now:          time.Now,
	}
}

func (s *authService) Login(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrInvalid
	}
	if len(s.passwordHash) == 0 || len(s.secret) == 0 {
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *authService) ValidateToken(token string) (bool, error) {
	if token == "" || len(s.secret) == 0 {
		return false, nil
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			return false, nil
		}
		return false, err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != adminSubject {
		return false, nil
	}
	return parsed.Valid, nil
}
