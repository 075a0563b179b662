package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"roteiro/backend/internal/service"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	svc := service.NewAuthService(testJWTSecret, hashPassword(t, "secret1"))

	token, err := svc.Login(context.Background(), "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ok, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAuthService_Login_Errors(t *testing.T) {
	svc := service.NewAuthService(testJWTSecret, hashPassword(t, "secret1"))

	_, err := svc.Login(context.Background(), "")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Login(context.Background(), "wrong")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_Login_NoHashConfigured(t *testing.T) {
	svc := service.NewAuthService(testJWTSecret, "")

	_, err := svc.Login(context.Background(), "secret1")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	svc := service.NewAuthService(testJWTSecret, hashPassword(t, "secret1"))

	ok, err := svc.ValidateToken("")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.ValidateToken("not-a-token")
	require.NoError(t, err)
	require.False(t, ok)

	// A token signed with a different secret must be rejected.
	other := service.NewAuthService("another-secret-another-secret-ab", hashPassword(t, "secret1"))
	token, err := other.Login(context.Background(), "secret1")
	require.NoError(t, err)

	ok, err = svc.ValidateToken(token)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	svc := service.NewAuthService(testJWTSecret, hashPassword(t, "secret1"))
	service.SetAuthClockForTest(svc, func() time.Time {
		return time.Now().Add(-48 * time.Hour)
	})

	token, err := svc.Login(context.Background(), "secret1")
	require.NoError(t, err)

	ok, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.False(t, ok)
}
