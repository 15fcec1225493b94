package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkease/internal/repository"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	repo, err := repository.NewUserRepository("admin@parkease.in", "admin123")
	require.NoError(t, err)
	return NewAuthService(repo)
}

func TestLoginSeededAdmin(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Login("admin@parkease.in", "admin123")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@parkease.in", claims["email"])
	assert.Equal(t, true, claims["admin"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := newTestAuthService(t)
	_, err := svc.Login("admin@parkease.in", "wrong")
	assert.Error(t, err)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)
	_, err := svc.Login("nobody@parkease.in", "pw")
	assert.Error(t, err)
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(t)

	require.NoError(t, svc.Register("ravi@example.com", "Ravi Kumar", "+919876543210", "secret"))
	assert.Error(t, svc.Register("ravi@example.com", "Ravi Kumar", "", "other"), "duplicate email")

	token, err := svc.Login("ravi@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	svc := newTestAuthService(t)
	assert.Error(t, svc.Register("", "Name", "", "pw"))
	assert.Error(t, svc.Register("a@b.c", "Name", "", ""))
}
