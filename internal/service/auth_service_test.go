package service

import (
	"testing"
	"time"

	"go-fichas-ws/internal/repository"
	"go-fichas-ws/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepo(db), time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register("dona@bar.com", "segredo", "Dona")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "dona@bar.com", resp.User.Email)
	assert.Empty(t, resp.User.Password, "hash must not serialize, and response carries no plaintext")

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	login, err := svc.Login("dona@bar.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("dona@bar.com", "segredo", "")
	require.NoError(t, err)

	_, err = svc.Register("dona@bar.com", "outra", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("not-an-email", "segredo", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("dona@bar.com", "segredo", "")
	require.NoError(t, err)

	_, err = svc.Login("dona@bar.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("ninguem@bar.com", "segredo")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
