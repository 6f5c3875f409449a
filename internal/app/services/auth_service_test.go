package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeUsuarioStore, *fakeSessaoStore) {
	usuarios := newFakeUsuarioStore()
	sessoes := newFakeSessaoStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: time.Hour,
		TokenIssuer:     "cadastro.test",
	})
	svc := NewAuthService(usuarios, sessoes, jwtService, zerolog.Nop())
	return svc, usuarios, sessoes
}

func TestAuthServiceRegister(t *testing.T) {
	svc, usuarios, _ := newTestAuthService()
	ctx := context.Background()

	err := svc.Register(ctx, "maria", "segredo123")
	require.NoError(t, err)

	usuario, err := usuarios.GetByLogin(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, "maria", usuario.Login)
	assert.NotEqual(t, "segredo123", usuario.SenhaHash)
	assert.True(t, auth.CheckPassword(usuario.SenhaHash, "segredo123"))
}

func TestAuthServiceRegisterDuplicateLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "maria", "segredo123"))

	err := svc.Register(ctx, "maria", "outrasenha")
	assert.ErrorIs(t, err, apperrors.ErrLoginAlreadyExists)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Register(ctx, "", "senha"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.Register(ctx, "   ", "senha"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.Register(ctx, "maria", ""), apperrors.ErrValidationFailed)
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _, sessoes := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "maria", "segredo123"))

	resp, err := svc.Login(ctx, "maria", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, "maria", resp.Login)
	assert.NotEmpty(t, resp.Token.Token)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Greater(t, resp.Token.ExpiresIn, int64(0))

	// A session row exists for the issued token
	assert.Len(t, sessoes.sessoes, 1)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "maria", "segredo123"))

	_, err := svc.Login(ctx, "maria", "errada")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	// An unknown login is indistinguishable from a wrong password
	_, err := svc.Login(context.Background(), "ninguem", "qualquer")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceLogoutRevokesSession(t *testing.T) {
	svc, _, sessoes := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "maria", "segredo123"))
	_, err := svc.Login(ctx, "maria", "segredo123")
	require.NoError(t, err)

	var jti string
	for k := range sessoes.sessoes {
		jti = k
	}
	require.NotEmpty(t, jti)

	require.NoError(t, svc.ValidateSession(ctx, jti))
	require.NoError(t, svc.Logout(ctx, jti))
	assert.ErrorIs(t, svc.ValidateSession(ctx, jti), apperrors.ErrSessionRevoked)
}

func TestAuthServiceValidateSessionUnknownJTI(t *testing.T) {
	svc, _, _ := newTestAuthService()

	err := svc.ValidateSession(context.Background(), "no-such-jti")
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)
}

func TestAuthServiceGetLoginByID(t *testing.T) {
	svc, usuarios, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "maria", "segredo123"))
	usuario, err := usuarios.GetByLogin(ctx, "maria")
	require.NoError(t, err)

	login, err := svc.GetLoginByID(ctx, usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", login)

	_, err = svc.GetLoginByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUsuarioNotFound)
}
