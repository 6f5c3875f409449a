package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/app/models/dto"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/auth"
	"github.com/ebdapp/cadastro/internal/pkg/validation"
)

// AuthService handles credential registration and session lifecycle
type AuthService struct {
	usuarios   UsuarioStore
	sessoes    SessaoStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	usuarios UsuarioStore,
	sessoes SessaoStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		usuarios:   usuarios,
		sessoes:    sessoes,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) validateCredentials(login, senha string) error {
	if !validation.HasContent(login) {
		return apperrors.NewValidationError("login cannot be empty")
	}
	if senha == "" {
		return apperrors.NewValidationError("senha cannot be empty")
	}
	return nil
}

// Register creates a new login account. The raw password is hashed with
// bcrypt before anything is persisted; it is never stored or logged.
func (s *AuthService) Register(ctx context.Context, login, senha string) error {
	if err := s.validateCredentials(login, senha); err != nil {
		return err
	}

	exists, err := s.usuarios.LoginExists(ctx, login)
	if err != nil {
		return fmt.Errorf("failed to check login: %w", err)
	}
	if exists {
		return apperrors.ErrLoginAlreadyExists
	}

	senhaHash, err := auth.HashPassword(senha)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usuario := &models.Usuario{
		Login:     login,
		SenhaHash: senhaHash,
	}

	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return err
	}

	s.logger.Info().Str("login", login).Int64("usuarioID", usuario.ID).Msg("Usuario registered")
	return nil
}

// Login authenticates a credential and establishes a session. An unknown
// login and a wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, login, senha string) (*dto.LoginResponse, error) {
	usuario, err := s.usuarios.GetByLogin(ctx, login)
	if err != nil {
		if err == apperrors.ErrUsuarioNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up usuario: %w", err)
	}

	if !auth.CheckPassword(usuario.SenhaHash, senha) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, jti, expiresAt, err := s.jwtService.GenerateSessionToken(usuario.ID, usuario.Login)
	if err != nil {
		return nil, err
	}

	if err := s.sessoes.Create(ctx, jti, usuario.ID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info().Str("login", usuario.Login).Int64("usuarioID", usuario.ID).Msg("Usuario logged in")

	return &dto.LoginResponse{
		UsuarioID: usuario.ID,
		Login:     usuario.Login,
		Token: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int64(time.Until(expiresAt).Seconds()),
		},
	}, nil
}

// Logout revokes the session identified by jti
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if err := s.sessoes.Revoke(ctx, jti); err != nil {
		return err
	}
	s.logger.Info().Str("jti", jti).Msg("Sessao revoked")
	return nil
}

// ValidateSession checks that a session jti is still live
func (s *AuthService) ValidateSession(ctx context.Context, jti string) error {
	return s.sessoes.Validate(ctx, jti)
}

// GetLoginByID resolves the login name shown on authenticated pages
func (s *AuthService) GetLoginByID(ctx context.Context, usuarioID int64) (string, error) {
	usuario, err := s.usuarios.GetByID(ctx, usuarioID)
	if err != nil {
		return "", err
	}
	return usuario.Login, nil
}
