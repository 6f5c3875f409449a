package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/dberrors"
)

// UsuarioRepository handles database operations for login accounts
type UsuarioRepository struct {
	db *pgxpool.Pool
}

// NewUsuarioRepository creates a new usuario repository
func NewUsuarioRepository(db *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{
		db: db,
	}
}

// Create persists a new usuario. The stored secret is the bcrypt hash the
// service produced, never the raw password.
func (r *UsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	query := `
		INSERT INTO usuarios (login, senha_hash, criado_em)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, usuario.Login, usuario.SenhaHash, time.Now()).Scan(&usuario.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "usuarios_login_key") {
			return apperrors.ErrLoginAlreadyExists
		}
		return fmt.Errorf("error creating usuario: %w", err)
	}

	return nil
}

// GetByLogin retrieves a usuario by login name
func (r *UsuarioRepository) GetByLogin(ctx context.Context, login string) (*models.Usuario, error) {
	query := `
		SELECT id, login, senha_hash, criado_em
		FROM usuarios
		WHERE login = $1
	`

	var usuario models.Usuario
	err := r.db.QueryRow(ctx, query, login).Scan(
		&usuario.ID,
		&usuario.Login,
		&usuario.SenhaHash,
		&usuario.CriadoEm,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}

	return &usuario, nil
}

// GetByID retrieves a usuario by ID
func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	query := `
		SELECT id, login, senha_hash, criado_em
		FROM usuarios
		WHERE id = $1
	`

	var usuario models.Usuario
	err := r.db.QueryRow(ctx, query, id).Scan(
		&usuario.ID,
		&usuario.Login,
		&usuario.SenhaHash,
		&usuario.CriadoEm,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}

	return &usuario, nil
}

// LoginExists checks if a login name is already taken
func (r *UsuarioRepository) LoginExists(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios WHERE login = $1)`,
		login).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking login existence: %w", err)
	}

	return exists, nil
}
