package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/app/repositories"
	"github.com/ebdapp/cadastro/internal/config"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/auth"
)

// CreateDefaultData seeds the configured admin credential so a fresh install
// has a working login. Skipped entirely when no seed login is configured,
// and a pre-existing login is left untouched.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	if cfg.Seed.AdminLogin == "" || cfg.Seed.AdminPassword == "" {
		lgr.Debug().Msg("No seed credential configured, skipping default data")
		return nil
	}

	usuarioRepo := repositories.NewUsuarioRepository(dbPool)

	senhaHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	usuario := &models.Usuario{
		Login:     cfg.Seed.AdminLogin,
		SenhaHash: senhaHash,
	}

	err = usuarioRepo.Create(ctx, usuario)
	if err != nil {
		if errors.Is(err, apperrors.ErrLoginAlreadyExists) {
			lgr.Debug().Str("login", cfg.Seed.AdminLogin).Msg("Seed credential already exists")
			return nil
		}
		lgr.Error().Err(err).Str("login", cfg.Seed.AdminLogin).Msg("Error creating seed credential")
		return err
	}

	lgr.Info().Str("login", cfg.Seed.AdminLogin).Msg("Seed credential created")
	return nil
}
