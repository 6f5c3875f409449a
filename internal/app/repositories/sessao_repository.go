package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/dberrors"
	"github.com/ebdapp/cadastro/internal/pkg/logger"
)

// SessaoRepository handles server-side session rows. A row is written for
// every issued session token; logout marks it revoked and the gate refuses
// tokens whose row is revoked or missing.
type SessaoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessaoRepository creates a new SessaoRepository
func NewSessaoRepository(db *pgxpool.Pool) *SessaoRepository {
	return &SessaoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a newly issued session
func (r *SessaoRepository) Create(ctx context.Context, jti string, usuarioID int64, expiraEm time.Time) error {
	sql, args, err := r.sb.Insert("sessoes").
		Columns("jti", "usuario_id", "expira_em", "revogada", "criada_em").
		Values(jti, usuarioID, expiraEm, false, time.Now()).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create sessao SQL")
		return fmt.Errorf("failed to build create sessao query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sessoes_jti_key") {
			logger.Warn().Str("jti", jti).Msg("Attempted to create duplicate sessao")
			return apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Str("jti", jti).Int64("usuarioID", usuarioID).Msg("Error executing create sessao query")
		return fmt.Errorf("error creating sessao: %w", err)
	}

	return nil
}

// Validate checks that a session identified by jti is live. Returns
// ErrSessionRevoked for revoked rows, ErrTokenExpired for expired ones and
// ErrSessionRevoked for unknown jtis, so a signed token whose session row is
// gone cannot pass the gate.
func (r *SessaoRepository) Validate(ctx context.Context, jti string) error {
	sql, args, err := r.sb.Select("expira_em", "revogada").
		From("sessoes").
		Where(squirrel.Eq{"jti": jti}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building validate sessao SQL")
		return fmt.Errorf("failed to build validate sessao query: %w", err)
	}

	var expiraEm time.Time
	var revogada bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&expiraEm, &revogada)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrSessionRevoked
		}
		logger.Error().Err(err).Str("jti", jti).Msg("Error scanning sessao row")
		return fmt.Errorf("error retrieving sessao: %w", err)
	}

	if revogada {
		return apperrors.ErrSessionRevoked
	}

	if expiraEm.Before(time.Now()) {
		return apperrors.ErrTokenExpired
	}

	return nil
}

// Revoke marks a session revoked. Revoking an unknown or already revoked
// session is not an error: logout is idempotent.
func (r *SessaoRepository) Revoke(ctx context.Context, jti string) error {
	sql, args, err := r.sb.Update("sessoes").
		Set("revogada", true).
		Where(squirrel.Eq{"jti": jti}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke sessao SQL")
		return fmt.Errorf("failed to build revoke sessao query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("jti", jti).Msg("Error executing revoke sessao query")
		return fmt.Errorf("error revoking sessao: %w", err)
	}

	return nil
}

// DeleteExpired removes session rows past their expiry, returning the number removed
func (r *SessaoRepository) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Delete("sessoes").
		Where(squirrel.Lt{"expira_em": time.Now()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build delete expired sessoes query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessoes: %w", err)
	}

	return tag.RowsAffected(), nil
}
