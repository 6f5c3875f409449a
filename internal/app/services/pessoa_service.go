package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/validation"
)

// PessoaService handles pessoa record operations
type PessoaService struct {
	pessoas PessoaStore
	logger  zerolog.Logger
}

// NewPessoaService creates a new PessoaService
func NewPessoaService(pessoas PessoaStore, logger zerolog.Logger) *PessoaService {
	return &PessoaService{
		pessoas: pessoas,
		logger:  logger,
	}
}

// validateRequired enforces the required fields: nome, cpf and classe.
// Every other field is free text stored as submitted, including date fields
// that do not parse.
func (s *PessoaService) validateRequired(pessoa *models.Pessoa) error {
	if !validation.HasContent(pessoa.Nome) {
		return apperrors.NewValidationError("nome is required")
	}
	if !validation.HasContent(pessoa.CPF) {
		return apperrors.NewValidationError("cpf is required")
	}
	if !validation.HasContent(pessoa.Classe) {
		return apperrors.NewValidationError("classe is required")
	}
	return nil
}

// Create validates and persists a new pessoa, assigning its id
func (s *PessoaService) Create(ctx context.Context, pessoa *models.Pessoa) error {
	if err := s.validateRequired(pessoa); err != nil {
		return err
	}

	if err := s.pessoas.Create(ctx, pessoa); err != nil {
		return err
	}

	s.logger.Info().Int64("pessoaID", pessoa.ID).Str("nome", pessoa.Nome).Msg("Pessoa created")
	return nil
}

// Update overwrites all mutable fields of an existing pessoa
func (s *PessoaService) Update(ctx context.Context, pessoa *models.Pessoa) error {
	if err := s.validateRequired(pessoa); err != nil {
		return err
	}

	if err := s.pessoas.Update(ctx, pessoa); err != nil {
		return err
	}

	s.logger.Info().Int64("pessoaID", pessoa.ID).Msg("Pessoa updated")
	return nil
}

// Delete permanently removes a pessoa
func (s *PessoaService) Delete(ctx context.Context, id int64) error {
	if err := s.pessoas.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("pessoaID", id).Msg("Pessoa deleted")
	return nil
}

// GetByID retrieves a single pessoa
func (s *PessoaService) GetByID(ctx context.Context, id int64) (*models.Pessoa, error) {
	return s.pessoas.GetByID(ctx, id)
}

// Search returns the listing behind the visualizar view: name-substring
// filter plus optional sort by class label
func (s *PessoaService) Search(ctx context.Context, busca, ordem string) ([]*models.Pessoa, error) {
	return s.pessoas.Search(ctx, busca, ordem)
}
