package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
)

func newTestPessoaService() (*PessoaService, *fakePessoaStore) {
	store := newFakePessoaStore()
	return NewPessoaService(store, zerolog.Nop()), store
}

func validPessoa() *models.Pessoa {
	return &models.Pessoa{
		Nome:        "Ana Souza",
		CPF:         "111.222.333-44",
		Nascimento:  "2010-03-15",
		Classe:      "5A",
		AnoIngresso: "2022",
	}
}

func TestPessoaServiceCreate(t *testing.T) {
	svc, store := newTestPessoaService()
	ctx := context.Background()

	pessoa := validPessoa()
	require.NoError(t, svc.Create(ctx, pessoa))
	assert.NotZero(t, pessoa.ID)
	assert.Len(t, store.pessoas, 1)
}

func TestPessoaServiceCreateRequiredFields(t *testing.T) {
	svc, _ := newTestPessoaService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Pessoa)
	}{
		{"missing nome", func(p *models.Pessoa) { p.Nome = "" }},
		{"blank nome", func(p *models.Pessoa) { p.Nome = "   " }},
		{"missing cpf", func(p *models.Pessoa) { p.CPF = "" }},
		{"missing classe", func(p *models.Pessoa) { p.Classe = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pessoa := validPessoa()
			tt.mutate(pessoa)
			err := svc.Create(ctx, pessoa)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestPessoaServiceCreateDuplicateCPF(t *testing.T) {
	svc, _ := newTestPessoaService()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, validPessoa()))

	dup := validPessoa()
	dup.Nome = "Outro Nome"
	err := svc.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrCPFAlreadyExists)
}

func TestPessoaServiceCreateKeepsUnparseableDate(t *testing.T) {
	svc, store := newTestPessoaService()
	ctx := context.Background()

	pessoa := validPessoa()
	pessoa.Nascimento = "not-a-date"
	require.NoError(t, svc.Create(ctx, pessoa))

	// Free-text date fields are stored exactly as submitted
	assert.Equal(t, "not-a-date", store.pessoas[0].Nascimento)
}

func TestPessoaServiceUpdate(t *testing.T) {
	svc, _ := newTestPessoaService()
	ctx := context.Background()

	pessoa := validPessoa()
	require.NoError(t, svc.Create(ctx, pessoa))

	pessoa.Nome = "Ana Maria Souza"
	pessoa.Classe = "6B"
	require.NoError(t, svc.Update(ctx, pessoa))

	updated, err := svc.GetByID(ctx, pessoa.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria Souza", updated.Nome)
	assert.Equal(t, "6B", updated.Classe)
}

func TestPessoaServiceUpdateNotFound(t *testing.T) {
	svc, _ := newTestPessoaService()

	pessoa := validPessoa()
	pessoa.ID = 42
	err := svc.Update(context.Background(), pessoa)
	assert.ErrorIs(t, err, apperrors.ErrPessoaNotFound)
}

func TestPessoaServiceDelete(t *testing.T) {
	svc, store := newTestPessoaService()
	ctx := context.Background()

	pessoa := validPessoa()
	require.NoError(t, svc.Create(ctx, pessoa))
	require.NoError(t, svc.Delete(ctx, pessoa.ID))
	assert.Empty(t, store.pessoas)

	assert.ErrorIs(t, svc.Delete(ctx, pessoa.ID), apperrors.ErrPessoaNotFound)
}

func TestPessoaServiceGetByIDNotFound(t *testing.T) {
	svc, _ := newTestPessoaService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrPessoaNotFound)
}

func TestPessoaServiceSearch(t *testing.T) {
	svc, _ := newTestPessoaService()
	ctx := context.Background()

	seed := []*models.Pessoa{
		{Nome: "Ana Souza", CPF: "1", Classe: "5A"},
		{Nome: "Beatriz Lima", CPF: "2", Classe: "4B"},
		{Nome: "Mariana Costa", CPF: "3", Classe: "5A"},
	}
	for _, p := range seed {
		require.NoError(t, svc.Create(ctx, p))
	}

	// Substring match is case-insensitive
	result, err := svc.Search(ctx, "ana", "")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Ana Souza", result[0].Nome)
	assert.Equal(t, "Mariana Costa", result[1].Nome)

	// Empty search returns everything
	result, err = svc.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, result, 3)

	// ordem=classe sorts by class label
	result, err = svc.Search(ctx, "", "classe")
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "4B", result[0].Classe)

	// No match yields an empty listing, not an error
	result, err = svc.Search(ctx, "zzz", "")
	require.NoError(t, err)
	assert.Empty(t, result)
}
