package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebdapp/cadastro/internal/app/models"
)

func seedReportStore(t *testing.T, store *fakePessoaStore, pessoas []*models.Pessoa) {
	t.Helper()
	for _, p := range pessoas {
		require.NoError(t, store.Create(context.Background(), p))
	}
}

func TestReportServiceGroupByClasse(t *testing.T) {
	store := newFakePessoaStore()
	svc := NewReportService(store)
	seedReportStore(t, store, []*models.Pessoa{
		{Nome: "Carla", CPF: "1", Classe: "5A"},
		{Nome: "Ana", CPF: "2", Classe: "4B"},
		{Nome: "Bea", CPF: "3", Classe: "5A"},
	})

	grupos, err := svc.GroupByClasse(context.Background())
	require.NoError(t, err)
	require.Len(t, grupos, 2)

	assert.Equal(t, "4B", grupos[0].Classe)
	require.Len(t, grupos[0].Pessoas, 1)
	assert.Equal(t, "Ana", grupos[0].Pessoas[0].Nome)

	assert.Equal(t, "5A", grupos[1].Classe)
	require.Len(t, grupos[1].Pessoas, 2)
	assert.Equal(t, "Bea", grupos[1].Pessoas[0].Nome)
	assert.Equal(t, "Carla", grupos[1].Pessoas[1].Nome)
}

func TestReportServiceGroupByClasseEmpty(t *testing.T) {
	svc := NewReportService(newFakePessoaStore())

	grupos, err := svc.GroupByClasse(context.Background())
	require.NoError(t, err)
	assert.Empty(t, grupos)
}

func TestReportServiceAllByNome(t *testing.T) {
	store := newFakePessoaStore()
	svc := NewReportService(store)
	seedReportStore(t, store, []*models.Pessoa{
		{Nome: "Carla", CPF: "1", Classe: "5A"},
		{Nome: "Ana", CPF: "2", Classe: "4B"},
	})

	pessoas, err := svc.AllByNome(context.Background())
	require.NoError(t, err)
	require.Len(t, pessoas, 2)
	assert.Equal(t, "Ana", pessoas[0].Nome)
	assert.Equal(t, "Carla", pessoas[1].Nome)
}

func TestReportServiceBirthdaysInMonth(t *testing.T) {
	store := newFakePessoaStore()
	svc := NewReportService(store)
	seedReportStore(t, store, []*models.Pessoa{
		{Nome: "Ana", CPF: "1", Classe: "5A", Nascimento: "2010-03-22"},
		{Nome: "Bea", CPF: "2", Classe: "5A", Nascimento: "2011-03-05"},
		{Nome: "Caio", CPF: "3", Classe: "4B", Nascimento: "2010-07-01"},
		{Nome: "Davi", CPF: "4", Classe: "4B", Nascimento: "quinze de março"},
		{Nome: "Eva", CPF: "5", Classe: "4B", Nascimento: ""},
	})

	aniversariantes, err := svc.BirthdaysInMonth(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, aniversariantes, 2)

	// Ordered by day of month, unparseable dates excluded
	assert.Equal(t, "Bea", aniversariantes[0].Nome)
	assert.Equal(t, "05/03/2011", aniversariantes[0].NascimentoFormatado)
	assert.Equal(t, "Ana", aniversariantes[1].Nome)
	assert.Equal(t, "22/03/2010", aniversariantes[1].NascimentoFormatado)
}

func TestReportServiceBirthdaysInMonthNoMatches(t *testing.T) {
	store := newFakePessoaStore()
	svc := NewReportService(store)
	seedReportStore(t, store, []*models.Pessoa{
		{Nome: "Ana", CPF: "1", Classe: "5A", Nascimento: "2010-03-22"},
	})

	aniversariantes, err := svc.BirthdaysInMonth(context.Background(), 12)
	require.NoError(t, err)
	assert.Empty(t, aniversariantes)
}

func TestReportServiceByYearsEnrolled(t *testing.T) {
	store := newFakePessoaStore()
	svc := NewReportService(store)
	seedReportStore(t, store, []*models.Pessoa{
		{Nome: "Ana", CPF: "1", Classe: "5A", AnoIngresso: "2022"},
		{Nome: "Bea", CPF: "2", Classe: "5A", AnoIngresso: "2020"},
		{Nome: "Caio", CPF: "3", Classe: "4B", AnoIngresso: ""},
		{Nome: "Davi", CPF: "4", Classe: "4B", AnoIngresso: "20xx"},
	})
	ctx := context.Background()

	tempo := 2
	pessoas, err := svc.ByYearsEnrolled(ctx, 2024, &tempo)
	require.NoError(t, err)
	require.Len(t, pessoas, 1)
	assert.Equal(t, "Ana", pessoas[0].Nome)

	// Nothing matches four years back except Bea
	tempo = 4
	pessoas, err = svc.ByYearsEnrolled(ctx, 2024, &tempo)
	require.NoError(t, err)
	require.Len(t, pessoas, 1)
	assert.Equal(t, "Bea", pessoas[0].Nome)

	// No filter returns the full list, blank and malformed years included
	pessoas, err = svc.ByYearsEnrolled(ctx, 2024, nil)
	require.NoError(t, err)
	assert.Len(t, pessoas, 4)

	// A filter no row satisfies yields an empty list, not nil rows
	tempo = 50
	pessoas, err = svc.ByYearsEnrolled(ctx, 2024, &tempo)
	require.NoError(t, err)
	assert.NotNil(t, pessoas)
	assert.Empty(t, pessoas)
}

func TestReportServiceClasseCounts(t *testing.T) {
	store := newFakePessoaStore()
	svc := NewReportService(store)
	seedReportStore(t, store, []*models.Pessoa{
		{Nome: "Ana", CPF: "1", Classe: "5A"},
		{Nome: "Bea", CPF: "2", Classe: "5A"},
		{Nome: "Caio", CPF: "3", Classe: "4B"},
	})

	labels, valores, err := svc.ClasseCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"4B", "5A"}, labels)
	assert.Equal(t, []int64{1, 2}, valores)
}
