package services

import (
	"context"
	"sort"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/app/models/dto"
	"github.com/ebdapp/cadastro/internal/pkg/helpers"
)

// ReportService computes the derived report views over pessoa records
type ReportService struct {
	pessoas PessoaStore
}

// NewReportService creates a new ReportService
func NewReportService(pessoas PessoaStore) *ReportService {
	return &ReportService{
		pessoas: pessoas,
	}
}

// GroupByClasse partitions all pessoas by class label. Groups keep the order
// the storage yields the labels in; members inside a group are sorted by
// name. Callers needing a deterministic label order must sort the labels
// themselves.
func (s *ReportService) GroupByClasse(ctx context.Context) ([]dto.ClasseGroup, error) {
	pessoas, err := s.pessoas.GetAllByClasseNome(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var grupos []dto.ClasseGroup
	for _, p := range pessoas {
		i, ok := index[p.Classe]
		if !ok {
			i = len(grupos)
			index[p.Classe] = i
			grupos = append(grupos, dto.ClasseGroup{Classe: p.Classe})
		}
		grupos[i].Pessoas = append(grupos[i].Pessoas, p)
	}

	return grupos, nil
}

// AllByNome returns every pessoa ordered by name ascending
func (s *ReportService) AllByNome(ctx context.Context) ([]*models.Pessoa, error) {
	return s.pessoas.GetAllByNome(ctx)
}

// BirthdaysInMonth returns pessoas whose birth date falls in the given
// month, ordered by day of month ascending. Rows whose stored birth date
// does not parse carry no extractable month and are excluded.
func (s *ReportService) BirthdaysInMonth(ctx context.Context, month int) ([]*dto.Aniversariante, error) {
	pessoas, err := s.pessoas.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	type entry struct {
		pessoa *models.Pessoa
		day    int
	}

	var entries []entry
	for _, p := range pessoas {
		nascimento, ok := helpers.ParseBirthDate(p.Nascimento)
		if !ok {
			continue
		}
		if int(nascimento.Month()) != month {
			continue
		}
		entries = append(entries, entry{pessoa: p, day: nascimento.Day()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].day < entries[j].day
	})

	aniversariantes := make([]*dto.Aniversariante, 0, len(entries))
	for _, e := range entries {
		aniversariantes = append(aniversariantes, &dto.Aniversariante{
			Pessoa:              e.pessoa,
			NascimentoFormatado: helpers.FormatDate(e.pessoa.Nascimento),
		})
	}

	return aniversariantes, nil
}

// ByYearsEnrolled returns pessoas enrolled exactly tempo years before
// currentYear. Rows with a blank or non-numeric enrollment year are
// silently excluded from the filtered result. A nil tempo means no
// filtering: the full list comes back.
func (s *ReportService) ByYearsEnrolled(ctx context.Context, currentYear int, tempo *int) ([]*models.Pessoa, error) {
	pessoas, err := s.pessoas.GetAllByClasseNome(ctx)
	if err != nil {
		return nil, err
	}

	if tempo == nil {
		return pessoas, nil
	}

	filtered := make([]*models.Pessoa, 0)
	for _, p := range pessoas {
		years, ok := helpers.YearsEnrolled(p.AnoIngresso, currentYear)
		if !ok {
			continue
		}
		if years == *tempo {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// ClasseCounts returns parallel label/count slices for the class bar chart
func (s *ReportService) ClasseCounts(ctx context.Context) ([]string, []int64, error) {
	counts, err := s.pessoas.CountByClasse(ctx)
	if err != nil {
		return nil, nil, err
	}

	labels := make([]string, 0, len(counts))
	valores := make([]int64, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Classe)
		valores = append(valores, c.Total)
	}

	return labels, valores, nil
}
