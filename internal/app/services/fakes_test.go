package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/app/repositories"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

type fakeUsuarioStore struct {
	usuarios map[string]*models.Usuario
	nextID   int64
}

func newFakeUsuarioStore() *fakeUsuarioStore {
	return &fakeUsuarioStore{usuarios: make(map[string]*models.Usuario)}
}

func (f *fakeUsuarioStore) Create(_ context.Context, usuario *models.Usuario) error {
	if _, ok := f.usuarios[usuario.Login]; ok {
		return apperrors.ErrLoginAlreadyExists
	}
	f.nextID++
	usuario.ID = f.nextID
	usuario.CriadoEm = time.Now()
	stored := *usuario
	f.usuarios[usuario.Login] = &stored
	return nil
}

func (f *fakeUsuarioStore) GetByLogin(_ context.Context, login string) (*models.Usuario, error) {
	usuario, ok := f.usuarios[login]
	if !ok {
		return nil, apperrors.ErrUsuarioNotFound
	}
	found := *usuario
	return &found, nil
}

func (f *fakeUsuarioStore) GetByID(_ context.Context, id int64) (*models.Usuario, error) {
	for _, usuario := range f.usuarios {
		if usuario.ID == id {
			found := *usuario
			return &found, nil
		}
	}
	return nil, apperrors.ErrUsuarioNotFound
}

func (f *fakeUsuarioStore) LoginExists(_ context.Context, login string) (bool, error) {
	_, ok := f.usuarios[login]
	return ok, nil
}

type fakeSessaoStore struct {
	sessoes map[string]*models.Sessao
	nextID  int64
}

func newFakeSessaoStore() *fakeSessaoStore {
	return &fakeSessaoStore{sessoes: make(map[string]*models.Sessao)}
}

func (f *fakeSessaoStore) Create(_ context.Context, jti string, usuarioID int64, expiraEm time.Time) error {
	if _, ok := f.sessoes[jti]; ok {
		return apperrors.ErrConflict
	}
	f.nextID++
	f.sessoes[jti] = &models.Sessao{
		ID:        f.nextID,
		JTI:       jti,
		UsuarioID: usuarioID,
		ExpiraEm:  expiraEm,
	}
	return nil
}

func (f *fakeSessaoStore) Validate(_ context.Context, jti string) error {
	sessao, ok := f.sessoes[jti]
	if !ok || sessao.Revogada {
		return apperrors.ErrSessionRevoked
	}
	if time.Now().After(sessao.ExpiraEm) {
		return apperrors.ErrTokenExpired
	}
	return nil
}

func (f *fakeSessaoStore) Revoke(_ context.Context, jti string) error {
	if sessao, ok := f.sessoes[jti]; ok {
		sessao.Revogada = true
	}
	return nil
}

type fakePessoaStore struct {
	pessoas []*models.Pessoa
	nextID  int64
	err     error
}

func newFakePessoaStore() *fakePessoaStore {
	return &fakePessoaStore{}
}

func (f *fakePessoaStore) Create(_ context.Context, pessoa *models.Pessoa) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.pessoas {
		if p.CPF == pessoa.CPF {
			return apperrors.ErrCPFAlreadyExists
		}
	}
	f.nextID++
	pessoa.ID = f.nextID
	stored := *pessoa
	f.pessoas = append(f.pessoas, &stored)
	return nil
}

func (f *fakePessoaStore) GetByID(_ context.Context, id int64) (*models.Pessoa, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.pessoas {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, apperrors.ErrPessoaNotFound
}

func (f *fakePessoaStore) Update(_ context.Context, pessoa *models.Pessoa) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.pessoas {
		if p.ID == pessoa.ID {
			stored := *pessoa
			f.pessoas[i] = &stored
			return nil
		}
	}
	return apperrors.ErrPessoaNotFound
}

func (f *fakePessoaStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.pessoas {
		if p.ID == id {
			f.pessoas = append(f.pessoas[:i], f.pessoas[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrPessoaNotFound
}

func (f *fakePessoaStore) Search(_ context.Context, busca, ordem string) ([]*models.Pessoa, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*models.Pessoa
	for _, p := range f.pessoas {
		if strings.Contains(strings.ToLower(p.Nome), strings.ToLower(busca)) {
			found := *p
			result = append(result, &found)
		}
	}
	if ordem == "classe" {
		sort.SliceStable(result, func(i, j int) bool { return result[i].Classe < result[j].Classe })
	} else {
		sort.SliceStable(result, func(i, j int) bool { return result[i].Nome < result[j].Nome })
	}
	return result, nil
}

func (f *fakePessoaStore) GetAll(_ context.Context) ([]*models.Pessoa, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*models.Pessoa, 0, len(f.pessoas))
	for _, p := range f.pessoas {
		found := *p
		result = append(result, &found)
	}
	return result, nil
}

func (f *fakePessoaStore) GetAllByNome(ctx context.Context) ([]*models.Pessoa, error) {
	result, err := f.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Nome < result[j].Nome })
	return result, nil
}

func (f *fakePessoaStore) GetAllByClasseNome(ctx context.Context) ([]*models.Pessoa, error) {
	result, err := f.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Classe != result[j].Classe {
			return result[i].Classe < result[j].Classe
		}
		return result[i].Nome < result[j].Nome
	})
	return result, nil
}

func (f *fakePessoaStore) CountByClasse(_ context.Context) ([]repositories.ClasseCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := make(map[string]int64)
	var labels []string
	for _, p := range f.pessoas {
		if _, ok := totals[p.Classe]; !ok {
			labels = append(labels, p.Classe)
		}
		totals[p.Classe]++
	}
	sort.Strings(labels)
	counts := make([]repositories.ClasseCount, 0, len(labels))
	for _, label := range labels {
		counts = append(counts, repositories.ClasseCount{Classe: label, Total: totals[label]})
	}
	return counts, nil
}
