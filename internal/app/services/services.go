package services

import (
	"context"
	"time"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/app/repositories"
)

// Services defined in this package:
// - AuthService: credential registration, login/logout and session issuance
// - PessoaService: create/update/delete/lookup/search of pessoa records
// - ReportService: the derived report queries behind the relatorio views

// UsuarioStore is the credential persistence surface AuthService depends on
type UsuarioStore interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByLogin(ctx context.Context, login string) (*models.Usuario, error)
	GetByID(ctx context.Context, id int64) (*models.Usuario, error)
	LoginExists(ctx context.Context, login string) (bool, error)
}

// SessaoStore is the session persistence surface AuthService depends on
type SessaoStore interface {
	Create(ctx context.Context, jti string, usuarioID int64, expiraEm time.Time) error
	Validate(ctx context.Context, jti string) error
	Revoke(ctx context.Context, jti string) error
}

// PessoaStore is the pessoa persistence surface the services depend on
type PessoaStore interface {
	Create(ctx context.Context, pessoa *models.Pessoa) error
	GetByID(ctx context.Context, id int64) (*models.Pessoa, error)
	Update(ctx context.Context, pessoa *models.Pessoa) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, busca, ordem string) ([]*models.Pessoa, error)
	GetAll(ctx context.Context) ([]*models.Pessoa, error)
	GetAllByNome(ctx context.Context) ([]*models.Pessoa, error)
	GetAllByClasseNome(ctx context.Context) ([]*models.Pessoa, error)
	CountByClasse(ctx context.Context) ([]repositories.ClasseCount, error)
}
