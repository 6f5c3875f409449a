package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	PessoaRepository  *PessoaRepository
	UsuarioRepository *UsuarioRepository
	SessaoRepository  *SessaoRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		PessoaRepository:  NewPessoaRepository(db),
		UsuarioRepository: NewUsuarioRepository(db),
		SessaoRepository:  NewSessaoRepository(db),
	}
}
