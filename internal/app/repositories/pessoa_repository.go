package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebdapp/cadastro/internal/app/models"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
	"github.com/ebdapp/cadastro/internal/pkg/dberrors"
)

// pessoaColumns is the column list every pessoa query selects, in scan order
const pessoaColumns = `id, nome, cpf, nascimento, email, telefone, tipo, matricula,
		classe, sala, ano_ingresso, cep, rua, numero, complemento, bairro, cidade, estado`

// PessoaRepository handles database operations for registered persons
type PessoaRepository struct {
	db *pgxpool.Pool
}

// NewPessoaRepository creates a new pessoa repository
func NewPessoaRepository(db *pgxpool.Pool) *PessoaRepository {
	return &PessoaRepository{
		db: db,
	}
}

func scanPessoa(row pgx.Row) (*models.Pessoa, error) {
	var p models.Pessoa
	err := row.Scan(
		&p.ID,
		&p.Nome,
		&p.CPF,
		&p.Nascimento,
		&p.Email,
		&p.Telefone,
		&p.Tipo,
		&p.Matricula,
		&p.Classe,
		&p.Sala,
		&p.AnoIngresso,
		&p.CEP,
		&p.Rua,
		&p.Numero,
		&p.Complemento,
		&p.Bairro,
		&p.Cidade,
		&p.Estado,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPessoas(rows pgx.Rows) ([]*models.Pessoa, error) {
	defer rows.Close()

	var pessoas []*models.Pessoa
	for rows.Next() {
		p, err := scanPessoa(rows)
		if err != nil {
			return nil, err
		}
		pessoas = append(pessoas, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pessoas, nil
}

// Create inserts a new pessoa and assigns its id
func (r *PessoaRepository) Create(ctx context.Context, pessoa *models.Pessoa) error {
	query := `
		INSERT INTO pessoas (nome, cpf, nascimento, email, telefone, tipo, matricula,
			classe, sala, ano_ingresso, cep, rua, numero, complemento, bairro, cidade, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		pessoa.Nome, pessoa.CPF, pessoa.Nascimento, pessoa.Email, pessoa.Telefone,
		pessoa.Tipo, pessoa.Matricula, pessoa.Classe, pessoa.Sala, pessoa.AnoIngresso,
		pessoa.CEP, pessoa.Rua, pessoa.Numero, pessoa.Complemento, pessoa.Bairro,
		pessoa.Cidade, pessoa.Estado,
	).Scan(&pessoa.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "pessoas_cpf_key") {
			return apperrors.ErrCPFAlreadyExists
		}
		return fmt.Errorf("error creating pessoa: %w", err)
	}

	return nil
}

// GetByID retrieves a pessoa by ID
func (r *PessoaRepository) GetByID(ctx context.Context, id int64) (*models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM pessoas WHERE id = $1`

	pessoa, err := scanPessoa(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPessoaNotFound
		}
		return nil, fmt.Errorf("error retrieving pessoa: %w", err)
	}

	return pessoa, nil
}

// Update overwrites every mutable field of an existing pessoa. The cpf value
// is written as submitted without an app-level uniqueness re-check; a
// collision surfaces as a store-level failure.
func (r *PessoaRepository) Update(ctx context.Context, pessoa *models.Pessoa) error {
	query := `
		UPDATE pessoas
		SET nome = $1, cpf = $2, nascimento = $3, email = $4, telefone = $5,
			tipo = $6, matricula = $7, classe = $8, sala = $9, ano_ingresso = $10,
			cep = $11, rua = $12, numero = $13, complemento = $14, bairro = $15,
			cidade = $16, estado = $17
		WHERE id = $18
	`

	cmdTag, err := r.db.Exec(ctx, query,
		pessoa.Nome, pessoa.CPF, pessoa.Nascimento, pessoa.Email, pessoa.Telefone,
		pessoa.Tipo, pessoa.Matricula, pessoa.Classe, pessoa.Sala, pessoa.AnoIngresso,
		pessoa.CEP, pessoa.Rua, pessoa.Numero, pessoa.Complemento, pessoa.Bairro,
		pessoa.Cidade, pessoa.Estado, pessoa.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating pessoa: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPessoaNotFound
	}

	return nil
}

// Delete permanently removes a pessoa by ID
func (r *PessoaRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM pessoas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting pessoa: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPessoaNotFound
	}

	return nil
}

// Search returns pessoas whose name contains busca (case-insensitive).
// Empty busca means no filtering. ordem "classe" sorts by class label,
// anything else keeps storage order.
func (r *PessoaRepository) Search(ctx context.Context, busca, ordem string) ([]*models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM pessoas`

	var args []any
	if busca != "" {
		query += ` WHERE nome ILIKE '%' || $1 || '%'`
		args = append(args, busca)
	}
	if ordem == "classe" {
		query += ` ORDER BY classe`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching pessoas: %w", err)
	}

	return collectPessoas(rows)
}

// GetAllByClasseNome returns every pessoa ordered by class label then name,
// the backing query for the grouped and years-enrolled reports
func (r *PessoaRepository) GetAllByClasseNome(ctx context.Context) ([]*models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM pessoas ORDER BY classe, nome`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pessoas: %w", err)
	}

	return collectPessoas(rows)
}

// GetAllByNome returns every pessoa ordered by name ascending
func (r *PessoaRepository) GetAllByNome(ctx context.Context) ([]*models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM pessoas ORDER BY nome`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pessoas: %w", err)
	}

	return collectPessoas(rows)
}

// GetAll returns every pessoa in storage order, the backing query for the
// birthday report which filters in the service layer
func (r *PessoaRepository) GetAll(ctx context.Context) ([]*models.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM pessoas`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pessoas: %w", err)
	}

	return collectPessoas(rows)
}

// ClasseCount is one bar of the class-count chart
type ClasseCount struct {
	Classe string `json:"classe"`
	Total  int64  `json:"total"`
}

// CountByClasse returns the number of pessoas per distinct class label.
// Label order is whatever the store yields for the GROUP BY.
func (r *PessoaRepository) CountByClasse(ctx context.Context) ([]ClasseCount, error) {
	query := `SELECT classe, COUNT(id) FROM pessoas GROUP BY classe`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting pessoas by classe: %w", err)
	}
	defer rows.Close()

	var counts []ClasseCount
	for rows.Next() {
		var c ClasseCount
		if err := rows.Scan(&c.Classe, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
