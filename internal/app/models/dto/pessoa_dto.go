package dto

import "github.com/ebdapp/cadastro/internal/app/models"

// PessoaRequest carries the cadastro/editar form fields.
// Only nome, cpf and classe are required; everything else is free text the
// way the original form submits it.
type PessoaRequest struct {
	Nome        string `form:"nome" json:"nome" binding:"required"`
	CPF         string `form:"cpf" json:"cpf" binding:"required"`
	Nascimento  string `form:"nascimento" json:"nascimento"`
	Email       string `form:"email" json:"email"`
	Telefone    string `form:"telefone" json:"telefone"`
	Tipo        string `form:"tipo" json:"tipo"`
	Matricula   string `form:"matricula" json:"matricula"`
	Classe      string `form:"classe" json:"classe" binding:"required"`
	Sala        string `form:"sala" json:"sala"`
	AnoIngresso string `form:"ano_ingresso" json:"anoIngresso"`
	CEP         string `form:"cep" json:"cep"`
	Rua         string `form:"rua" json:"rua"`
	Numero      string `form:"numero" json:"numero"`
	Complemento string `form:"complemento" json:"complemento"`
	Bairro      string `form:"bairro" json:"bairro"`
	Cidade      string `form:"cidade" json:"cidade"`
	Estado      string `form:"estado" json:"estado"`
}

// ToModel converts the request into a Pessoa model
func (r *PessoaRequest) ToModel() *models.Pessoa {
	return &models.Pessoa{
		Nome:        r.Nome,
		CPF:         r.CPF,
		Nascimento:  r.Nascimento,
		Email:       r.Email,
		Telefone:    r.Telefone,
		Tipo:        r.Tipo,
		Matricula:   r.Matricula,
		Classe:      r.Classe,
		Sala:        r.Sala,
		AnoIngresso: r.AnoIngresso,
		CEP:         r.CEP,
		Rua:         r.Rua,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Bairro:      r.Bairro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
	}
}

// ListResponse is the payload behind the visualizar listing view
type ListResponse struct {
	Pessoas []*models.Pessoa `json:"pessoas"`
	Total   int              `json:"total"`
	Usuario string           `json:"usuario"`
}

// FormPageResponse is the payload behind the cadastro/editar form pages
type FormPageResponse struct {
	Usuario string         `json:"usuario"`
	Pessoa  *models.Pessoa `json:"pessoa,omitempty"`
}
