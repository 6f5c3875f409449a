package models

// Pessoa defines the registered person model based on the 'pessoas' table.
// Nascimento is kept as raw text: submissions that never parsed against the
// expected date format are stored as given, so derived reports parse it on
// the way out instead of trusting the column.
type Pessoa struct {
	ID          int64  `json:"id" db:"id" example:"1"`                         // Unique identifier for the pessoa record
	Nome        string `json:"nome" db:"nome" example:"Ana Souza"`             // Full name (required)
	CPF         string `json:"cpf" db:"cpf" example:"111.222.333-44"`          // Document ID, unique across all rows (required)
	Nascimento  string `json:"nascimento" db:"nascimento" example:"2010-03-15"`// Birth date as submitted
	Email       string `json:"email" db:"email"`
	Telefone    string `json:"telefone" db:"telefone"`
	Tipo        string `json:"tipo" db:"tipo" example:"aluno"` // Person type tag (aluno/professor)
	Matricula   string `json:"matricula" db:"matricula"`       // Registration code
	Classe      string `json:"classe" db:"classe" example:"5A"`// Class/group label (required)
	Sala        string `json:"sala" db:"sala"`
	AnoIngresso string `json:"anoIngresso" db:"ano_ingresso" example:"2022"` // 4-digit enrollment year
	CEP         string `json:"cep" db:"cep"`
	Rua         string `json:"rua" db:"rua"`
	Numero      string `json:"numero" db:"numero"`
	Complemento string `json:"complemento" db:"complemento"`
	Bairro      string `json:"bairro" db:"bairro"`
	Cidade      string `json:"cidade" db:"cidade"`
	Estado      string `json:"estado" db:"estado"`
}
