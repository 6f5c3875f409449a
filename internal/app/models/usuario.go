package models

import (
	"time"
)

// Usuario defines the login account model based on the 'usuarios' table
type Usuario struct {
	ID        int64     `json:"id" db:"id" example:"1"`            // Unique identifier for the usuario
	Login     string    `json:"login" db:"login" example:"admin"`  // Login name, unique
	SenhaHash string    `json:"-" db:"senha_hash"`                 // bcrypt hash of the password (excluded from JSON)
	CriadoEm  time.Time `json:"criadoEm" db:"criado_em"`           // Timestamp when the account was registered
}

// Sessao defines a server-side session row based on the 'sessoes' table.
// A row exists for every issued session token; logout flips Revogada.
type Sessao struct {
	ID        int64     `json:"id" db:"id"`
	JTI       string    `json:"jti" db:"jti"`
	UsuarioID int64     `json:"usuarioId" db:"usuario_id"`
	ExpiraEm  time.Time `json:"expiraEm" db:"expira_em"`
	Revogada  bool      `json:"revogada" db:"revogada"`
}
