package dto

// LoginRequest represents login credentials, submitted as a browser form or JSON
type LoginRequest struct {
	Login string `form:"login" json:"login" binding:"required"`
	Senha string `form:"senha" json:"senha" binding:"required"`
}

// RegisterRequest represents a new credential registration
type RegisterRequest struct {
	Login string `form:"login" json:"login" binding:"required"`
	Senha string `form:"senha" json:"senha" binding:"required"`
}

// TokenResponse represents the session token issued on login
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	UsuarioID int64         `json:"usuarioId"`
	Login     string        `json:"login"`
	Token     TokenResponse `json:"token"`
}
