package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ebdapp/cadastro/internal/app/models/dto"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to the JSON error envelope
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPessoaNotFound),
		errors.Is(err, apperrors.ErrUsuarioNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrSessionRevoked):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	case errors.Is(err, apperrors.ErrLoginAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Login already exists"),
		})
	case errors.Is(err, apperrors.ErrCPFAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "CPF already registered"),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

// noticeFor translates expected errors to the user-visible notice shown
// after the redirect
func noticeFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Login ou senha inválidos"
	case errors.Is(err, apperrors.ErrLoginAlreadyExists):
		return "Usuário já existe."
	case errors.Is(err, apperrors.ErrCPFAlreadyExists):
		return "CPF já cadastrado."
	case errors.Is(err, apperrors.ErrPessoaNotFound):
		return "Registro não encontrado."
	case errors.Is(err, apperrors.ErrValidationFailed):
		return "Preencha todos os campos obrigatórios."
	default:
		return "Ocorreu um erro. Tente novamente."
	}
}

// HandleRequestError recovers an expected error at the request boundary.
// Browser form clients get a transient notice plus a redirect back to
// fallbackPath; API clients get the JSON envelope. Not-found errors stay a
// plain 404 for both, matching the original's get_or_404 behaviour.
func HandleRequestError(c *gin.Context, err error, fallbackPath string) {
	if errors.Is(err, apperrors.ErrPessoaNotFound) || errors.Is(err, apperrors.ErrResourceNotFound) {
		HandleAPIError(c, err)
		c.Abort()
		return
	}

	if WantsHTML(c) {
		SetNotice(c, noticeFor(err))
		c.Redirect(http.StatusSeeOther, fallbackPath)
		c.Abort()
		return
	}

	HandleAPIError(c, err)
	c.Abort()
}
