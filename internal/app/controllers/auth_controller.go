package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ebdapp/cadastro/internal/app/models/dto"
	"github.com/ebdapp/cadastro/internal/app/services"
	"github.com/ebdapp/cadastro/internal/middleware"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
)

// AuthController handles login, logout and credential registration
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// LoginPage serves the login entry point
// @Summary Login page
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /login [get]
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// Login authenticates a credential and establishes the session
// @Summary Authenticate
// @Description Verifies login and password, issues a session token and sets the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param request formData dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleRequestError(ctx, apperrors.NewValidationError("login and senha are required"), "/login")
		return
	}

	resp, err := c.authService.Login(ctx, req.Login, req.Senha)
	if err != nil {
		middleware.HandleRequestError(ctx, err, "/login")
		return
	}

	ctx.SetCookie(middleware.SessionCookieName, resp.Token.Token,
		int(resp.Token.ExpiresIn), "/", "", false, true)

	if middleware.WantsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/visualizar")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// Logout revokes the current session and clears the session cookie
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	jti := ctx.GetString("jti")
	if err := c.authService.Logout(ctx, jti); err != nil {
		middleware.HandleRequestError(ctx, err, "/login")
		return
	}

	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	if middleware.WantsHTML(ctx) {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Sessão encerrada."},
		Timestamp: time.Now(),
	})
}

// RegisterPage serves the credential registration entry point
// @Summary Registration page
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /registrar [get]
func (c *AuthController) RegisterPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// Register creates a new login account
// @Summary Register a credential
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param request formData dto.RegisterRequest true "New credential"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Login already exists"
// @Router /registrar [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleRequestError(ctx, apperrors.NewValidationError("login and senha are required"), "/registrar")
		return
	}

	if err := c.authService.Register(ctx, req.Login, req.Senha); err != nil {
		middleware.HandleRequestError(ctx, err, "/registrar")
		return
	}

	if middleware.WantsHTML(ctx) {
		middleware.SetNotice(ctx, "Usuário registrado com sucesso.")
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Usuário registrado com sucesso."},
		Timestamp: time.Now(),
	})
}

// currentLogin resolves the logged-in login name for page payloads
func currentLogin(ctx *gin.Context, authService *services.AuthService) string {
	usuarioID := ctx.GetInt64("usuarioID")
	login, err := authService.GetLoginByID(ctx, usuarioID)
	if err != nil {
		// The claim still identifies the session even if the row lookup fails
		return ctx.GetString("login")
	}
	return login
}
