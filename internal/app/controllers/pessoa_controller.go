package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebdapp/cadastro/internal/app/models/dto"
	"github.com/ebdapp/cadastro/internal/app/services"
	"github.com/ebdapp/cadastro/internal/middleware"
	"github.com/ebdapp/cadastro/internal/pkg/apperrors"
)

// PessoaController handles pessoa registration, listing, edit and delete
type PessoaController struct {
	pessoaService *services.PessoaService
	authService   *services.AuthService
}

// NewPessoaController creates a new PessoaController
func NewPessoaController(pessoaService *services.PessoaService, authService *services.AuthService) *PessoaController {
	return &PessoaController{
		pessoaService: pessoaService,
		authService:   authService,
	}
}

// pessoaID parses the :id route parameter. Non-numeric ids behave like
// unknown ids: the route converter in the original served a 404 for them.
func pessoaID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrPessoaNotFound
	}
	return id, nil
}

// CadastroPage serves the data behind the cadastro form page
// @Summary Cadastro form page
// @Tags pessoas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FormPageResponse}
// @Router /cadastro [get]
func (c *PessoaController) CadastroPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FormPageResponse{
			Usuario: currentLogin(ctx, c.authService),
		},
		Timestamp: time.Now(),
	})
}

// Cadastro creates a new pessoa record
// @Summary Register a pessoa
// @Description Validates required fields and persists a new pessoa; duplicate CPF is rejected
// @Tags pessoas
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request formData dto.PessoaRequest true "Pessoa fields"
// @Success 201 {object} dto.APIResponse{data=models.Pessoa}
// @Failure 400 {object} dto.ErrorResponse "Missing required field"
// @Failure 409 {object} dto.ErrorResponse "CPF already registered"
// @Router /cadastro [post]
func (c *PessoaController) Cadastro(ctx *gin.Context) {
	var req dto.PessoaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleRequestError(ctx, apperrors.NewValidationError(err.Error()), "/cadastro")
		return
	}

	pessoa := req.ToModel()
	if err := c.pessoaService.Create(ctx, pessoa); err != nil {
		middleware.HandleRequestError(ctx, err, "/cadastro")
		return
	}

	if middleware.WantsHTML(ctx) {
		middleware.SetNotice(ctx, "Cadastro realizado com sucesso.")
		ctx.Redirect(http.StatusSeeOther, "/visualizar")
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      pessoa,
		Timestamp: time.Now(),
	})
}

// Visualizar serves the listing view with optional name search and class sort
// @Summary List pessoas
// @Tags pessoas
// @Produce json
// @Security BearerAuth
// @Param busca query string false "Name substring filter"
// @Param ordem query string false "Sort key, 'classe' sorts by class label"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse}
// @Router /visualizar [get]
func (c *PessoaController) Visualizar(ctx *gin.Context) {
	busca := ctx.Query("busca")
	ordem := ctx.Query("ordem")

	pessoas, err := c.pessoaService.Search(ctx, busca, ordem)
	if err != nil {
		middleware.HandleRequestError(ctx, err, "/visualizar")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ListResponse{
			Pessoas: pessoas,
			Total:   len(pessoas),
			Usuario: currentLogin(ctx, c.authService),
		},
		Timestamp: time.Now(),
	})
}

// EditarPage serves the data behind the edit form for one pessoa
// @Summary Edit form page
// @Tags pessoas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pessoa ID"
// @Success 200 {object} dto.APIResponse{data=dto.FormPageResponse}
// @Failure 404 {object} dto.ErrorResponse "Pessoa not found"
// @Router /editar/{id} [get]
func (c *PessoaController) EditarPage(ctx *gin.Context) {
	id, err := pessoaID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pessoa, err := c.pessoaService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FormPageResponse{
			Usuario: currentLogin(ctx, c.authService),
			Pessoa:  pessoa,
		},
		Timestamp: time.Now(),
	})
}

// Editar overwrites all mutable fields of an existing pessoa
// @Summary Update a pessoa
// @Tags pessoas
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pessoa ID"
// @Param request formData dto.PessoaRequest true "Pessoa fields"
// @Success 200 {object} dto.APIResponse{data=models.Pessoa}
// @Failure 404 {object} dto.ErrorResponse "Pessoa not found"
// @Router /editar/{id} [post]
func (c *PessoaController) Editar(ctx *gin.Context) {
	id, err := pessoaID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PessoaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleRequestError(ctx, apperrors.NewValidationError(err.Error()), "/visualizar")
		return
	}

	pessoa := req.ToModel()
	pessoa.ID = id
	if err := c.pessoaService.Update(ctx, pessoa); err != nil {
		middleware.HandleRequestError(ctx, err, "/visualizar")
		return
	}

	if middleware.WantsHTML(ctx) {
		middleware.SetNotice(ctx, "Registro atualizado com sucesso.")
		ctx.Redirect(http.StatusSeeOther, "/visualizar")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      pessoa,
		Timestamp: time.Now(),
	})
}

// Excluir permanently removes a pessoa
// @Summary Delete a pessoa
// @Tags pessoas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pessoa ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Pessoa not found"
// @Router /excluir/{id} [get]
func (c *PessoaController) Excluir(ctx *gin.Context) {
	id, err := pessoaID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.pessoaService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if middleware.WantsHTML(ctx) {
		middleware.SetNotice(ctx, "Registro excluído com sucesso.")
		ctx.Redirect(http.StatusSeeOther, "/visualizar")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Registro excluído com sucesso."},
		Timestamp: time.Now(),
	})
}
