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

// ReportController serves the pre-built report views
type ReportController struct {
	reportService *services.ReportService
	authService   *services.AuthService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, authService *services.AuthService) *ReportController {
	return &ReportController{
		reportService: reportService,
		authService:   authService,
	}
}

// Relatorios serves the report menu page payload
// @Summary Report menu
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FormPageResponse}
// @Router /relatorios [get]
func (c *ReportController) Relatorios(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FormPageResponse{
			Usuario: currentLogin(ctx, c.authService),
		},
		Timestamp: time.Now(),
	})
}

// PorClasse serves the grouped-by-class report
// @Summary Report grouped by class
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RelatorioPorClasseResponse}
// @Router /relatorio-por-classe [get]
func (c *ReportController) PorClasse(ctx *gin.Context) {
	grupos, err := c.reportService.GroupByClasse(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.RelatorioPorClasseResponse{Grupos: grupos},
		Timestamp: time.Now(),
	})
}

// TodosAlunos serves the full listing ordered by name
// @Summary Full listing report
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Pessoa}
// @Router /relatorio-todos-alunos [get]
func (c *ReportController) TodosAlunos(ctx *gin.Context) {
	pessoas, err := c.reportService.AllByNome(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      pessoas,
		Timestamp: time.Now(),
	})
}

// Aniversariantes serves the current-month birthday report
// @Summary Current-month birthdays
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AniversariantesResponse}
// @Router /relatorio-aniversariantes [get]
func (c *ReportController) Aniversariantes(ctx *gin.Context) {
	mes := int(time.Now().Month())

	aniversariantes, err := c.reportService.BirthdaysInMonth(ctx, mes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AniversariantesResponse{
			Mes:             mes,
			Aniversariantes: aniversariantes,
		},
		Timestamp: time.Now(),
	})
}

// PorTempo serves the years-enrolled report. Without the tempo parameter
// the full list comes back unfiltered.
// @Summary Years-enrolled report
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Param tempo query int false "Exact number of years since enrollment"
// @Success 200 {object} dto.APIResponse{data=dto.RelatorioPorTempoResponse}
// @Failure 400 {object} dto.ErrorResponse "Non-numeric tempo"
// @Router /relatorio-por-tempo [get]
func (c *ReportController) PorTempo(ctx *gin.Context) {
	var tempo *int
	if tempoStr := ctx.Query("tempo"); tempoStr != "" {
		t, err := strconv.Atoi(tempoStr)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("tempo must be a number"))
			return
		}
		tempo = &t
	}

	pessoas, err := c.reportService.ByYearsEnrolled(ctx, time.Now().Year(), tempo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.RelatorioPorTempoResponse{
			Tempo:   tempo,
			Pessoas: pessoas,
		},
		Timestamp: time.Now(),
	})
}

// Graficos serves class labels and counts for the bar chart
// @Summary Class count chart data
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GraficoResponse}
// @Router /graficos [get]
func (c *ReportController) Graficos(ctx *gin.Context) {
	labels, valores, err := c.reportService.ClasseCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.GraficoResponse{
			Labels:  labels,
			Valores: valores,
			Usuario: currentLogin(ctx, c.authService),
		},
		Timestamp: time.Now(),
	})
}
