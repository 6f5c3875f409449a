package dto

import "github.com/ebdapp/cadastro/internal/app/models"

// ClasseGroup is one class bucket of the grouped report, members sorted by name
type ClasseGroup struct {
	Classe  string           `json:"classe"`
	Pessoas []*models.Pessoa `json:"pessoas"`
}

// RelatorioPorClasseResponse is the payload for the grouped-by-class report
type RelatorioPorClasseResponse struct {
	Grupos []ClasseGroup `json:"grupos"`
}

// Aniversariante is one row of the birthday report, with the display-formatted date
type Aniversariante struct {
	*models.Pessoa
	NascimentoFormatado string `json:"nascimentoFormatado" example:"15/03/2010"`
}

// AniversariantesResponse is the payload for the current-month birthday report
type AniversariantesResponse struct {
	Mes             int               `json:"mes"`
	Aniversariantes []*Aniversariante `json:"aniversariantes"`
}

// RelatorioPorTempoResponse is the payload for the years-enrolled report
type RelatorioPorTempoResponse struct {
	Tempo   *int             `json:"tempo,omitempty"`
	Pessoas []*models.Pessoa `json:"pessoas"`
}

// GraficoResponse carries class labels and counts for the bar chart
type GraficoResponse struct {
	Labels  []string `json:"labels"`
	Valores []int64  `json:"valores"`
	Usuario string   `json:"usuario"`
}
