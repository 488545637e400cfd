package domain

import (
	"time"
)

// Execution é o realizado de um dono para um período em qualquer uma das cinco granularidades.
// Apenas DAY é informado pelo cliente; os demais níveis são a soma dos filhos.
type Execution struct {
	ID        string      `json:"id"`
	Type      Granularity `json:"type"`
	Key       PeriodKey   `json:"period"`
	Owner     int         `json:"owner"`
	Metrics   Metrics     `json:"metrics"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Date retorna a data da execução diária (zero para os demais tipos)
func (e *Execution) Date() time.Time {
	if day, ok := e.Key.(DayKey); ok {
		return day.Date
	}
	return time.Time{}
}

// CreateExecutionInput são os dados de criação de uma execução
type CreateExecutionInput struct {
	Type    Granularity
	Fields  PeriodFields
	Owner   int
	Metrics Metrics
}

// Completion compara o plano com a execução do mesmo período
type Completion struct {
	Type       Granularity `json:"type"`
	Period     PeriodKey   `json:"period"`
	Plan       Metrics     `json:"plan"`
	Execution  Metrics     `json:"execution"`
	Percentage float64     `json:"percentage"`
	HasPlan    bool        `json:"has_plan"`
	HasActual  bool        `json:"has_execution"`
}
