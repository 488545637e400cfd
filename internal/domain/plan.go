package domain

import (
	"time"
)

// Plan é a meta de um dono para um período MONTH, WEEK ou DAY
type Plan struct {
	ID   string      `json:"id"`
	Type Granularity `json:"type"`
	Key  PeriodKey   `json:"period"`
	// ParentPlanID aponta para o plano que contém este; definido na criação e nunca alterado
	ParentPlanID *string   `json:"parentPlanId,omitempty"`
	Owner        int       `json:"owner"`
	Metrics      Metrics   `json:"metrics"`
	Deleted      bool      `json:"deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Date retorna a data do plano diário (zero para os demais tipos)
func (p *Plan) Date() time.Time {
	if day, ok := p.Key.(DayKey); ok {
		return day.Date
	}
	return time.Time{}
}

// CreatePlanInput são os dados de criação de um plano
type CreatePlanInput struct {
	Type    Granularity
	Fields  PeriodFields
	Owner   int
	Metrics Metrics
}
