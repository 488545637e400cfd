package completion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		planned  float64
		actual   float64
		expected float64
	}{
		{name: "Meta zero com realizado positivo vale 100", planned: 0, actual: 5, expected: 100},
		{name: "Meta zero sem realizado vale 0", planned: 0, actual: 0, expected: 0},
		{name: "Meta negativa com realizado positivo vale 100", planned: -3, actual: 1, expected: 100},
		{name: "Realizado negativo vale 0", planned: 10, actual: -1, expected: 0},
		{name: "Proporção simples", planned: 40, actual: 10, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ratio(tt.planned, tt.actual))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		plan      domain.Metrics
		execution domain.Metrics
		expected  float64
	}{
		{
			name:      "Receita acima da meta encerra o cálculo",
			plan:      domain.Metrics{Income: domain.Income{Amount: 100}, Acquisition: domain.Acquisition{CallNumber: 50}},
			execution: domain.Metrics{Income: domain.Income{Amount: 150}},
			expected:  150,
		},
		{
			name:      "Receita exatamente na meta também encerra",
			plan:      domain.Metrics{Income: domain.Income{Amount: 80}},
			execution: domain.Metrics{Income: domain.Income{Amount: 80}},
			expected:  100,
		},
		{
			name: "Média ponderada dos quatro grupos",
			plan: domain.Metrics{
				Income:        domain.Income{Amount: 100},
				Bidding:       domain.Bidding{OfferedJobAmount: 10, OfferedTotalBudget: 10},
				Acquisition:   domain.Acquisition{CallNumber: 10, AcquiredPeopleAmount: 10},
				Qualification: domain.Qualification{MajorHours: 10, EnglishHours: 10},
			},
			execution: domain.Metrics{
				Income:        domain.Income{Amount: 50},
				Bidding:       domain.Bidding{OfferedJobAmount: 10, OfferedTotalBudget: 0},
				Acquisition:   domain.Acquisition{CallNumber: 5, AcquiredPeopleAmount: 5},
				Qualification: domain.Qualification{MajorHours: 10, EnglishHours: 10},
			},
			// (5*50 + 2*50 + 2*50 + 1*100) / 10
			expected: 55,
		},
		{
			name:      "Sem meta e sem realizado",
			plan:      domain.Metrics{},
			execution: domain.Metrics{},
			expected:  0,
		},
		{
			name:      "Metas zeradas com realizado positivo contam 100 por campo",
			plan:      domain.Metrics{Income: domain.Income{Amount: 10}},
			execution: domain.Metrics{Income: domain.Income{Amount: 5}, Qualification: domain.Qualification{MajorHours: 1}},
			// (5*50 + 1*50) / 10
			expected: 30,
		},
		{
			name:      "Campos com NaN contam como zero",
			plan:      domain.Metrics{Income: domain.Income{Amount: math.NaN()}},
			execution: domain.Metrics{Income: domain.Income{Amount: math.NaN()}},
			expected:  0,
		},
		{
			name:      "Arredonda para duas casas",
			plan:      domain.Metrics{Income: domain.Income{Amount: 3}},
			execution: domain.Metrics{Income: domain.Income{Amount: 1}},
			// 5 * 33.333... / 10
			expected: 16.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentage(tt.plan, tt.execution))
		})
	}
}
