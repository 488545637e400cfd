package completion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/plan-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intRef(v int) *int {
	return &v
}

func TestService_CompletionByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockPlanRepository(ctrl)
	mockExecRepo := mocks.NewMockExecutionRepository(ctrl)
	service := NewService(mockPlanRepo, mockExecRepo)

	ctx := context.Background()
	fields := domain.PeriodFields{Year: intRef(2026), Month: intRef(3)}
	key := domain.MonthKey{Year: 2026, Quarter: 1, Month: 3}

	t.Run("Combina plano e execução do mês", func(t *testing.T) {
		mockPlanRepo.EXPECT().FindByPeriod(ctx, key, 7).Return(&domain.Plan{
			Metrics: domain.Metrics{Income: domain.Income{Amount: 100}},
		}, nil)
		mockExecRepo.EXPECT().FindByPeriod(ctx, key, 7).Return(&domain.Execution{
			Metrics: domain.Metrics{Income: domain.Income{Amount: 150}},
		}, nil)

		result, err := service.CompletionByPeriod(ctx, domain.GranularityMonth, fields, 7)
		require.NoError(t, err)

		assert.True(t, result.HasPlan)
		assert.True(t, result.HasActual)
		assert.Equal(t, 150.0, result.Percentage)
		assert.Equal(t, key, result.Period)
	})

	t.Run("Sem plano e sem execução resulta em zero", func(t *testing.T) {
		mockPlanRepo.EXPECT().FindByPeriod(ctx, key, 7).Return(nil, nil)
		mockExecRepo.EXPECT().FindByPeriod(ctx, key, 7).Return(nil, nil)

		result, err := service.CompletionByPeriod(ctx, domain.GranularityMonth, fields, 7)
		require.NoError(t, err)

		assert.False(t, result.HasPlan)
		assert.False(t, result.HasActual)
		assert.Equal(t, 0.0, result.Percentage)
	})

	t.Run("Tipo sem planos é rejeitado antes do banco", func(t *testing.T) {
		_, err := service.CompletionByPeriod(ctx, domain.GranularityYear, domain.PeriodFields{Year: intRef(2026)}, 7)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
