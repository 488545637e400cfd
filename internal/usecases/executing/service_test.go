package executing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/plan-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/executing/mocks"
	"go.uber.org/mock/gomock"
)

func intRef(v int) *int {
	return &v
}

func strRef(s string) *string {
	return &s
}

func floatRef(v float64) *float64 {
	return &v
}

func TestService_CreateExecution(t *testing.T) {
	ctx := context.Background()
	weekKey := domain.WeekKey{Year: 2026, Quarter: 1, Month: 3, Week: 1}

	tests := []struct {
		name        string
		input       domain.CreateExecutionInput
		setup       func(execs *repomocks.MockExecutionRepository, cascader *mocks.MockCascader)
		expectedErr error
		validate    func(t *testing.T, exec *domain.Execution)
	}{
		{
			name: "Execução diária dispara a cascata completa",
			input: domain.CreateExecutionInput{
				Type:    domain.GranularityDay,
				Fields:  domain.PeriodFields{Date: strRef("2026-03-02")},
				Owner:   7,
				Metrics: domain.Metrics{Income: domain.Income{Amount: 40}},
			},
			setup: func(execs *repomocks.MockExecutionRepository, cascader *mocks.MockCascader) {
				execs.EXPECT().FindByPeriod(ctx, gomock.Any(), 7).Return(nil, nil)
				execs.EXPECT().Create(ctx, gomock.Any()).Return(nil)
				cascader.EXPECT().TriggerAccumulationCascade(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, day *domain.Execution) error {
						assert.Equal(t, "DAY:2026-03-02", day.Key.String())
						return nil
					})
			},
			validate: func(t *testing.T, exec *domain.Execution) {
				assert.Equal(t, domain.GranularityDay, exec.Type)
				assert.Len(t, exec.ID, 12)
				assert.Equal(t, 40.0, exec.Metrics.Income.Amount)
			},
		},
		{
			name: "Erro na cascata não altera o resultado da criação",
			input: domain.CreateExecutionInput{
				Type:   domain.GranularityDay,
				Fields: domain.PeriodFields{Date: strRef("2026-03-03")},
				Owner:  7,
			},
			setup: func(execs *repomocks.MockExecutionRepository, cascader *mocks.MockCascader) {
				execs.EXPECT().FindByPeriod(ctx, gomock.Any(), 7).Return(nil, nil)
				execs.EXPECT().Create(ctx, gomock.Any()).Return(nil)
				cascader.EXPECT().TriggerAccumulationCascade(gomock.Any(), gomock.Any()).Return(errors.New("falha no banco"))
			},
			validate: func(t *testing.T, exec *domain.Execution) {
				assert.NotNil(t, exec)
			},
		},
		{
			name: "Execução semanal não dispara cascata",
			input: domain.CreateExecutionInput{
				Type:   domain.GranularityWeek,
				Fields: domain.PeriodFields{Year: intRef(2026), Month: intRef(3), Week: intRef(1)},
				Owner:  7,
			},
			setup: func(execs *repomocks.MockExecutionRepository, cascader *mocks.MockCascader) {
				execs.EXPECT().FindByPeriod(ctx, weekKey, 7).Return(nil, nil)
				execs.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, exec *domain.Execution) {
				assert.Equal(t, weekKey, exec.Key)
			},
		},
		{
			name: "Período já registrado gera conflito",
			input: domain.CreateExecutionInput{
				Type:   domain.GranularityWeek,
				Fields: domain.PeriodFields{Year: intRef(2026), Month: intRef(3), Week: intRef(1)},
				Owner:  7,
			},
			setup: func(execs *repomocks.MockExecutionRepository, cascader *mocks.MockCascader) {
				execs.EXPECT().FindByPeriod(ctx, weekKey, 7).Return(&domain.Execution{ID: "exec-1", Key: weekKey, Owner: 7}, nil)
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Data inválida é rejeitada antes do banco",
			input: domain.CreateExecutionInput{
				Type:   domain.GranularityDay,
				Fields: domain.PeriodFields{Date: strRef("2026-02-30")},
				Owner:  7,
			},
			setup:       func(execs *repomocks.MockExecutionRepository, cascader *mocks.MockCascader) {},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			execs := repomocks.NewMockExecutionRepository(ctrl)
			cascader := mocks.NewMockCascader(ctrl)
			tt.setup(execs, cascader)

			service := NewService(execs, cascader)
			exec, err := service.CreateExecution(ctx, tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, exec)
				return
			}

			require.NoError(t, err)
			tt.validate(t, exec)
		})
	}
}

func TestService_CreateExecution_CascadeIgnoresClientCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	execs := repomocks.NewMockExecutionRepository(ctrl)
	cascader := mocks.NewMockCascader(ctrl)

	execs.EXPECT().FindByPeriod(ctx, gomock.Any(), 7).Return(nil, nil)
	execs.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	cascader.EXPECT().TriggerAccumulationCascade(gomock.Any(), gomock.Any()).
		DoAndReturn(func(cascadeCtx context.Context, _ *domain.Execution) error {
			assert.NoError(t, cascadeCtx.Err())
			return nil
		})

	service := NewService(execs, cascader)
	_, err := service.CreateExecution(ctx, domain.CreateExecutionInput{
		Type:   domain.GranularityDay,
		Fields: domain.PeriodFields{Date: strRef("2026-03-02")},
		Owner:  7,
	})
	require.NoError(t, err)
}

func TestService_UpdateExecution(t *testing.T) {
	ctx := context.Background()
	monthKey := domain.MonthKey{Year: 2026, Quarter: 1, Month: 3}

	t.Run("Mescla os campos e sobe um nível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := repomocks.NewMockExecutionRepository(ctrl)
		cascader := mocks.NewMockCascader(ctrl)

		current := &domain.Execution{
			ID:    "exec-1",
			Type:  domain.GranularityMonth,
			Key:   monthKey,
			Owner: 7,
			Metrics: domain.Metrics{
				Income:  domain.Income{Amount: 100},
				Bidding: domain.Bidding{BidCount: 3},
			},
		}

		execs.EXPECT().GetByID(ctx, "exec-1").Return(current, nil)
		execs.EXPECT().UpdateMetrics(ctx, "exec-1", domain.Metrics{
			Income:  domain.Income{Amount: 100},
			Bidding: domain.Bidding{BidCount: 5},
		}).Return(nil)
		cascader.EXPECT().AccumulateFrom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, exec *domain.Execution) error {
				assert.Equal(t, domain.GranularityMonth, exec.Type)
				assert.Equal(t, 5.0, exec.Metrics.Bidding.BidCount)
				return nil
			})

		service := NewService(execs, cascader)
		exec, err := service.UpdateExecution(ctx, "exec-1", 7, domain.MetricsPatch{BidCount: floatRef(5)})

		require.NoError(t, err)
		assert.Equal(t, 100.0, exec.Metrics.Income.Amount)
		assert.Equal(t, 5.0, exec.Metrics.Bidding.BidCount)
	})

	t.Run("Execução de outro dono é tratada como inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := repomocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().GetByID(ctx, "exec-1").Return(&domain.Execution{ID: "exec-1", Key: monthKey, Owner: 8}, nil)

		service := NewService(execs, mocks.NewMockCascader(ctrl))
		exec, err := service.UpdateExecution(ctx, "exec-1", 7, domain.MetricsPatch{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, exec)
	})

	t.Run("Id inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := repomocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		service := NewService(execs, mocks.NewMockCascader(ctrl))
		_, err := service.UpdateExecution(ctx, "missing", 7, domain.MetricsPatch{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_GetExecutionByPeriod(t *testing.T) {
	ctx := context.Background()
	weekKey := domain.WeekKey{Year: 2026, Quarter: 1, Month: 3, Week: 1}
	monthKey := domain.MonthKey{Year: 2026, Quarter: 1, Month: 3}

	t.Run("DAY retorna todos os dias da semana", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		days := []*domain.Execution{{ID: "d1"}, {ID: "d2"}}
		execs := repomocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().ListChildren(ctx, weekKey, 7).Return(days, nil)

		service := NewService(execs, mocks.NewMockCascader(ctrl))
		result, err := service.GetExecutionByPeriod(ctx, domain.GranularityDay, domain.PeriodFields{Date: strRef("2026-03-04")}, 7)

		require.NoError(t, err)
		assert.Equal(t, days, result)
	})

	t.Run("MONTH sem registro retorna lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := repomocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().FindByPeriod(ctx, monthKey, 7).Return(nil, nil)

		service := NewService(execs, mocks.NewMockCascader(ctrl))
		result, err := service.GetExecutionByPeriod(ctx, domain.GranularityMonth, domain.PeriodFields{Year: intRef(2026), Month: intRef(3)}, 7)

		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := repomocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().FindByPeriod(ctx, monthKey, 7).Return(nil, errors.New("conexão perdida"))

		service := NewService(execs, mocks.NewMockCascader(ctrl))
		_, err := service.GetExecutionByPeriod(ctx, domain.GranularityMonth, domain.PeriodFields{Year: intRef(2026), Month: intRef(3)}, 7)

		assert.Error(t, err)
	})
}
