package rollup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/rollup/mocks"
	"go.uber.org/mock/gomock"
)

func intRef(v int) *int {
	return &v
}

func strRef(s string) *string {
	return &s
}

var marchFields = domain.PeriodFields{Year: intRef(2026), Month: intRef(3)}

func TestService_RollupExecutions(t *testing.T) {
	ctx := context.Background()

	t.Run("Soma os membros na ordem do grupo e ignora quem não tem registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockOwnerDirectory(ctrl)
		execs := mocks.NewMockExecutionReader(ctrl)

		directory.EXPECT().GetGroupMembers(ctx, 3).Return([]int{10, 11, 12}, nil)
		execs.EXPECT().GetExecutionByPeriod(ctx, domain.GranularityMonth, marchFields, 10).
			Return([]*domain.Execution{{Metrics: domain.Metrics{Income: domain.Income{Amount: 40}}}}, nil)
		execs.EXPECT().GetExecutionByPeriod(ctx, domain.GranularityMonth, marchFields, 11).
			Return([]*domain.Execution{}, nil)
		execs.EXPECT().GetExecutionByPeriod(ctx, domain.GranularityMonth, marchFields, 12).
			Return([]*domain.Execution{{Metrics: domain.Metrics{
				Income:        domain.Income{Amount: 60},
				Qualification: domain.Qualification{EnglishHours: 2},
			}}}, nil)
		directory.EXPECT().GetDisplayName(ctx, 10).Return("Ana Souza", nil)
		directory.EXPECT().GetDisplayName(ctx, 12).Return("Bruno Lima", nil)

		service := NewService(directory, mocks.NewMockPlanReader(ctrl), execs, 4)
		result, err := service.RollupExecutions(ctx, 3, domain.GranularityMonth, marchFields)

		require.NoError(t, err)
		require.Len(t, result.Members, 2)
		assert.Equal(t, 10, result.Members[0].OwnerID)
		assert.Equal(t, "Ana Souza", result.Members[0].DisplayName)
		assert.Equal(t, 12, result.Members[1].OwnerID)
		assert.Equal(t, 100.0, result.Total.Income.Amount)
		assert.Equal(t, 2.0, result.Total.Qualification.EnglishHours)
		assert.Equal(t, domain.MonthKey{Year: 2026, Quarter: 1, Month: 3}, result.Period)
	})

	t.Run("Grupo inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockOwnerDirectory(ctrl)
		directory.EXPECT().GetGroupMembers(ctx, 99).
			Return(nil, domain.NewTrackingError(domain.ErrNotFound, "GROUP_001", "grupo 99"))

		service := NewService(directory, mocks.NewMockPlanReader(ctrl), mocks.NewMockExecutionReader(ctrl), 4)
		_, err := service.RollupExecutions(ctx, 99, domain.GranularityMonth, marchFields)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Período inválido é rejeitado antes de resolver o grupo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockOwnerDirectory(ctrl), mocks.NewMockPlanReader(ctrl), mocks.NewMockExecutionReader(ctrl), 4)
		_, err := service.RollupExecutions(ctx, 3, domain.GranularityDay, domain.PeriodFields{Date: strRef("2026-13-01")})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Erro de leitura de um membro é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockOwnerDirectory(ctrl)
		execs := mocks.NewMockExecutionReader(ctrl)

		directory.EXPECT().GetGroupMembers(ctx, 3).Return([]int{10}, nil)
		execs.EXPECT().GetExecutionByPeriod(ctx, domain.GranularityMonth, marchFields, 10).
			Return(nil, errors.New("conexão perdida"))

		service := NewService(directory, mocks.NewMockPlanReader(ctrl), execs, 4)
		_, err := service.RollupExecutions(ctx, 3, domain.GranularityMonth, marchFields)

		assert.Error(t, err)
	})
}

func TestService_RollupPlans(t *testing.T) {
	ctx := context.Background()

	t.Run("DAY soma todos os planos da semana do membro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fields := domain.PeriodFields{Date: strRef("2026-03-02")}
		directory := mocks.NewMockOwnerDirectory(ctrl)
		plans := mocks.NewMockPlanReader(ctrl)

		directory.EXPECT().GetGroupMembers(ctx, 3).Return([]int{10}, nil)
		plans.EXPECT().GetPlanByPeriod(ctx, domain.GranularityDay, fields, 10).Return([]*domain.Plan{
			{Metrics: domain.Metrics{Bidding: domain.Bidding{BidCount: 2}}},
			{Metrics: domain.Metrics{Bidding: domain.Bidding{BidCount: 3}}},
		}, nil)
		directory.EXPECT().GetDisplayName(ctx, 10).Return("Ana Souza", nil)

		service := NewService(directory, plans, mocks.NewMockExecutionReader(ctrl), 4)
		result, err := service.RollupPlans(ctx, 3, domain.GranularityDay, fields)

		require.NoError(t, err)
		require.Len(t, result.Members, 1)
		assert.Equal(t, 2, result.Members[0].Records)
		assert.Equal(t, 5.0, result.Total.Bidding.BidCount)
	})

	t.Run("Grupo sem membros retorna total zerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		directory := mocks.NewMockOwnerDirectory(ctrl)
		directory.EXPECT().GetGroupMembers(ctx, 3).Return([]int{}, nil)

		service := NewService(directory, mocks.NewMockPlanReader(ctrl), mocks.NewMockExecutionReader(ctrl), 4)
		result, err := service.RollupPlans(ctx, 3, domain.GranularityMonth, marchFields)

		require.NoError(t, err)
		assert.Empty(t, result.Members)
		assert.Equal(t, domain.Metrics{}, result.Total)
	})

	t.Run("QUARTER não possui planos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockOwnerDirectory(ctrl), mocks.NewMockPlanReader(ctrl), mocks.NewMockExecutionReader(ctrl), 4)
		_, err := service.RollupPlans(ctx, 3, domain.GranularityQuarter, domain.PeriodFields{Year: intRef(2026), Quarter: intRef(1)})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_RollupLimitsConcurrentMembers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := []int{1, 2, 3, 4, 5, 6, 7, 8}
	directory := mocks.NewMockOwnerDirectory(ctrl)
	execs := mocks.NewMockExecutionReader(ctrl)

	directory.EXPECT().GetGroupMembers(ctx, 5).Return(members, nil)
	directory.EXPECT().GetDisplayName(ctx, gomock.Any()).Return("membro", nil).Times(len(members))

	var inFlight, peak int32
	execs.EXPECT().GetExecutionByPeriod(ctx, domain.GranularityMonth, marchFields, gomock.Any()).
		DoAndReturn(func(context.Context, domain.Granularity, domain.PeriodFields, int) ([]*domain.Execution, error) {
			current := atomic.AddInt32(&inFlight, 1)
			for {
				seen := atomic.LoadInt32(&peak)
				if current <= seen || atomic.CompareAndSwapInt32(&peak, seen, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)

			return []*domain.Execution{{Metrics: domain.Metrics{Income: domain.Income{Amount: 1}}}}, nil
		}).Times(len(members))

	service := NewService(directory, mocks.NewMockPlanReader(ctrl), execs, 2)
	result, err := service.RollupExecutions(ctx, 5, domain.GranularityMonth, marchFields)

	require.NoError(t, err)
	assert.Len(t, result.Members, len(members))
	assert.Equal(t, 8.0, result.Total.Income.Amount)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}
