package accumulating

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/plan-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

var (
	dayKey = domain.DayKey{
		Year:    2026,
		Quarter: 1,
		Month:   3,
		Week:    1,
		Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	weekKey    = domain.WeekKey{Year: 2026, Quarter: 1, Month: 3, Week: 1}
	monthKey   = domain.MonthKey{Year: 2026, Quarter: 1, Month: 3}
	quarterKey = domain.QuarterKey{Year: 2026, Quarter: 1}
	yearKey    = domain.YearKey{Year: 2026}
)

func income(v float64) domain.Metrics {
	return domain.Metrics{Income: domain.Income{Amount: v}}
}

func execOf(id string, key domain.PeriodKey, amount float64) *domain.Execution {
	return &domain.Execution{ID: id, Type: key.Granularity(), Key: key, Owner: 7, Metrics: income(amount)}
}

func TestEngine_AccumulateDailyToWeekly(t *testing.T) {
	ctx := context.Background()
	day := execOf("day-1", dayKey, 10)

	t.Run("Soma todos os dias da semana", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := mocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().FindByPeriod(ctx, weekKey, 7).Return(execOf("week-1", weekKey, 0), nil)
		execs.EXPECT().ListChildren(ctx, weekKey, 7).Return([]*domain.Execution{
			execOf("d1", dayKey, 10),
			execOf("d2", dayKey, 20),
			{ID: "d3", Type: domain.GranularityDay, Key: dayKey, Owner: 7},
			execOf("d4", dayKey, 5),
		}, nil)
		execs.EXPECT().UpdateMetrics(ctx, "week-1", income(35)).Return(nil)

		engine := NewEngine(execs, metrics.NewNopCascadeMetrics())
		week, err := engine.AccumulateDailyToWeekly(ctx, day)

		require.NoError(t, err)
		assert.Equal(t, 35.0, week.Metrics.Income.Amount)
	})

	t.Run("Semana inexistente interrompe sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		registry := prometheus.NewRegistry()
		execs := mocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().FindByPeriod(ctx, weekKey, 7).Return(nil, nil)

		engine := NewEngine(execs, metrics.NewCascadeMetrics(registry))
		week, err := engine.AccumulateDailyToWeekly(ctx, day)

		require.NoError(t, err)
		assert.Nil(t, week)

		expected := `
# HELP plan_tracker_cascade_halts_total Cascatas interrompidas por ausência do registro ancestral.
# TYPE plan_tracker_cascade_halts_total counter
plan_tracker_cascade_halts_total{level="WEEK"} 1
`
		assert.NoError(t, promtest.GatherAndCompare(registry, strings.NewReader(expected), "plan_tracker_cascade_halts_total"))
	})

	t.Run("Tipo errado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine := NewEngine(mocks.NewMockExecutionRepository(ctrl), nil)
		_, err := engine.AccumulateDailyToWeekly(ctx, execOf("week-1", weekKey, 0))

		assert.Error(t, err)
	})
}

func TestEngine_AccumulateWeeklyToMonthly_CreatesMissingMonth(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := prometheus.NewRegistry()
	execs := mocks.NewMockExecutionRepository(ctrl)
	execs.EXPECT().ListChildren(ctx, monthKey, 7).Return([]*domain.Execution{
		execOf("w1", weekKey, 40),
		execOf("w2", weekKey, 15),
	}, nil)
	execs.EXPECT().UpsertMetrics(ctx, monthKey, 7, income(55)).Return(execOf("month-1", monthKey, 55), true, nil)

	engine := NewEngine(execs, metrics.NewCascadeMetrics(registry))
	month, err := engine.AccumulateWeeklyToMonthly(ctx, execOf("w1", weekKey, 40))

	require.NoError(t, err)
	assert.Equal(t, monthKey, month.Key)

	expected := `
# HELP plan_tracker_cascade_steps_total Passos da cascata de acumulação por nível e resultado.
# TYPE plan_tracker_cascade_steps_total counter
plan_tracker_cascade_steps_total{level="MONTH",outcome="created"} 1
`
	assert.NoError(t, promtest.GatherAndCompare(registry, strings.NewReader(expected), "plan_tracker_cascade_steps_total"))
}

func TestEngine_RollUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	months := []*domain.Execution{execOf("m1", monthKey, 40), execOf("m2", monthKey, 60)}

	execs := mocks.NewMockExecutionRepository(ctrl)
	execs.EXPECT().ListChildren(ctx, quarterKey, 7).Return(months, nil).Times(2)
	execs.EXPECT().UpsertMetrics(ctx, quarterKey, 7, income(100)).Return(execOf("q1", quarterKey, 100), false, nil).Times(2)

	engine := NewEngine(execs, nil)
	for i := 0; i < 2; i++ {
		quarter, err := engine.AccumulateMonthlyToQuarterly(ctx, months[0])
		require.NoError(t, err)
		assert.Equal(t, 100.0, quarter.Metrics.Income.Amount)
	}
}

func TestEngine_TriggerAccumulationCascade(t *testing.T) {
	ctx := context.Background()

	t.Run("Percorre os quatro níveis em ordem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := mocks.NewMockExecutionRepository(ctrl)
		gomock.InOrder(
			execs.EXPECT().FindByPeriod(ctx, weekKey, 7).Return(execOf("week-1", weekKey, 0), nil),
			execs.EXPECT().ListChildren(ctx, weekKey, 7).Return([]*domain.Execution{execOf("day-1", dayKey, 40)}, nil),
			execs.EXPECT().UpdateMetrics(ctx, "week-1", income(40)).Return(nil),
			execs.EXPECT().ListChildren(ctx, monthKey, 7).Return([]*domain.Execution{execOf("week-1", weekKey, 40)}, nil),
			execs.EXPECT().UpsertMetrics(ctx, monthKey, 7, income(40)).Return(execOf("month-1", monthKey, 40), false, nil),
			execs.EXPECT().ListChildren(ctx, quarterKey, 7).Return([]*domain.Execution{execOf("month-1", monthKey, 40)}, nil),
			execs.EXPECT().UpsertMetrics(ctx, quarterKey, 7, income(40)).Return(execOf("q-1", quarterKey, 40), false, nil),
			execs.EXPECT().ListChildren(ctx, yearKey, 7).Return([]*domain.Execution{execOf("q-1", quarterKey, 40)}, nil),
			execs.EXPECT().UpsertMetrics(ctx, yearKey, 7, income(40)).Return(execOf("y-1", yearKey, 40), false, nil),
		)

		engine := NewEngine(execs, metrics.NewNopCascadeMetrics())
		assert.NoError(t, engine.TriggerAccumulationCascade(ctx, execOf("day-1", dayKey, 40)))
	})

	t.Run("Falha em um nível para a cascata e propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := mocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().FindByPeriod(ctx, weekKey, 7).Return(execOf("week-1", weekKey, 0), nil)
		execs.EXPECT().ListChildren(ctx, weekKey, 7).Return([]*domain.Execution{execOf("day-1", dayKey, 40)}, nil)
		execs.EXPECT().UpdateMetrics(ctx, "week-1", income(40)).Return(errors.New("conexão perdida"))

		engine := NewEngine(execs, metrics.NewNopCascadeMetrics())
		assert.Error(t, engine.TriggerAccumulationCascade(ctx, execOf("day-1", dayKey, 40)))
	})
}

func TestEngine_AccumulateFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("QUARTER sobe apenas para o ano", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		execs := mocks.NewMockExecutionRepository(ctrl)
		execs.EXPECT().ListChildren(ctx, yearKey, 7).Return([]*domain.Execution{execOf("q-1", quarterKey, 70)}, nil)
		execs.EXPECT().UpsertMetrics(ctx, yearKey, 7, income(70)).Return(execOf("y-1", yearKey, 70), false, nil)

		engine := NewEngine(execs, nil)
		assert.NoError(t, engine.AccumulateFrom(ctx, execOf("q-1", quarterKey, 70)))
	})

	t.Run("YEAR não tem pai", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine := NewEngine(mocks.NewMockExecutionRepository(ctrl), nil)
		assert.NoError(t, engine.AccumulateFrom(ctx, execOf("y-1", yearKey, 70)))
	})
}
