package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/plan-tracker-api/internal/config"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/period"
	"github.com/vfg2006/plan-tracker-api/internal/testutil"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/accumulating"
)

func reconcileConfig(enabled bool) *config.Config {
	return &config.Config{
		CascadeReconcile: config.CascadeReconcile{
			CronSchedule:      "30 2 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 2,
			Enabled:           enabled,
		},
	}
}

func seedDay(t *testing.T, store *testutil.Store, owner int, date time.Time, amount float64) *domain.Execution {
	t.Helper()
	key := domain.DayKeyOf(period.Resolve(date))
	exec := &domain.Execution{
		Type:    domain.GranularityDay,
		Key:     key,
		Owner:   owner,
		Metrics: domain.Metrics{Income: domain.Income{Amount: amount}},
	}
	require.NoError(t, store.Executions().Create(context.Background(), exec))
	return exec
}

type failingCascade struct{}

func (failingCascade) TriggerAccumulationCascade(context.Context, *domain.Execution) error {
	return errors.New("falha no banco")
}

func TestCascadeReconcileService_RunOnceRebuildsStaleAncestors(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	executions := store.Executions()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	dayKey := domain.DayKeyOf(period.Resolve(day))
	weekKey, _ := dayKey.Parent()
	monthKey, _ := weekKey.Parent()
	quarterKey, _ := monthKey.Parent()
	yearKey, _ := quarterKey.Parent()

	require.NoError(t, executions.EnsurePlaceholders(ctx, []domain.PeriodKey{yearKey, quarterKey, monthKey, weekKey}, 7))
	seedDay(t, store, 7, day, 40)
	seedDay(t, store, 7, day.AddDate(0, 0, 1), 10)

	old := seedDay(t, store, 7, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), 99)
	store.Touch(old.ID, time.Now().AddDate(0, 0, -30))

	engine := accumulating.NewEngine(executions, nil)
	service := NewCascadeReconcileService(executions, engine, reconcileConfig(true))

	result, err := service.RunOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Weeks)
	assert.Equal(t, 0, result.Failed)
	for _, key := range []domain.PeriodKey{weekKey, monthKey, quarterKey, yearKey} {
		exec := store.Execution(key, 7)
		require.NotNil(t, exec)
		assert.Equal(t, 50.0, exec.Metrics.Income.Amount, key.String())
	}

	again, err := service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, 50.0, store.Execution(yearKey, 7).Metrics.Income.Amount)
}

func TestCascadeReconcileService_CountsFailures(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()

	seedDay(t, store, 7, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 40)
	seedDay(t, store, 8, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 15)

	service := NewCascadeReconcileService(store.Executions(), failingCascade{}, reconcileConfig(true))

	result, err := service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, ReconcileResult{Weeks: 2, Failed: 2}, result)
}

func TestCascadeReconcileService_StartDisabled(t *testing.T) {
	store := testutil.NewStore()
	service := NewCascadeReconcileService(store.Executions(), failingCascade{}, reconcileConfig(false))

	assert.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, 7, status["sync_lookback_days"])
}

func TestCascadeReconcileService_StartRejectsInvalidCron(t *testing.T) {
	store := testutil.NewStore()
	cfg := reconcileConfig(true)
	cfg.CascadeReconcile.CronSchedule = "não é cron"

	service := NewCascadeReconcileService(store.Executions(), failingCascade{}, cfg)

	assert.Error(t, service.Start(context.Background()))
}
