package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/plan-tracker-api/internal/config"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
)

// RecentDailyLister lista um registro diário por (dono, semana) alterado desde since
type RecentDailyLister interface {
	ListDailyWeeksUpdatedSince(ctx context.Context, since time.Time) ([]*domain.Execution, error)
}

type CascadeTrigger interface {
	TriggerAccumulationCascade(ctx context.Context, day *domain.Execution) error
}

type CascadeReconcileConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	Enabled           bool
}

// ReconcileResult resume uma rodada de reconciliação
type ReconcileResult struct {
	Weeks  int `json:"weeks"`
	Failed int `json:"failed"`
}

// CascadeReconcileService refaz a cascata das semanas com registros diários recentes.
// Como cada passo soma de novo os filhos, rodar mais de uma vez não altera o resultado.
type CascadeReconcileService struct {
	scheduler *gocron.Scheduler
	config    CascadeReconcileConfig
	lister    RecentDailyLister
	cascade   CascadeTrigger
	now       func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          ReconcileResult
}

func NewCascadeReconcileService(lister RecentDailyLister, cascade CascadeTrigger, appConfig *config.Config) *CascadeReconcileService {
	reconcileConfig := CascadeReconcileConfig{
		CronSchedule:      appConfig.CascadeReconcile.CronSchedule,
		LookbackDays:      appConfig.CascadeReconcile.LookbackDays,
		MaxConcurrentJobs: appConfig.CascadeReconcile.MaxConcurrentJobs,
		Enabled:           appConfig.CascadeReconcile.Enabled,
	}
	if reconcileConfig.MaxConcurrentJobs <= 0 {
		reconcileConfig.MaxConcurrentJobs = 1
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       reconcileConfig.CronSchedule,
		"lookback_days":       reconcileConfig.LookbackDays,
		"max_concurrent_jobs": reconcileConfig.MaxConcurrentJobs,
		"enabled":             reconcileConfig.Enabled,
	}).Info("Configuração da reconciliação da cascata carregada")

	return &CascadeReconcileService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    reconcileConfig,
		lister:    lister,
		cascade:   cascade,
		now:       time.Now,
	}
}

func (s *CascadeReconcileService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Reconciliação da cascata desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcile(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação da cascata: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("Agendador de reconciliação da cascata iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de reconciliação da cascata")
		s.scheduler.Stop()
	}()

	return nil
}

// reconcile ignora a chamada quando outra rodada ainda está em andamento
func (s *CascadeReconcileService) reconcile(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Reconciliação da cascata já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	result, err := s.RunOnce(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err == nil {
		s.lastResult = result
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		log.L.WithError(err).Error("Erro na reconciliação da cascata")
	}
}

// RunOnce reprocessa a cascata de cada semana alterada dentro da janela configurada
func (s *CascadeReconcileService) RunOnce(ctx context.Context) (ReconcileResult, error) {
	start := s.now()
	since := start.AddDate(0, 0, -s.config.LookbackDays)

	days, err := s.lister.ListDailyWeeksUpdatedSince(ctx, since)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("erro ao listar semanas alteradas: %w", err)
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result = ReconcileResult{Weeks: len(days)}
	)

	for _, day := range days {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(day *domain.Execution) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.cascade.TriggerAccumulationCascade(ctx, day); err != nil {
				log.L.WithError(err).WithFields(log.Fields{
					"job":      "cascade_reconcile",
					"owner_id": day.Owner,
					"period":   day.Key.String(),
				}).Error("Erro ao reconciliar a cascata da semana")

				mu.Lock()
				result.Failed++
				mu.Unlock()
			}
		}(day)
	}

	wg.Wait()

	log.L.WithFields(log.Fields{
		"job":         "cascade_reconcile",
		"weeks":       result.Weeks,
		"failed":      result.Failed,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Reconciliação da cascata concluída")

	return result, nil
}

// TriggerManualSync inicia uma rodada fora do agendamento
func (s *CascadeReconcileService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("Reconciliação da cascata já em andamento, ignorando solicitação manual")
		return
	}

	log.L.Info("Iniciando reconciliação manual da cascata")
	go s.reconcile(context.Background())
}

func (s *CascadeReconcileService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_weeks":        s.lastResult.Weeks,
		"last_sync_failed":       s.lastResult.Failed,
	}
}
