package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vfg2006/plan-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/plan-tracker-api/infrastructure/migration"
	"github.com/vfg2006/plan-tracker-api/infrastructure/repository"
	"github.com/vfg2006/plan-tracker-api/internal/api"
	"github.com/vfg2006/plan-tracker-api/internal/config"
	"github.com/vfg2006/plan-tracker-api/internal/scheduler"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/accumulating"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/completion"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/executing"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/planning"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/rollup"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
	"github.com/vfg2006/plan-tracker-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Run(pgConn.DB); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		log.L.Info("Migrações aplicadas com sucesso")
	}

	var registry *prometheus.Registry
	cascadeMetrics := metrics.NewNopCascadeMetrics()
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		cascadeMetrics = metrics.NewCascadeMetrics(registry)
	}

	planRepo := repository.NewPlanRepository(pgConn)
	executionRepo := repository.NewExecutionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	groupRepo := repository.NewGroupRepository(pgConn)
	directory := repository.NewOwnerDirectory(userRepo, groupRepo)

	engine := accumulating.NewEngine(executionRepo, cascadeMetrics)

	planner := planning.NewService(planRepo, executionRepo)
	executor := executing.NewService(executionRepo, engine)
	calculator := completion.NewService(planRepo, executionRepo)
	rollupService := rollup.NewService(directory, planner, executor, cfg.Rollup.MaxConcurrentMembers)
	authenticator := authenticating.NewService(userRepo, cfg)

	reconcileService := scheduler.NewCascadeReconcileService(executionRepo, engine, cfg)
	if err := reconcileService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de reconciliação da cascata")
	}

	server, err := api.New(cfg, pgConn, api.Services{
		Planner:       planner,
		Executor:      executor,
		Calculator:    calculator,
		Rollup:        rollupService,
		Groups:        groupRepo,
		Authenticator: authenticator,
		Reconcile:     reconcileService,
	}, registry)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
