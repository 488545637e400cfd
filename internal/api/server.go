package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/plan-tracker-api/internal/api/handler"
	"github.com/vfg2006/plan-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/plan-tracker-api/internal/config"
	"github.com/vfg2006/plan-tracker-api/internal/scheduler"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/completion"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/executing"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/planning"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/rollup"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
	"github.com/vfg2006/plan-tracker-api/pkg/metrics"
	"github.com/vfg2006/plan-tracker-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Planner       planning.Planner
	Executor      executing.Executor
	Calculator    completion.Calculator
	Rollup        rollup.Rollup
	Groups        handler.GroupAdmin
	Authenticator authenticating.Authenticator
	Reconcile     *scheduler.CascadeReconcileService // opcional
}

// validate exige todos os casos de uso; só o job de reconciliação é opcional
func (s Services) validate() error {
	required := []struct {
		name    string
		missing bool
	}{
		{"planejamento", s.Planner == nil},
		{"execução", s.Executor == nil},
		{"conclusão", s.Calculator == nil},
		{"consolidação de grupos", s.Rollup == nil},
		{"cadastro de grupos", s.Groups == nil},
		{"autenticação", s.Authenticator == nil},
	}

	for _, r := range required {
		if r.missing {
			return fmt.Errorf("serviço de %s é obrigatório", r.name)
		}
	}
	return nil
}

type Server struct {
	httpServer *http.Server
}

// New monta as rotas e a cadeia de middlewares.
// Com registry nil a rota /metrics não é registrada e as métricas HTTP ficam desligadas.
func New(
	cfg *config.Config,
	db handler.Pinger,
	services Services,
	registry *prometheus.Registry,
) (*Server, error) {
	if err := services.validate(); err != nil {
		return nil, err
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Plans(services.Planner)...),
		router.WithRoutes(handler.Executions(services.Executor)...),
		router.WithRoutes(handler.Completion(services.Calculator)...),
		router.WithRoutes(handler.Groups(services.Rollup, services.Groups)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{
			CascadeReconcileService: services.Reconcile,
		})...),
	}

	var httpMetrics *metrics.HTTPMetrics
	if registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(registry)
		configs = append(configs, router.WithRoutes(handler.Metrics(registry)...))
	}

	rt := router.New(configs...)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(httpMetrics),
		middleware.Cors(cfg.Server.CORSAllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	).Then(rt)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler expõe a cadeia completa para testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
