package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/plan-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/completion"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/executing"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/planning"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/rollup"
	"github.com/vfg2006/plan-tracker-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

func Plans(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/plans",
			Method:      http.MethodPost,
			Handler:     CreatePlan(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans",
			Method:      http.MethodGet,
			Handler:     GetPlansByPeriod(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id",
			Method:      http.MethodGet,
			Handler:     GetPlan(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePlan(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Executions(service executing.Executor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/executions",
			Method:      http.MethodPost,
			Handler:     CreateExecution(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/executions",
			Method:      http.MethodGet,
			Handler:     GetExecutionsByPeriod(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/executions/:id",
			Method:      http.MethodGet,
			Handler:     GetExecution(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/executions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateExecution(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Completion(service completion.Calculator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/completion",
			Method:      http.MethodGet,
			Handler:     GetCompletion(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Groups(service rollup.Rollup, groups GroupAdmin) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/groups",
			Method:      http.MethodPost,
			Handler:     CreateGroup(groups),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/groups/:id",
			Method:      http.MethodGet,
			Handler:     GetGroup(groups),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/groups/:id/members",
			Method:      http.MethodPost,
			Handler:     AddGroupMember(groups),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/groups/:id/members/:user_id",
			Method:      http.MethodDelete,
			Handler:     RemoveGroupMember(groups),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/groups/:id/plans",
			Method:      http.MethodGet,
			Handler:     GetGroupPlans(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/groups/:id/executions",
			Method:      http.MethodGet,
			Handler:     GetGroupExecutions(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
