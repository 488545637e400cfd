package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/executing"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
)

// CreateExecution responde assim que o registro é gravado; falhas da cascata não mudam a resposta
func CreateExecution(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		var req RecordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		g, err := domain.ParseGranularity(req.Type)
		if err != nil {
			writeServiceError(w, r, err, "criar execução")
			return
		}

		exec, err := service.CreateExecution(r.Context(), domain.CreateExecutionInput{
			Type:    g,
			Fields:  req.PeriodFields,
			Owner:   owner,
			Metrics: req.MetricsInput.Metrics(),
		})
		if err != nil {
			writeServiceError(w, r, err, "criar execução")
			return
		}

		writeJSON(w, r, http.StatusCreated, exec)
	}
}

func UpdateExecution(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req UpdateRecordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if ignored := req.ignoredFields(); len(ignored) > 0 {
			log.ForContext(r.Context()).WithField("fields", ignored).Info("Campos de identidade ignorados na atualização da execução")
		}

		exec, err := service.UpdateExecution(r.Context(), id, owner, req.MetricsInput.Patch())
		if err != nil {
			writeServiceError(w, r, err, "atualizar execução")
			return
		}

		writeJSON(w, r, http.StatusOK, exec)
	}
}

func GetExecution(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		exec, err := service.GetExecution(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("id"), owner)
		if err != nil {
			writeServiceError(w, r, err, "buscar execução")
			return
		}

		writeJSON(w, r, http.StatusOK, exec)
	}
}

func GetExecutionsByPeriod(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		g, fields, err := periodFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "buscar execuções")
			return
		}

		execs, err := service.GetExecutionByPeriod(r.Context(), g, fields, owner)
		if err != nil {
			writeServiceError(w, r, err, "buscar execuções")
			return
		}

		writeJSON(w, r, http.StatusOK, periodResponse(g, execs))
	}
}
