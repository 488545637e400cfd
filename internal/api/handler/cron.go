package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/plan-tracker-api/internal/scheduler"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
)

const (
	CronJobTypeCascadeReconcile = "cascade-reconcile"
	CronJobTypeAll              = "all"
)

// CronJobServices reúne os jobs que podem ser disparados manualmente
type CronJobServices struct {
	CascadeReconcileService *scheduler.CascadeReconcileService
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeCascadeReconcile, CronJobTypeAll:
			if services.CascadeReconcileService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconciliação da cascata não disponível", nil)
				return
			}
			services.CascadeReconcileService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cascade-reconcile, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CascadeReconcileService != nil {
			status[CronJobTypeCascadeReconcile] = services.CascadeReconcileService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
