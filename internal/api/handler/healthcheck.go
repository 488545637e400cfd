package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 enquanto o banco responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Banco de dados indisponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
