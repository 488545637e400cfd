package handler

import (
	"net/http"

	"github.com/vfg2006/plan-tracker-api/internal/usecases/completion"
)

func GetCompletion(service completion.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		g, fields, err := periodFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "calcular conclusão")
			return
		}

		result, err := service.CompletionByPeriod(r.Context(), g, fields, owner)
		if err != nil {
			writeServiceError(w, r, err, "calcular conclusão")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
