package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/planning"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
)

// RecordRequest é o corpo de criação de planos e execuções: campos de período e
// os quatro grupos de métricas no mesmo nível
type RecordRequest struct {
	Type string `json:"type"`
	domain.PeriodFields
	domain.MetricsInput
}

// UpdateRecordRequest aceita apenas métricas; campos de identidade enviados são ignorados
type UpdateRecordRequest struct {
	domain.MetricsInput

	Type         *jsonRaw `json:"type,omitempty"`
	Year         *jsonRaw `json:"year,omitempty"`
	Quarter      *jsonRaw `json:"quarter,omitempty"`
	Month        *jsonRaw `json:"month,omitempty"`
	Week         *jsonRaw `json:"week,omitempty"`
	WeekOfMonth  *jsonRaw `json:"weekOfMonth,omitempty"`
	Date         *jsonRaw `json:"date,omitempty"`
	Owner        *jsonRaw `json:"owner,omitempty"`
	ParentPlanID *jsonRaw `json:"parentPlanId,omitempty"`
}

type jsonRaw = jsoniter.RawMessage

// ignoredFields lista os campos de identidade presentes no corpo
func (u UpdateRecordRequest) ignoredFields() []string {
	var ignored []string
	for name, v := range map[string]*jsonRaw{
		"type":         u.Type,
		"year":         u.Year,
		"quarter":      u.Quarter,
		"month":        u.Month,
		"week":         u.Week,
		"weekOfMonth":  u.WeekOfMonth,
		"date":         u.Date,
		"owner":        u.Owner,
		"parentPlanId": u.ParentPlanID,
	} {
		if v != nil {
			ignored = append(ignored, name)
		}
	}
	return ignored
}

func CreatePlan(service planning.Planner) http.HandlerFunc {
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
			writeServiceError(w, r, err, "criar plano")
			return
		}

		plan, err := service.CreatePlan(r.Context(), domain.CreatePlanInput{
			Type:    g,
			Fields:  req.PeriodFields,
			Owner:   owner,
			Metrics: req.MetricsInput.Metrics(),
		})
		if err != nil {
			writeServiceError(w, r, err, "criar plano")
			return
		}

		writeJSON(w, r, http.StatusCreated, plan)
	}
}

func UpdatePlan(service planning.Planner) http.HandlerFunc {
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
			log.ForContext(r.Context()).WithField("fields", ignored).Info("Campos de identidade ignorados na atualização do plano")
		}

		plan, err := service.UpdatePlan(r.Context(), id, owner, req.MetricsInput.Patch())
		if err != nil {
			writeServiceError(w, r, err, "atualizar plano")
			return
		}

		writeJSON(w, r, http.StatusOK, plan)
	}
}

func GetPlan(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		plan, err := service.GetPlan(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("id"), owner)
		if err != nil {
			writeServiceError(w, r, err, "buscar plano")
			return
		}

		writeJSON(w, r, http.StatusOK, plan)
	}
}

// GetPlansByPeriod responde uma lista para DAY e um objeto (ou null) para os demais tipos
func GetPlansByPeriod(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		g, fields, err := periodFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "buscar planos")
			return
		}

		plans, err := service.GetPlanByPeriod(r.Context(), g, fields, owner)
		if err != nil {
			writeServiceError(w, r, err, "buscar planos")
			return
		}

		writeJSON(w, r, http.StatusOK, periodResponse(g, plans))
	}
}

// periodResponse aplica a regra de formato das leituras por período
func periodResponse[T any](g domain.Granularity, records []*T) any {
	if g == domain.GranularityDay {
		if records == nil {
			return []*T{}
		}
		return records
	}
	if len(records) == 0 {
		return nil
	}
	return records[0]
}
