package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
	"github.com/vfg2006/plan-tracker-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o corpo padrão da API.
// Só erros que não são do cliente são logados; erros sem código viram erro interno.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	var trackingErr *domain.TrackingError
	if errors.As(err, &trackingErr) {
		if !domain.IsClientError(trackingErr) {
			log.ForContext(r.Context()).WithError(errors.Wrap(err, operation)).Error("Erro ao processar requisição")
		}
		code := trackingErr.Code
		if code == "" {
			code = codeForKind(trackingErr)
		}
		apiErrors.WriteError(w, code, trackingErr.Error(), nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if !authenticating.IsCredentialsError(authErr) && !authenticating.IsAuthorizationError(authErr) {
			log.ForContext(r.Context()).WithError(errors.Wrap(err, operation)).Error("Erro de autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(errors.Wrap(err, operation)).Error("Erro ao processar requisição")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao "+operation, nil)
}

func codeForKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, domain.ErrConflict):
		return apiErrors.ErrPlanAlreadyExists
	case errors.Is(err, domain.ErrDependency):
		return apiErrors.ErrParentPlanMissing
	case errors.Is(err, domain.ErrNotFound):
		return apiErrors.ErrPlanNotFound
	}
	return apiErrors.ErrInternalServer
}

// currentOwner retorna o usuário autenticado, dono de toda leitura e escrita
func currentOwner(w http.ResponseWriter, r *http.Request) (int, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}
	return claims.UserID, true
}

// periodFromQuery lê type, year, quarter, month, week (ou weekOfMonth) e date da query string
func periodFromQuery(r *http.Request) (domain.Granularity, domain.PeriodFields, error) {
	query := r.URL.Query()

	g, err := domain.ParseGranularity(query.Get("type"))
	if err != nil {
		return "", domain.PeriodFields{}, err
	}

	fields := domain.PeriodFields{}
	ints := map[string]**int{
		"year":        &fields.Year,
		"quarter":     &fields.Quarter,
		"month":       &fields.Month,
		"week":        &fields.Week,
		"weekOfMonth": &fields.WeekOfMonth,
	}

	for name, dst := range ints {
		raw := strings.TrimSpace(query.Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return "", domain.PeriodFields{}, domain.NewTrackingError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "parâmetro "+name+" deve ser numérico")
		}
		*dst = &v
	}

	if date := strings.TrimSpace(query.Get("date")); date != "" {
		fields.Date = &date
	}

	return g, fields, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}
