package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/rollup"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

// GroupAdmin cadastra grupos e membros; implementado pelo repositório de grupos
type GroupAdmin interface {
	CreateGroup(ctx context.Context, name string) (*domain.Group, error)
	GetGroup(ctx context.Context, groupID int) (*domain.Group, error)
	AddMember(ctx context.Context, groupID, userID int) error
	RemoveMember(ctx context.Context, groupID, userID int) error
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type AddMemberRequest struct {
	UserID int `json:"user_id"`
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return v, true
}

func GetGroupPlans(service rollup.Rollup) http.HandlerFunc {
	return groupRollup("somar planos do grupo", service.RollupPlans)
}

func GetGroupExecutions(service rollup.Rollup) http.HandlerFunc {
	return groupRollup("somar execuções do grupo", service.RollupExecutions)
}

type rollupFunc func(ctx context.Context, groupID int, g domain.Granularity, fields domain.PeriodFields) (*domain.GroupRollup, error)

func groupRollup(operation string, fn rollupFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		g, fields, err := periodFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, operation)
			return
		}

		result, err := fn(r.Context(), groupID, g, fields)
		if err != nil {
			writeServiceError(w, r, err, operation)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func CreateGroup(groups GroupAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGroupRequest
		if !decodeBody(w, r, &req) {
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do grupo é obrigatório", nil)
			return
		}

		group, err := groups.CreateGroup(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err, "criar grupo")
			return
		}

		writeJSON(w, r, http.StatusCreated, group)
	}
}

func GetGroup(groups GroupAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		group, err := groups.GetGroup(r.Context(), groupID)
		if err != nil {
			writeServiceError(w, r, err, "buscar grupo")
			return
		}
		if group == nil {
			apiErrors.WriteError(w, apiErrors.ErrGroupNotFound, "Grupo não encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, group)
	}
}

func AddGroupMember(groups GroupAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		var req AddMemberRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.UserID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		if err := groups.AddMember(r.Context(), groupID, req.UserID); err != nil {
			writeServiceError(w, r, err, "adicionar membro ao grupo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func RemoveGroupMember(groups GroupAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := intParam(w, r, "id")
		if !ok {
			return
		}
		userID, ok := intParam(w, r, "user_id")
		if !ok {
			return
		}

		if err := groups.RemoveMember(r.Context(), groupID, userID); err != nil {
			writeServiceError(w, r, err, "remover membro do grupo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
