package handler

import (
	"net/http"

	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

// GetUser retorna o perfil de qualquer usuário; usado para montar os grupos
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "buscar usuário")
			return
		}
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
