package handler

import (
	"net/http"

	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// Register cria usuários com o perfil padrão; usuários novos já entram ativos
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			Active:       true,
		})
		if err != nil {
			writeServiceError(w, r, err, "criar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentOwner(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), owner)
		if err != nil {
			writeServiceError(w, r, err, "obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
