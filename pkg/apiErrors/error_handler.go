package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro para autenticação
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserAlreadyExists     = "AUTH_004" // Usuário já cadastrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de planos (3000-3999)
	ErrPlanAlreadyExists = "PLAN_001" // Já existe plano para o período
	ErrParentPlanMissing = "PLAN_002" // Plano pai ausente
	ErrPlanNotFound      = "PLAN_003" // Plano não encontrado

	// Erros de execuções (4000-4999)
	ErrExecutionAlreadyExists = "EXEC_001" // Já existe execução para o período
	ErrExecutionNotFound      = "EXEC_002" // Execução não encontrada
	ErrInvalidUpdateLevel     = "EXEC_003" // Atualização fora do nível permitido

	// Erros de grupos
	ErrGroupNotFound = "GROUP_001" // Grupo não encontrado

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRouteNotFound     = "SRV_005" // Rota inexistente
	ErrMethodNotAllowed  = "SRV_006" // Método não permitido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrUserDisabled:           http.StatusForbidden,
	ErrUserNotFound:           http.StatusNotFound,
	ErrUserAlreadyExists:      http.StatusConflict,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrExpiredToken:           http.StatusUnauthorized,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrPlanAlreadyExists:      http.StatusConflict,
	ErrParentPlanMissing:      http.StatusUnprocessableEntity,
	ErrPlanNotFound:           http.StatusNotFound,
	ErrExecutionAlreadyExists: http.StatusConflict,
	ErrExecutionNotFound:      http.StatusNotFound,
	ErrInvalidUpdateLevel:     http.StatusBadRequest,
	ErrGroupNotFound:          http.StatusNotFound,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
	ErrRouteNotFound:          http.StatusNotFound,
	ErrMethodNotAllowed:       http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusOf retorna o status HTTP associado ao código
func StatusOf(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(code))
	json.NewEncoder(w).Encode(apiErr)
}
