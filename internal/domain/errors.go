package domain

import (
	"errors"
	"fmt"
)

// Erros base da hierarquia de planos e execuções
var (
	// Campos de período ausentes ou inválidos para o tipo pedido
	ErrValidation = errors.New("dados de período inválidos")
	// Já existe registro para o mesmo tipo, período e dono
	ErrConflict = errors.New("registro já existe para o período")
	// O plano pai exigido ainda não existe
	ErrDependency = errors.New("plano pai não encontrado")
	ErrNotFound   = errors.New("registro não encontrado")
)

// TrackingError é um erro com contexto adicional para planos e execuções
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TrackingError) Unwrap() error {
	return e.Err
}

// NewTrackingError cria um novo TrackingError
func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsClientError indica se o erro é de responsabilidade do cliente (não deve ser logado como erro)
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrDependency) ||
		errors.Is(err, ErrNotFound)
}
