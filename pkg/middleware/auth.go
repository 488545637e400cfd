package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas que não exigem token
var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/v1/register": true,
	"/healthcheck": true,
	"/metrics":     true,
}

type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// codedError é implementado pelos erros que carregam o código da API
type codedError interface {
	error
	APICode() string
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer obrigatório", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var coded codedError
				if errors.As(err, &coded) {
					code = coded.APICode()
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}

// ClaimsFromContext retorna o usuário autenticado da requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
