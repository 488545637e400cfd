package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/plans",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			w.WriteHeader(http.StatusOK)
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("primeiro"), mark("segundo")},
	}))

	t.Run("Middlewares rodam na ordem declarada", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/plans", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	})

	t.Run("Rota inexistente responde JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), apiErrors.ErrRouteNotFound))
	})

	t.Run("Método não permitido responde JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/plans", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrMethodNotAllowed)
	})
}
