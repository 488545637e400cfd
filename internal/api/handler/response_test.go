package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectLog      bool
	}{
		{
			name:           "Conflito não é logado",
			err:            domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrPlanAlreadyExists, "plano DAY"),
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrPlanAlreadyExists,
		},
		{
			name:           "Validação sem código usa o código do tipo",
			err:            domain.NewTrackingError(domain.ErrValidation, "", "mês 13"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "TrackingError com falha interna é logado",
			err:            domain.NewTrackingError(errors.New("conexão recusada"), "", "leitura de planos"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
			expectLog:      true,
		},
		{
			name:           "Erro sem tipo é logado",
			err:            errors.New("timeout"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
			expectLog:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()

			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/v1/plans", nil), tt.err, "buscar planos")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)

			var errorEntries int
			for _, entry := range hook.AllEntries() {
				if entry.Level == logrus.ErrorLevel {
					errorEntries++
				}
			}
			if tt.expectLog {
				assert.Equal(t, 1, errorEntries)
			} else {
				assert.Zero(t, errorEntries)
			}
		})
	}
}
