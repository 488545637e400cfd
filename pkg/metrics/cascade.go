package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
)

// Resultados possíveis de um passo da cascata
const (
	OutcomeUpdated = "updated"
	OutcomeCreated = "created"
	OutcomeHalted  = "halted"
	OutcomeError   = "error"
)

// Motivos de falha usados no rótulo reason
const (
	ReasonDeadlineExceeded     = "deadline_exceeded"
	ReasonCanceled             = "canceled"
	ReasonUniqueViolation      = "unique_violation"
	ReasonSerializationFailure = "serialization_failure"
	ReasonDB                   = "db"
	ReasonUnknown              = "unknown"
)

// CascadeMetrics registra os passos da cascata de acumulação
type CascadeMetrics struct {
	steps    *prometheus.CounterVec
	halts    *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewCascadeMetrics cria e registra as métricas no registerer informado.
// Registerer nil usa o registro padrão do prometheus.
func NewCascadeMetrics(registerer prometheus.Registerer) *CascadeMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &CascadeMetrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plan_tracker_cascade_steps_total",
			Help: "Passos da cascata de acumulação por nível e resultado.",
		}, []string{"level", "outcome"}),
		halts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plan_tracker_cascade_halts_total",
			Help: "Cascatas interrompidas por ausência do registro ancestral.",
		}, []string{"level"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plan_tracker_cascade_failures_total",
			Help: "Falhas da cascata por nível e motivo.",
		}, []string{"level", "reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "plan_tracker_cascade_duration_seconds",
			Help:    "Duração da cascata completa a partir de um registro diário.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registerer.MustRegister(m.steps, m.halts, m.failures, m.duration)
	return m
}

// NewNopCascadeMetrics cria métricas em um registro isolado, útil quando /metrics está desligado
func NewNopCascadeMetrics() *CascadeMetrics {
	return NewCascadeMetrics(prometheus.NewRegistry())
}

// ObserveStep conta um passo concluído em um nível
func (m *CascadeMetrics) ObserveStep(level, outcome string) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(level, outcome).Inc()
	if outcome == OutcomeHalted {
		m.halts.WithLabelValues(level).Inc()
	}
}

// ObserveFailure conta um passo que falhou, classificando o erro
func (m *CascadeMetrics) ObserveFailure(level string, err error) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(level, OutcomeError).Inc()
	m.failures.WithLabelValues(level, ClassifyReason(err)).Inc()
}

// ObserveDuration registra a duração de uma cascata iniciada em start
func (m *CascadeMetrics) ObserveDuration(start time.Time) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
}

// ClassifyReason converte o erro em um motivo de baixa cardinalidade
func ClassifyReason(err error) string {
	switch {
	case err == nil:
		return ReasonUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ReasonUniqueViolation
		case "40001":
			return ReasonSerializationFailure
		}
		return ReasonDB
	}

	return ReasonUnknown
}
