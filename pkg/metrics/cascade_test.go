package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClassifyReason(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "deadline", err: fmt.Errorf("erro: %w", context.DeadlineExceeded), expected: ReasonDeadlineExceeded},
		{name: "canceled", err: context.Canceled, expected: ReasonCanceled},
		{name: "unique_violation", err: &pq.Error{Code: "23505"}, expected: ReasonUniqueViolation},
		{name: "serialization_failure", err: fmt.Errorf("erro: %w", &pq.Error{Code: "40001"}), expected: ReasonSerializationFailure},
		{name: "db", err: &pq.Error{Code: "42P01"}, expected: ReasonDB},
		{name: "unknown", err: errors.New("boom"), expected: ReasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyReason(tt.err))
		})
	}
}

func TestCascadeMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewCascadeMetrics(registry)

	m.ObserveStep("WEEK", OutcomeUpdated)
	m.ObserveStep("WEEK", OutcomeUpdated)
	m.ObserveStep("WEEK", OutcomeHalted)
	m.ObserveFailure("MONTH", &pq.Error{Code: "23505"})
	m.ObserveDuration(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.steps.WithLabelValues("WEEK", OutcomeUpdated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.halts.WithLabelValues("WEEK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.steps.WithLabelValues("MONTH", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("MONTH", ReasonUniqueViolation)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestCascadeMetrics_NilIsSafe(t *testing.T) {
	var m *CascadeMetrics

	assert.NotPanics(t, func() {
		m.ObserveStep("DAY", OutcomeUpdated)
		m.ObserveFailure("DAY", errors.New("boom"))
		m.ObserveDuration(time.Now())
	})
}
