// Package testutil traz implementações em memória dos repositórios para testes de ponta a ponta.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/plan-tracker-api/infrastructure/repository"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

var (
	_ repository.PlanRepository      = (*PlanStore)(nil)
	_ repository.ExecutionRepository = (*ExecutionStore)(nil)
)

// Store guarda planos e execuções em memória, preservando a ordem de inserção
type Store struct {
	mu         sync.Mutex
	seq        int
	plans      []*domain.Plan
	executions []*domain.Execution

	// FailUpsertAt faz UpsertMetrics falhar para o nível informado
	FailUpsertAt domain.Granularity
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%04d", prefix, s.seq)
}

// Plans expõe o store como PlanRepository
func (s *Store) Plans() *PlanStore {
	return &PlanStore{s: s}
}

// Executions expõe o store como ExecutionRepository
func (s *Store) Executions() *ExecutionStore {
	return &ExecutionStore{s: s}
}

// Execution retorna uma cópia da execução do período, ou nil
func (s *Store) Execution(key domain.PeriodKey, owner int) *domain.Execution {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.executions {
		if e.Owner == owner && e.Key.String() == key.String() {
			copied := *e
			return &copied
		}
	}
	return nil
}

// ExecutionCount retorna o total de execuções gravadas
func (s *Store) ExecutionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.executions)
}

type PlanStore struct {
	s *Store
}

func (p *PlanStore) Create(_ context.Context, plan *domain.Plan) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, existing := range p.s.plans {
		if !existing.Deleted && existing.Owner == plan.Owner && existing.Key.String() == plan.Key.String() {
			return domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrPlanAlreadyExists, plan.Key.String())
		}
	}

	if plan.ID == "" {
		plan.ID = p.s.nextID("plan")
	}
	now := time.Now()
	plan.CreatedAt, plan.UpdatedAt = now, now

	copied := *plan
	p.s.plans = append(p.s.plans, &copied)
	return nil
}

func (p *PlanStore) GetByID(_ context.Context, id string) (*domain.Plan, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, plan := range p.s.plans {
		if plan.ID == id && !plan.Deleted {
			copied := *plan
			return &copied, nil
		}
	}
	return nil, nil
}

func (p *PlanStore) FindByPeriod(_ context.Context, key domain.PeriodKey, owner int) (*domain.Plan, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, plan := range p.s.plans {
		if !plan.Deleted && plan.Owner == owner && plan.Key.String() == key.String() {
			copied := *plan
			return &copied, nil
		}
	}
	return nil, nil
}

func (p *PlanStore) ListChildren(_ context.Context, parent domain.PeriodKey, owner int) ([]*domain.Plan, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	result := make([]*domain.Plan, 0)
	for _, plan := range p.s.plans {
		if plan.Deleted || plan.Owner != owner {
			continue
		}
		if parentKey, ok := plan.Key.Parent(); ok && parentKey.String() == parent.String() {
			copied := *plan
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date().Before(result[j].Date())
	})
	return result, nil
}

func (p *PlanStore) UpdateMetrics(_ context.Context, id string, metrics domain.Metrics) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, plan := range p.s.plans {
		if plan.ID == id && !plan.Deleted {
			plan.Metrics = metrics.Normalize()
			plan.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrPlanNotFound, id)
}

type ExecutionStore struct {
	s *Store
}

func (e *ExecutionStore) find(key domain.PeriodKey, owner int) *domain.Execution {
	for _, exec := range e.s.executions {
		if exec.Owner == owner && exec.Key.String() == key.String() {
			return exec
		}
	}
	return nil
}

func (e *ExecutionStore) insert(key domain.PeriodKey, owner int, metrics domain.Metrics) *domain.Execution {
	now := time.Now()
	exec := &domain.Execution{
		ID:        e.s.nextID("exec"),
		Type:      key.Granularity(),
		Key:       key,
		Owner:     owner,
		Metrics:   metrics.Normalize(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.s.executions = append(e.s.executions, exec)
	return exec
}

func (e *ExecutionStore) Create(_ context.Context, exec *domain.Execution) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if e.find(exec.Key, exec.Owner) != nil {
		return domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrExecutionAlreadyExists, exec.Key.String())
	}

	if exec.ID == "" {
		exec.ID = e.s.nextID("exec")
	}
	now := time.Now()
	exec.CreatedAt, exec.UpdatedAt = now, now

	copied := *exec
	e.s.executions = append(e.s.executions, &copied)
	return nil
}

func (e *ExecutionStore) GetByID(_ context.Context, id string) (*domain.Execution, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for _, exec := range e.s.executions {
		if exec.ID == id {
			copied := *exec
			return &copied, nil
		}
	}
	return nil, nil
}

func (e *ExecutionStore) FindByPeriod(_ context.Context, key domain.PeriodKey, owner int) (*domain.Execution, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if exec := e.find(key, owner); exec != nil {
		copied := *exec
		return &copied, nil
	}
	return nil, nil
}

func (e *ExecutionStore) ListChildren(_ context.Context, parent domain.PeriodKey, owner int) ([]*domain.Execution, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	result := make([]*domain.Execution, 0)
	for _, exec := range e.s.executions {
		if exec.Owner != owner {
			continue
		}
		if parentKey, ok := exec.Key.Parent(); ok && parentKey.String() == parent.String() {
			copied := *exec
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date().Before(result[j].Date())
	})
	return result, nil
}

func (e *ExecutionStore) UpdateMetrics(_ context.Context, id string, metrics domain.Metrics) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for _, exec := range e.s.executions {
		if exec.ID == id {
			exec.Metrics = metrics.Normalize()
			exec.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrExecutionNotFound, id)
}

func (e *ExecutionStore) UpsertMetrics(_ context.Context, key domain.PeriodKey, owner int, metrics domain.Metrics) (*domain.Execution, bool, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if e.s.FailUpsertAt != "" && key.Granularity() == e.s.FailUpsertAt {
		return nil, false, fmt.Errorf("falha simulada ao gravar %s", key)
	}

	if exec := e.find(key, owner); exec != nil {
		exec.Metrics = metrics.Normalize()
		exec.UpdatedAt = time.Now()
		copied := *exec
		return &copied, false, nil
	}

	copied := *e.insert(key, owner, metrics)
	return &copied, true, nil
}

func (e *ExecutionStore) EnsurePlaceholders(_ context.Context, keys []domain.PeriodKey, owner int) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for _, key := range keys {
		if e.find(key, owner) == nil {
			e.insert(key, owner, domain.Metrics{})
		}
	}
	return nil
}

func (e *ExecutionStore) ListDailyWeeksUpdatedSince(_ context.Context, since time.Time) ([]*domain.Execution, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	seen := make(map[string]bool)
	result := make([]*domain.Execution, 0)
	for _, exec := range e.s.executions {
		if exec.Type != domain.GranularityDay || exec.UpdatedAt.Before(since) {
			continue
		}
		week, _ := exec.Key.Parent()
		id := fmt.Sprintf("%d|%s", exec.Owner, week)
		if seen[id] {
			continue
		}
		seen[id] = true
		copied := *exec
		result = append(result, &copied)
	}
	return result, nil
}

// Touch força o updated_at de uma execução, para simular registros antigos
func (s *Store) Touch(id string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, exec := range s.executions {
		if exec.ID == id {
			exec.UpdatedAt = at
		}
	}
}
