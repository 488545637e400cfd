// Package rollup soma planos e execuções dos membros de um grupo no momento da consulta.
package rollup

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type OwnerDirectory interface {
	GetGroupMembers(ctx context.Context, groupID int) ([]int, error)
	GetDisplayName(ctx context.Context, ownerID int) (string, error)
}

type PlanReader interface {
	GetPlanByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) ([]*domain.Plan, error)
}

type ExecutionReader interface {
	GetExecutionByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) ([]*domain.Execution, error)
}

type Rollup interface {
	RollupPlans(ctx context.Context, groupID int, g domain.Granularity, fields domain.PeriodFields) (*domain.GroupRollup, error)
	RollupExecutions(ctx context.Context, groupID int, g domain.Granularity, fields domain.PeriodFields) (*domain.GroupRollup, error)
}

type Service struct {
	directory     OwnerDirectory
	plans         PlanReader
	executions    ExecutionReader
	maxConcurrent int
}

// NewService limita a maxConcurrent os membros lidos ao mesmo tempo (mínimo 1)
func NewService(directory OwnerDirectory, plans PlanReader, executions ExecutionReader, maxConcurrent int) Rollup {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Service{
		directory:     directory,
		plans:         plans,
		executions:    executions,
		maxConcurrent: maxConcurrent,
	}
}

// memberReader lê as métricas de um membro; records é o número de registros somados
type memberReader func(ctx context.Context, owner int) (records []domain.Metrics, err error)

func (s *Service) RollupPlans(ctx context.Context, groupID int, g domain.Granularity, fields domain.PeriodFields) (*domain.GroupRollup, error) {
	if !g.IsPlanGranularity() {
		return nil, domain.NewTrackingError(domain.ErrValidation, apiErrors.ErrInvalidRequest, fmt.Sprintf("não existem planos do tipo %q", g))
	}

	return s.rollup(ctx, groupID, g, fields, func(ctx context.Context, owner int) ([]domain.Metrics, error) {
		plans, err := s.plans.GetPlanByPeriod(ctx, g, fields, owner)
		if err != nil {
			return nil, err
		}
		items := make([]domain.Metrics, 0, len(plans))
		for _, p := range plans {
			items = append(items, p.Metrics)
		}
		return items, nil
	})
}

func (s *Service) RollupExecutions(ctx context.Context, groupID int, g domain.Granularity, fields domain.PeriodFields) (*domain.GroupRollup, error) {
	return s.rollup(ctx, groupID, g, fields, func(ctx context.Context, owner int) ([]domain.Metrics, error) {
		execs, err := s.executions.GetExecutionByPeriod(ctx, g, fields, owner)
		if err != nil {
			return nil, err
		}
		items := make([]domain.Metrics, 0, len(execs))
		for _, e := range execs {
			items = append(items, e.Metrics)
		}
		return items, nil
	})
}

// rollup valida o período antes de resolver o grupo e lê os membros em paralelo, até maxConcurrent por vez.
// A ordem dos membros no resultado segue a ordem do grupo.
func (s *Service) rollup(ctx context.Context, groupID int, g domain.Granularity, fields domain.PeriodFields, read memberReader) (*domain.GroupRollup, error) {
	key, err := domain.NewPeriodKey(g, fields)
	if err != nil {
		return nil, err
	}

	members, err := s.directory.GetGroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	type result struct {
		member *domain.MemberRollup
		err    error
	}

	results := make([]result, len(members))
	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, owner := range members {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i, owner int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			items, err := read(ctx, owner)
			if err != nil {
				results[i].err = fmt.Errorf("erro ao ler registros do membro %d: %w", owner, err)
				return
			}
			if len(items) == 0 {
				return
			}

			name, err := s.directory.GetDisplayName(ctx, owner)
			if err != nil {
				results[i].err = fmt.Errorf("erro ao buscar nome do membro %d: %w", owner, err)
				return
			}

			results[i].member = &domain.MemberRollup{
				OwnerID:     owner,
				DisplayName: name,
				Records:     len(items),
				Total:       domain.SumMetrics(items),
			}
		}(i, owner)
	}

	wg.Wait()

	rollup := &domain.GroupRollup{
		GroupID: groupID,
		Type:    g,
		Period:  key,
		Members: make([]domain.MemberRollup, 0, len(members)),
	}

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if r.member == nil {
			continue
		}
		rollup.Members = append(rollup.Members, *r.member)
		rollup.Total = rollup.Total.Add(r.member.Total)
	}

	return rollup, nil
}
