package completion

import (
	"context"
	"fmt"

	"github.com/vfg2006/plan-tracker-api/infrastructure/repository"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Calculator interface {
	CompletionByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) (*domain.Completion, error)
}

type Service struct {
	plans      repository.PlanRepository
	executions repository.ExecutionRepository
}

func NewService(plans repository.PlanRepository, executions repository.ExecutionRepository) Calculator {
	return &Service{
		plans:      plans,
		executions: executions,
	}
}

// CompletionByPeriod compara o plano e a execução do período exato do dono.
// O lado ausente conta como métricas zeradas.
func (s *Service) CompletionByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) (*domain.Completion, error) {
	if !g.IsPlanGranularity() {
		return nil, domain.NewTrackingError(domain.ErrValidation, apiErrors.ErrInvalidRequest, fmt.Sprintf("não existem planos do tipo %s", g))
	}

	key, err := domain.NewPeriodKey(g, fields)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByPeriod(ctx, key, owner)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar plano para conclusão: %w", err)
	}

	exec, err := s.executions.FindByPeriod(ctx, key, owner)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar execução para conclusão: %w", err)
	}

	result := &domain.Completion{
		Type:   g,
		Period: key,
	}
	if plan != nil {
		result.Plan = plan.Metrics
		result.HasPlan = true
	}
	if exec != nil {
		result.Execution = exec.Metrics
		result.HasActual = true
	}
	result.Percentage = Percentage(result.Plan, result.Execution)

	return result, nil
}
