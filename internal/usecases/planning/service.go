package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/plan-tracker-api/infrastructure/repository"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
	"github.com/vfg2006/plan-tracker-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Planner interface {
	CreatePlan(ctx context.Context, input domain.CreatePlanInput) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, id string, owner int, patch domain.MetricsPatch) (*domain.Plan, error)
	GetPlan(ctx context.Context, id string, owner int) (*domain.Plan, error)
	GetPlanByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) ([]*domain.Plan, error)
}

// ExecutionPlaceholder garante que as execuções ancestrais existam antes da primeira cascata
type ExecutionPlaceholder interface {
	EnsurePlaceholders(ctx context.Context, keys []domain.PeriodKey, owner int) error
}

type Service struct {
	plans        repository.PlanRepository
	placeholders ExecutionPlaceholder
}

func NewService(plans repository.PlanRepository, placeholders ExecutionPlaceholder) Planner {
	return &Service{
		plans:        plans,
		placeholders: placeholders,
	}
}

// CreatePlan valida o período, impede duplicidade e exige o plano pai para WEEK e DAY.
// MONTH cria as execuções YEAR, QUARTER e MONTH; WEEK cria a execução WEEK; DAY não cria nenhuma.
func (s *Service) CreatePlan(ctx context.Context, input domain.CreatePlanInput) (*domain.Plan, error) {
	if !input.Type.IsPlanGranularity() {
		return nil, domain.NewTrackingError(domain.ErrValidation, apiErrors.ErrInvalidRequest, fmt.Sprintf("não é possível criar plano do tipo %q", input.Type))
	}

	key, err := domain.NewPeriodKey(input.Type, input.Fields)
	if err != nil {
		return nil, err
	}

	existing, err := s.plans.FindByPeriod(ctx, key, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar plano existente: %w", err)
	}
	if existing != nil {
		return nil, domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrPlanAlreadyExists, "plano já existe para "+key.String())
	}

	var parentID *string
	if input.Type != domain.GranularityMonth {
		parentKey, _ := key.Parent()
		parent, err := s.plans.FindByPeriod(ctx, parentKey, input.Owner)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar plano pai: %w", err)
		}
		if parent == nil {
			return nil, domain.NewTrackingError(domain.ErrDependency, apiErrors.ErrParentPlanMissing, "crie antes o plano "+parentKey.String())
		}
		parentID = &parent.ID
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do plano: %w", err)
	}

	plan := &domain.Plan{
		ID:           id,
		Type:         input.Type,
		Key:          key,
		ParentPlanID: parentID,
		Owner:        input.Owner,
		Metrics:      input.Metrics.Normalize(),
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.ensurePlaceholders(ctx, plan)

	return plan, nil
}

func (s *Service) ensurePlaceholders(ctx context.Context, plan *domain.Plan) {
	var keys []domain.PeriodKey
	switch k := plan.Key.(type) {
	case domain.MonthKey:
		quarter, _ := k.Parent()
		year, _ := quarter.Parent()
		keys = []domain.PeriodKey{year, quarter, k}
	case domain.WeekKey:
		keys = []domain.PeriodKey{k}
	default:
		return
	}

	if err := s.placeholders.EnsurePlaceholders(ctx, keys, plan.Owner); err != nil {
		log.ForRecord(ctx, plan.Owner, plan.Key).WithError(err).Error("Erro ao criar execuções do plano")
	}
}

// UpdatePlan aplica apenas as métricas; período, dono e plano pai não mudam
func (s *Service) UpdatePlan(ctx context.Context, id string, owner int, patch domain.MetricsPatch) (*domain.Plan, error) {
	plan, err := s.GetPlan(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(plan.Metrics)
	if err := s.plans.UpdateMetrics(ctx, plan.ID, updated); err != nil {
		return nil, err
	}

	plan.Metrics = updated
	plan.UpdatedAt = time.Now()
	return plan, nil
}

// GetPlan trata planos de outro dono como inexistentes
func (s *Service) GetPlan(ctx context.Context, id string, owner int) (*domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar plano: %w", err)
	}
	if plan == nil || plan.Owner != owner {
		return nil, domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrPlanNotFound, "plano "+id)
	}
	return plan, nil
}

// GetPlanByPeriod retorna no máximo um plano para MONTH e WEEK.
// Para DAY retorna todos os planos diários da semana da data, ordenados por data.
func (s *Service) GetPlanByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) ([]*domain.Plan, error) {
	if !g.IsPlanGranularity() {
		return nil, domain.NewTrackingError(domain.ErrValidation, apiErrors.ErrInvalidRequest, fmt.Sprintf("não existem planos do tipo %q", g))
	}

	key, err := domain.NewPeriodKey(g, fields)
	if err != nil {
		return nil, err
	}

	if g == domain.GranularityDay {
		week, _ := key.Parent()
		plans, err := s.plans.ListChildren(ctx, week, owner)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar planos da semana: %w", err)
		}
		return plans, nil
	}

	plan, err := s.plans.FindByPeriod(ctx, key, owner)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar plano: %w", err)
	}
	if plan == nil {
		return []*domain.Plan{}, nil
	}
	return []*domain.Plan{plan}, nil
}
