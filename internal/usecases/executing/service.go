package executing

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

type Executor interface {
	CreateExecution(ctx context.Context, input domain.CreateExecutionInput) (*domain.Execution, error)
	UpdateExecution(ctx context.Context, id string, owner int, patch domain.MetricsPatch) (*domain.Execution, error)
	GetExecution(ctx context.Context, id string, owner int) (*domain.Execution, error)
	GetExecutionByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) ([]*domain.Execution, error)
}

// Cascader propaga a alteração de uma execução para os níveis acima
type Cascader interface {
	TriggerAccumulationCascade(ctx context.Context, day *domain.Execution) error
	AccumulateFrom(ctx context.Context, exec *domain.Execution) error
}

type Service struct {
	executions repository.ExecutionRepository
	cascader   Cascader
}

func NewService(executions repository.ExecutionRepository, cascader Cascader) Executor {
	return &Service{
		executions: executions,
		cascader:   cascader,
	}
}

// CreateExecution grava o realizado do período. Execuções diárias disparam a cascata completa;
// falhas da cascata são registradas e não alteram o resultado da criação.
func (s *Service) CreateExecution(ctx context.Context, input domain.CreateExecutionInput) (*domain.Execution, error) {
	key, err := domain.NewPeriodKey(input.Type, input.Fields)
	if err != nil {
		return nil, err
	}

	existing, err := s.executions.FindByPeriod(ctx, key, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar execução existente: %w", err)
	}
	if existing != nil {
		return nil, domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrExecutionAlreadyExists, "execução já existe para "+key.String())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	exec := &domain.Execution{
		ID:      id,
		Type:    key.Granularity(),
		Key:     key,
		Owner:   input.Owner,
		Metrics: input.Metrics.Normalize(),
	}

	if err := s.executions.Create(ctx, exec); err != nil {
		return nil, err
	}

	if exec.Type == domain.GranularityDay {
		s.cascade(ctx, exec, s.cascader.TriggerAccumulationCascade)
	}

	return exec, nil
}

// UpdateExecution mescla as métricas e sobe exatamente um nível
// (DAY continua disparando a cascata completa)
func (s *Service) UpdateExecution(ctx context.Context, id string, owner int, patch domain.MetricsPatch) (*domain.Execution, error) {
	exec, err := s.GetExecution(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(exec.Metrics)
	if err := s.executions.UpdateMetrics(ctx, exec.ID, updated); err != nil {
		return nil, err
	}

	exec.Metrics = updated
	exec.UpdatedAt = time.Now()

	s.cascade(ctx, exec, s.cascader.AccumulateFrom)

	return exec, nil
}

// cascade roda fora do cancelamento do cliente para não parar no meio da hierarquia
func (s *Service) cascade(ctx context.Context, exec *domain.Execution, fn func(context.Context, *domain.Execution) error) {
	if err := fn(context.WithoutCancel(ctx), exec); err != nil {
		log.ForRecord(ctx, exec.Owner, exec.Key).WithError(err).WithField("level", string(exec.Type)).Error("Erro na cascata de acumulação; ancestrais ficam desatualizados até a próxima gravação")
	}
}

// GetExecution trata execuções de outro dono como inexistentes
func (s *Service) GetExecution(ctx context.Context, id string, owner int) (*domain.Execution, error) {
	exec, err := s.executions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar execução: %w", err)
	}
	if exec == nil || exec.Owner != owner {
		return nil, domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrExecutionNotFound, "execução "+id)
	}
	return exec, nil
}

// GetExecutionByPeriod retorna todas as execuções diárias da semana para DAY;
// nos demais tipos, no máximo um registro
func (s *Service) GetExecutionByPeriod(ctx context.Context, g domain.Granularity, fields domain.PeriodFields, owner int) ([]*domain.Execution, error) {
	key, err := domain.NewPeriodKey(g, fields)
	if err != nil {
		return nil, err
	}

	if g == domain.GranularityDay {
		week, _ := key.Parent()
		execs, err := s.executions.ListChildren(ctx, week, owner)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar execuções da semana: %w", err)
		}
		return execs, nil
	}

	exec, err := s.executions.FindByPeriod(ctx, key, owner)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar execução: %w", err)
	}
	if exec == nil {
		return []*domain.Execution{}, nil
	}
	return []*domain.Execution{exec}, nil
}
