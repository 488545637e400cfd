// Package accumulating recalcula as execuções ancestrais a partir dos filhos.
//
// Cada passo soma novamente todos os filhos atuais e grava o total no pai, então
// repetir um passo sem mudança nos filhos produz o mesmo resultado.
package accumulating

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/plan-tracker-api/infrastructure/repository"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/log"
	"github.com/vfg2006/plan-tracker-api/pkg/metrics"
)

type Accumulator interface {
	AccumulateDailyToWeekly(ctx context.Context, day *domain.Execution) (*domain.Execution, error)
	AccumulateWeeklyToMonthly(ctx context.Context, week *domain.Execution) (*domain.Execution, error)
	AccumulateMonthlyToQuarterly(ctx context.Context, month *domain.Execution) (*domain.Execution, error)
	AccumulateQuarterlyToYearly(ctx context.Context, quarter *domain.Execution) (*domain.Execution, error)
	TriggerAccumulationCascade(ctx context.Context, day *domain.Execution) error
	AccumulateFrom(ctx context.Context, exec *domain.Execution) error
}

type Engine struct {
	executions repository.ExecutionRepository
	metrics    *metrics.CascadeMetrics
}

func NewEngine(executions repository.ExecutionRepository, cascadeMetrics *metrics.CascadeMetrics) *Engine {
	return &Engine{
		executions: executions,
		metrics:    cascadeMetrics,
	}
}

// AccumulateDailyToWeekly soma os dias da semana do registro diário na execução semanal.
// Sem execução semanal a cascata para: retorna nil, nil e registra um aviso.
func (e *Engine) AccumulateDailyToWeekly(ctx context.Context, day *domain.Execution) (*domain.Execution, error) {
	if err := expectType(day, domain.GranularityDay); err != nil {
		return nil, err
	}

	weekKey, _ := day.Key.Parent()
	level := string(domain.GranularityWeek)

	week, err := e.executions.FindByPeriod(ctx, weekKey, day.Owner)
	if err != nil {
		e.metrics.ObserveFailure(level, err)
		return nil, fmt.Errorf("erro ao buscar execução semanal %s: %w", weekKey, err)
	}

	if week == nil {
		log.ForRecord(ctx, day.Owner, weekKey).WithField("level", level).Warn("Execução semanal inexistente, cascata interrompida")
		e.metrics.ObserveStep(level, metrics.OutcomeHalted)
		return nil, nil
	}

	sum, err := e.sumChildren(ctx, weekKey, day.Owner)
	if err != nil {
		e.metrics.ObserveFailure(level, err)
		return nil, err
	}

	if err := e.executions.UpdateMetrics(ctx, week.ID, sum); err != nil {
		e.metrics.ObserveFailure(level, err)
		return nil, fmt.Errorf("erro ao gravar execução semanal %s: %w", weekKey, err)
	}

	week.Metrics = sum
	e.metrics.ObserveStep(level, metrics.OutcomeUpdated)
	return week, nil
}

// AccumulateWeeklyToMonthly soma as semanas do mês, criando a execução mensal quando falta
func (e *Engine) AccumulateWeeklyToMonthly(ctx context.Context, week *domain.Execution) (*domain.Execution, error) {
	if err := expectType(week, domain.GranularityWeek); err != nil {
		return nil, err
	}
	return e.rollUp(ctx, week)
}

// AccumulateMonthlyToQuarterly soma os meses do trimestre do mesmo dono
func (e *Engine) AccumulateMonthlyToQuarterly(ctx context.Context, month *domain.Execution) (*domain.Execution, error) {
	if err := expectType(month, domain.GranularityMonth); err != nil {
		return nil, err
	}
	return e.rollUp(ctx, month)
}

// AccumulateQuarterlyToYearly soma os trimestres do ano
func (e *Engine) AccumulateQuarterlyToYearly(ctx context.Context, quarter *domain.Execution) (*domain.Execution, error) {
	if err := expectType(quarter, domain.GranularityQuarter); err != nil {
		return nil, err
	}
	return e.rollUp(ctx, quarter)
}

// rollUp grava no pai a soma de todos os irmãos do registro; o pai é criado com o dono do filho
func (e *Engine) rollUp(ctx context.Context, child *domain.Execution) (*domain.Execution, error) {
	parentKey, ok := child.Key.Parent()
	if !ok {
		return nil, fmt.Errorf("o nível %s não possui pai", child.Type)
	}
	level := string(parentKey.Granularity())

	sum, err := e.sumChildren(ctx, parentKey, child.Owner)
	if err != nil {
		e.metrics.ObserveFailure(level, err)
		return nil, err
	}

	parent, created, err := e.executions.UpsertMetrics(ctx, parentKey, child.Owner, sum)
	if err != nil {
		e.metrics.ObserveFailure(level, err)
		return nil, fmt.Errorf("erro ao gravar execução %s: %w", parentKey, err)
	}

	if created {
		log.ForRecord(ctx, child.Owner, parentKey).WithField("level", level).Info("Execução ancestral criada pela cascata")
		e.metrics.ObserveStep(level, metrics.OutcomeCreated)
	} else {
		e.metrics.ObserveStep(level, metrics.OutcomeUpdated)
	}

	return parent, nil
}

func (e *Engine) sumChildren(ctx context.Context, parent domain.PeriodKey, owner int) (domain.Metrics, error) {
	children, err := e.executions.ListChildren(ctx, parent, owner)
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("erro ao listar filhos de %s: %w", parent, err)
	}

	items := make([]domain.Metrics, 0, len(children))
	for _, child := range children {
		items = append(items, child.Metrics)
	}
	return domain.SumMetrics(items), nil
}

// TriggerAccumulationCascade percorre DAY → WEEK → MONTH → QUARTER → YEAR em sequência.
// Um ancestral ausente interrompe a cascata sem erro.
func (e *Engine) TriggerAccumulationCascade(ctx context.Context, day *domain.Execution) error {
	start := time.Now()
	defer e.metrics.ObserveDuration(start)

	current, err := e.AccumulateDailyToWeekly(ctx, day)
	if err != nil || current == nil {
		return err
	}

	steps := []func(context.Context, *domain.Execution) (*domain.Execution, error){
		e.AccumulateWeeklyToMonthly,
		e.AccumulateMonthlyToQuarterly,
		e.AccumulateQuarterlyToYearly,
	}

	for _, step := range steps {
		next, err := step(ctx, current)
		if err != nil {
			return err
		}
		if next == nil {
			log.ForRecord(ctx, day.Owner, current.Key).Warn("Ancestral não retornado, cascata interrompida")
			return nil
		}
		current = next
	}

	log.ForRecord(ctx, day.Owner, day.Key).Debug("Cascata de acumulação concluída")

	return nil
}

// AccumulateFrom sobe um único nível a partir do registro alterado.
// DAY percorre a cascata completa; YEAR não tem pai.
func (e *Engine) AccumulateFrom(ctx context.Context, exec *domain.Execution) error {
	var err error
	switch exec.Type {
	case domain.GranularityDay:
		return e.TriggerAccumulationCascade(ctx, exec)
	case domain.GranularityWeek:
		_, err = e.AccumulateWeeklyToMonthly(ctx, exec)
	case domain.GranularityMonth:
		_, err = e.AccumulateMonthlyToQuarterly(ctx, exec)
	case domain.GranularityQuarter:
		_, err = e.AccumulateQuarterlyToYearly(ctx, exec)
	}
	return err
}

func expectType(exec *domain.Execution, g domain.Granularity) error {
	if exec == nil {
		return fmt.Errorf("execução %s ausente", g)
	}
	if exec.Key == nil || exec.Key.Granularity() != g {
		return fmt.Errorf("esperada execução %s, recebida %s", g, exec.Type)
	}
	return nil
}
