package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/plan-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

const plansTable = "plans"

const uniqueViolation = "23505"

//go:generate mockgen -source=plan.go -destination=mocks/mock_plan.go -package=mocks

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	FindByPeriod(ctx context.Context, key domain.PeriodKey, owner int) (*domain.Plan, error)
	ListChildren(ctx context.Context, parent domain.PeriodKey, owner int) ([]*domain.Plan, error)
	UpdateMetrics(ctx context.Context, id string, metrics domain.Metrics) error
}

type planRepository struct {
	conn postgres.Queryer
}

func NewPlanRepository(conn postgres.Queryer) PlanRepository {
	return &planRepository{
		conn: conn,
	}
}

func planSelect() squirrel.SelectBuilder {
	columns := append([]string{"id"}, periodColumns...)
	columns = append(columns, "parent_plan_id", "owner_id", "metrics", "deleted", "created_at", "updated_at")

	return squirrel.
		Select(columns...).
		From(plansTable).
		Where(squirrel.Eq{"deleted": false}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *planRepository) Create(ctx context.Context, plan *domain.Plan) error {
	metricsJSON, err := encodeMetrics(plan.Metrics)
	if err != nil {
		return err
	}

	columns := append([]string{"id"}, periodColumns...)
	columns = append(columns, "parent_plan_id", "owner_id", "metrics")

	values := append([]any{plan.ID}, periodValues(plan.Key)...)
	values = append(values, plan.ParentPlanID, plan.Owner, metricsJSON)

	query, args, err := squirrel.
		Insert(plansTable).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrPlanAlreadyExists, plan.Key.String())
		}
		return fmt.Errorf("erro ao inserir plano: %w", err)
	}

	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query, args, err := planSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan, err := scanPlan(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar plano %s: %w", id, err)
	}

	return plan, nil
}

func (r *planRepository) FindByPeriod(ctx context.Context, key domain.PeriodKey, owner int) (*domain.Plan, error) {
	query, args, err := planSelect().
		Where(squirrel.Eq{"owner_id": owner, "period_key": key.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan, err := scanPlan(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar plano do período %s: %w", key, err)
	}

	return plan, nil
}

// ListChildren retorna os planos do nível abaixo de parent, em ordem de data e criação
func (r *planRepository) ListChildren(ctx context.Context, parent domain.PeriodKey, owner int) ([]*domain.Plan, error) {
	filter, err := childrenFilter(parent, owner)
	if err != nil {
		return nil, err
	}

	query, args, err := planSelect().
		Where(filter).
		OrderBy("date ASC NULLS LAST", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar planos de %s: %w", parent, err)
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plano: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *planRepository) UpdateMetrics(ctx context.Context, id string, metrics domain.Metrics) error {
	metricsJSON, err := encodeMetrics(metrics)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(plansTable).
		Set("metrics", metricsJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar plano %s: %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrPlanNotFound, id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var (
		plan        domain.Plan
		period      periodRow
		metricsJSON []byte
	)

	dest := append([]any{&plan.ID}, period.dest()...)
	dest = append(dest, &plan.ParentPlanID, &plan.Owner, &metricsJSON, &plan.Deleted, &plan.CreatedAt, &plan.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	key, err := period.key()
	if err != nil {
		return nil, err
	}
	plan.Key = key
	plan.Type = key.Granularity()

	plan.Metrics, err = decodeMetrics(metricsJSON)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}
