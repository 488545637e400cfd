package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/plan-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/plan-tracker-api/pkg/utils"
)

const executionsTable = "executions"

//go:generate mockgen -source=execution.go -destination=mocks/mock_execution.go -package=mocks

type ExecutionRepository interface {
	Create(ctx context.Context, exec *domain.Execution) error
	GetByID(ctx context.Context, id string) (*domain.Execution, error)
	FindByPeriod(ctx context.Context, key domain.PeriodKey, owner int) (*domain.Execution, error)
	ListChildren(ctx context.Context, parent domain.PeriodKey, owner int) ([]*domain.Execution, error)
	UpdateMetrics(ctx context.Context, id string, metrics domain.Metrics) error
	// UpsertMetrics grava as métricas do período, criando o registro quando ainda não existe.
	// created indica se a linha foi inserida.
	UpsertMetrics(ctx context.Context, key domain.PeriodKey, owner int, metrics domain.Metrics) (exec *domain.Execution, created bool, err error)
	// EnsurePlaceholders cria, com métricas zeradas, os períodos que ainda não existem
	EnsurePlaceholders(ctx context.Context, keys []domain.PeriodKey, owner int) error
	// ListDailyWeeksUpdatedSince retorna um registro diário por (dono, semana) alterado desde since
	ListDailyWeeksUpdatedSince(ctx context.Context, since time.Time) ([]*domain.Execution, error)
}

type executionRepository struct {
	conn postgres.Conn
}

func NewExecutionRepository(conn postgres.Conn) ExecutionRepository {
	return &executionRepository{
		conn: conn,
	}
}

func executionColumns() []string {
	columns := append([]string{"id"}, periodColumns...)
	return append(columns, "owner_id", "metrics", "created_at", "updated_at")
}

func executionSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(executionColumns()...).
		From(executionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func executionInsert(id string, key domain.PeriodKey, owner int, metricsJSON []byte) squirrel.InsertBuilder {
	columns := append([]string{"id"}, periodColumns...)
	columns = append(columns, "owner_id", "metrics")

	values := append([]any{id}, periodValues(key)...)
	values = append(values, owner, metricsJSON)

	return squirrel.
		Insert(executionsTable).
		Columns(columns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *executionRepository) Create(ctx context.Context, exec *domain.Execution) error {
	metricsJSON, err := encodeMetrics(exec.Metrics)
	if err != nil {
		return err
	}

	query, args, err := executionInsert(exec.ID, exec.Key, exec.Owner, metricsJSON).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&exec.CreatedAt, &exec.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.NewTrackingError(domain.ErrConflict, apiErrors.ErrExecutionAlreadyExists, exec.Key.String())
		}
		return fmt.Errorf("erro ao inserir execução: %w", err)
	}

	return nil
}

func (r *executionRepository) GetByID(ctx context.Context, id string) (*domain.Execution, error) {
	query, args, err := executionSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	exec, err := scanExecution(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar execução %s: %w", id, err)
	}

	return exec, nil
}

func (r *executionRepository) FindByPeriod(ctx context.Context, key domain.PeriodKey, owner int) (*domain.Execution, error) {
	query, args, err := executionSelect().
		Where(squirrel.Eq{"owner_id": owner, "period_key": key.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	exec, err := scanExecution(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar execução do período %s: %w", key, err)
	}

	return exec, nil
}

// ListChildren retorna as execuções do nível abaixo de parent na ordem de inserção
// (execuções diárias saem ordenadas por data)
func (r *executionRepository) ListChildren(ctx context.Context, parent domain.PeriodKey, owner int) ([]*domain.Execution, error) {
	filter, err := childrenFilter(parent, owner)
	if err != nil {
		return nil, err
	}

	query, args, err := executionSelect().
		Where(filter).
		OrderBy("date ASC NULLS LAST", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExecutions(ctx, query, args...)
}

func (r *executionRepository) UpdateMetrics(ctx context.Context, id string, metrics domain.Metrics) error {
	metricsJSON, err := encodeMetrics(metrics)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(executionsTable).
		Set("metrics", metricsJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar execução %s: %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.NewTrackingError(domain.ErrNotFound, apiErrors.ErrExecutionNotFound, id)
	}

	return nil
}

func (r *executionRepository) UpsertMetrics(ctx context.Context, key domain.PeriodKey, owner int, metrics domain.Metrics) (*domain.Execution, bool, error) {
	metricsJSON, err := encodeMetrics(metrics)
	if err != nil {
		return nil, false, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	returning := executionColumns()
	returning = append(returning, "(xmax = 0) AS inserted")

	query, args, err := executionInsert(id, key, owner, metricsJSON).
		Suffix(`
			ON CONFLICT (owner_id, period_key) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
			RETURNING `+strings.Join(returning, ", ")).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted bool
	exec, err := scanExecution(r.conn.QueryRowContext(ctx, query, args...), &inserted)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, false, fmt.Errorf("erro ao gravar execução do período %s: %w", key, err)
	}

	return exec, inserted, nil
}

func (r *executionRepository) EnsurePlaceholders(ctx context.Context, keys []domain.PeriodKey, owner int) error {
	if len(keys) == 0 {
		return nil
	}

	empty, err := encodeMetrics(domain.Metrics{})
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, key := range keys {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id da execução: %w", err)
			}

			query, args, err := executionInsert(id, key, owner, empty).
				Suffix("ON CONFLICT (owner_id, period_key) DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao criar execução %s: %w", key, err)
			}
		}
		return nil
	})
}

func (r *executionRepository) ListDailyWeeksUpdatedSince(ctx context.Context, since time.Time) ([]*domain.Execution, error) {
	query, args, err := squirrel.
		Select(executionColumns()...).
		Options("DISTINCT ON (owner_id, year, month, week)").
		From(executionsTable).
		Where(squirrel.Eq{"type": string(domain.GranularityDay)}).
		Where(squirrel.GtOrEq{"updated_at": since}).
		OrderBy("owner_id", "year", "month", "week", "updated_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExecutions(ctx, query, args...)
}

func (r *executionRepository) queryExecutions(ctx context.Context, query string, args ...any) ([]*domain.Execution, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	execs := make([]*domain.Execution, 0)
	for rows.Next() {
		exec, err := scanExecution(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		execs = append(execs, exec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return execs, nil
}

func scanExecution(row rowScanner, extra ...any) (*domain.Execution, error) {
	var (
		exec        domain.Execution
		period      periodRow
		metricsJSON []byte
	)

	dest := append([]any{&exec.ID}, period.dest()...)
	dest = append(dest, &exec.Owner, &metricsJSON, &exec.CreatedAt, &exec.UpdatedAt)
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	key, err := period.key()
	if err != nil {
		return nil, err
	}
	exec.Key = key
	exec.Type = key.Granularity()

	exec.Metrics, err = decodeMetrics(metricsJSON)
	if err != nil {
		return nil, err
	}

	return &exec, nil
}
