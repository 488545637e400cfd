package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/internal/period"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Colunas de período compartilhadas por plans e executions
var periodColumns = []string{"type", "period_key", "year", "quarter", "month", "week", "date"}

// periodValues retorna os valores na mesma ordem de periodColumns
func periodValues(key domain.PeriodKey) []any {
	c := domain.ColumnsOf(key)
	return []any{string(key.Granularity()), key.String(), c.Year, c.Quarter, c.Month, c.Week, c.Date}
}

// periodRow recebe as colunas de período de uma linha
type periodRow struct {
	Type    string
	Columns domain.PeriodColumns
}

func (p *periodRow) dest() []any {
	var periodKey string
	return []any{&p.Type, &periodKey, &p.Columns.Year, &p.Columns.Quarter, &p.Columns.Month, &p.Columns.Week, &p.Columns.Date}
}

func (p *periodRow) key() (domain.PeriodKey, error) {
	g, err := domain.ParseGranularity(p.Type)
	if err != nil {
		return nil, err
	}
	return domain.KeyFromColumns(g, p.Columns)
}

// childrenFilter seleciona os registros do nível imediatamente abaixo do período pai.
// Os dias de uma semana também ficam presos ao intervalo de datas da semana.
func childrenFilter(parent domain.PeriodKey, owner int) (squirrel.Sqlizer, error) {
	child, ok := parent.Granularity().Child()
	if !ok {
		return nil, fmt.Errorf("o nível %s não possui filhos", parent.Granularity())
	}

	filter := squirrel.Eq{"type": string(child), "owner_id": owner}
	for column, value := range parent.Columns() {
		filter[column] = value
	}

	week, isWeek := parent.(domain.WeekKey)
	if !isWeek {
		return filter, nil
	}

	start, end, ok := period.WeekBounds(week.Year, week.Month, week.Week)
	if !ok {
		return nil, fmt.Errorf("semana inexistente: %s", week)
	}
	return squirrel.And{
		filter,
		squirrel.GtOrEq{"date": start},
		squirrel.LtOrEq{"date": end},
	}, nil
}

func encodeMetrics(m domain.Metrics) ([]byte, error) {
	data, err := json.Marshal(m.Normalize())
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}
	return data, nil
}

func decodeMetrics(data []byte) (domain.Metrics, error) {
	var m domain.Metrics
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("erro ao deserializar métricas: %w", err)
	}
	return m.Normalize(), nil
}
