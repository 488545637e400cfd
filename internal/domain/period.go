// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/plan-tracker-api/internal/period"
	"github.com/vfg2006/plan-tracker-api/pkg/apiErrors"
)

// Granularity identifica um dos cinco níveis da hierarquia de períodos
type Granularity string

const (
	GranularityYear    Granularity = "YEAR"
	GranularityQuarter Granularity = "QUARTER"
	GranularityMonth   Granularity = "MONTH"
	GranularityWeek    Granularity = "WEEK"
	GranularityDay     Granularity = "DAY"
)

// ParseGranularity converte o tipo recebido do cliente, sem diferenciar maiúsculas
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToUpper(strings.TrimSpace(s)))
	switch g {
	case GranularityYear, GranularityQuarter, GranularityMonth, GranularityWeek, GranularityDay:
		return g, nil
	}

	return "", NewTrackingError(ErrValidation, apiErrors.ErrMissingRequiredData, fmt.Sprintf("tipo de período inválido: %q", s))
}

// IsPlanGranularity indica se existem planos para o nível (apenas MONTH, WEEK e DAY)
func (g Granularity) IsPlanGranularity() bool {
	return g == GranularityMonth || g == GranularityWeek || g == GranularityDay
}

// Child retorna o nível imediatamente abaixo
func (g Granularity) Child() (Granularity, bool) {
	switch g {
	case GranularityYear:
		return GranularityQuarter, true
	case GranularityQuarter:
		return GranularityMonth, true
	case GranularityMonth:
		return GranularityWeek, true
	case GranularityWeek:
		return GranularityDay, true
	}
	return "", false
}

// PeriodKey é a identidade de um período em uma granularidade.
// As implementações são fechadas: YearKey, QuarterKey, MonthKey, WeekKey e DayKey.
type PeriodKey interface {
	Granularity() Granularity
	// Parent retorna o período imediatamente acima; false para YEAR
	Parent() (PeriodKey, bool)
	// String é a chave estável gravada em period_key
	String() string
	// Columns são os filtros de coluna que localizam o período no banco
	Columns() map[string]any

	sealed()
}

type YearKey struct {
	Year int `json:"year"`
}

type QuarterKey struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

type MonthKey struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
	Month   int `json:"month"`
}

// WeekKey mantém mês e trimestre de forma redundante para facilitar a busca dos ancestrais
type WeekKey struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
	Month   int `json:"month"`
	Week    int `json:"week"`
}

type DayKey struct {
	Year    int       `json:"year"`
	Quarter int       `json:"quarter"`
	Month   int       `json:"month"`
	Week    int       `json:"week"`
	Date    time.Time `json:"date"`
}

func (YearKey) Granularity() Granularity    { return GranularityYear }
func (QuarterKey) Granularity() Granularity { return GranularityQuarter }
func (MonthKey) Granularity() Granularity   { return GranularityMonth }
func (WeekKey) Granularity() Granularity    { return GranularityWeek }
func (DayKey) Granularity() Granularity     { return GranularityDay }

func (YearKey) Parent() (PeriodKey, bool) { return nil, false }

func (k QuarterKey) Parent() (PeriodKey, bool) {
	return YearKey{Year: k.Year}, true
}

func (k MonthKey) Parent() (PeriodKey, bool) {
	return QuarterKey{Year: k.Year, Quarter: k.Quarter}, true
}

func (k WeekKey) Parent() (PeriodKey, bool) {
	return MonthKey{Year: k.Year, Quarter: k.Quarter, Month: k.Month}, true
}

func (k DayKey) Parent() (PeriodKey, bool) {
	return WeekKey{Year: k.Year, Quarter: k.Quarter, Month: k.Month, Week: k.Week}, true
}

func (k YearKey) String() string { return fmt.Sprintf("YEAR:%04d", k.Year) }

func (k QuarterKey) String() string { return fmt.Sprintf("QUARTER:%04d-Q%d", k.Year, k.Quarter) }

func (k MonthKey) String() string { return fmt.Sprintf("MONTH:%04d-%02d", k.Year, k.Month) }

func (k WeekKey) String() string {
	return fmt.Sprintf("WEEK:%04d-%02d-W%d", k.Year, k.Month, k.Week)
}

func (k DayKey) String() string { return "DAY:" + k.Date.Format("2006-01-02") }

func (k YearKey) Columns() map[string]any {
	return map[string]any{"year": k.Year}
}

func (k QuarterKey) Columns() map[string]any {
	return map[string]any{"year": k.Year, "quarter": k.Quarter}
}

func (k MonthKey) Columns() map[string]any {
	return map[string]any{"year": k.Year, "quarter": k.Quarter, "month": k.Month}
}

func (k WeekKey) Columns() map[string]any {
	return map[string]any{"year": k.Year, "quarter": k.Quarter, "month": k.Month, "week": k.Week}
}

func (k DayKey) Columns() map[string]any {
	return map[string]any{"year": k.Year, "quarter": k.Quarter, "month": k.Month, "week": k.Week, "date": k.Date}
}

func (YearKey) sealed()    {}
func (QuarterKey) sealed() {}
func (MonthKey) sealed()   {}
func (WeekKey) sealed()    {}
func (DayKey) sealed()     {}

// PeriodFields são os campos de período enviados pelo cliente.
// Apenas os campos exigidos pela granularidade são considerados.
type PeriodFields struct {
	Year    *int    `json:"year,omitempty"`
	Quarter *int    `json:"quarter,omitempty"`
	Month   *int    `json:"month,omitempty"`
	Week    *int    `json:"week,omitempty"`
	Date    *string `json:"date,omitempty"`

	// WeekOfMonth é o nome usado pelos planos semanais; equivale a Week
	WeekOfMonth *int `json:"weekOfMonth,omitempty"`
}

// WeekValue retorna a semana informada em qualquer um dos dois campos
func (f PeriodFields) WeekValue() *int {
	if f.Week != nil {
		return f.Week
	}
	return f.WeekOfMonth
}

// PeriodColumns é a forma "achatada" de uma chave, usada na leitura/escrita das linhas do banco
type PeriodColumns struct {
	Year    int
	Quarter *int
	Month   *int
	Week    *int
	Date    *time.Time
}

// ColumnsOf achata uma chave de período nas colunas da tabela
func ColumnsOf(key PeriodKey) PeriodColumns {
	switch k := key.(type) {
	case YearKey:
		return PeriodColumns{Year: k.Year}
	case QuarterKey:
		return PeriodColumns{Year: k.Year, Quarter: intPtr(k.Quarter)}
	case MonthKey:
		return PeriodColumns{Year: k.Year, Quarter: intPtr(k.Quarter), Month: intPtr(k.Month)}
	case WeekKey:
		return PeriodColumns{Year: k.Year, Quarter: intPtr(k.Quarter), Month: intPtr(k.Month), Week: intPtr(k.Week)}
	case DayKey:
		date := k.Date
		return PeriodColumns{Year: k.Year, Quarter: intPtr(k.Quarter), Month: intPtr(k.Month), Week: intPtr(k.Week), Date: &date}
	}
	return PeriodColumns{}
}

// KeyFromColumns reconstrói a chave a partir de uma linha do banco
func KeyFromColumns(g Granularity, c PeriodColumns) (PeriodKey, error) {
	missing := func(field string) error {
		return fmt.Errorf("registro %s sem o campo %s", g, field)
	}

	switch g {
	case GranularityYear:
		return YearKey{Year: c.Year}, nil
	case GranularityQuarter:
		if c.Quarter == nil {
			return nil, missing("quarter")
		}
		return QuarterKey{Year: c.Year, Quarter: *c.Quarter}, nil
	case GranularityMonth:
		if c.Quarter == nil || c.Month == nil {
			return nil, missing("month")
		}
		return MonthKey{Year: c.Year, Quarter: *c.Quarter, Month: *c.Month}, nil
	case GranularityWeek:
		if c.Quarter == nil || c.Month == nil || c.Week == nil {
			return nil, missing("week")
		}
		return WeekKey{Year: c.Year, Quarter: *c.Quarter, Month: *c.Month, Week: *c.Week}, nil
	case GranularityDay:
		if c.Quarter == nil || c.Month == nil || c.Week == nil || c.Date == nil {
			return nil, missing("date")
		}
		date := c.Date.UTC()
		return DayKey{Year: c.Year, Quarter: *c.Quarter, Month: *c.Month, Week: *c.Week, Date: date}, nil
	}
	return nil, fmt.Errorf("granularidade desconhecida: %s", g)
}

func intPtr(v int) *int {
	return &v
}

// NewPeriodKey monta a chave do período exigindo apenas os campos da granularidade.
// DAY é resolvido a partir de date; o trimestre é sempre derivado do mês.
func NewPeriodKey(g Granularity, f PeriodFields) (PeriodKey, error) {
	if g == GranularityDay {
		if f.Date == nil {
			return nil, missingField(g, "date")
		}
		resolved, err := period.ResolveString(*f.Date)
		if err != nil {
			return nil, NewTrackingError(ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("data inválida: %q", *f.Date))
		}
		return DayKeyOf(resolved), nil
	}

	if f.Year == nil {
		return nil, missingField(g, "year")
	}
	year := *f.Year
	if year < 1 || year > 9999 {
		return nil, NewTrackingError(ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("ano fora do intervalo: %d", year))
	}

	switch g {
	case GranularityYear:
		return YearKey{Year: year}, nil
	case GranularityQuarter:
		if f.Quarter == nil {
			return nil, missingField(g, "quarter")
		}
		if *f.Quarter < 1 || *f.Quarter > 4 {
			return nil, NewTrackingError(ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("trimestre fora do intervalo: %d", *f.Quarter))
		}
		return QuarterKey{Year: year, Quarter: *f.Quarter}, nil
	}

	if f.Month == nil {
		return nil, missingField(g, "month")
	}
	month := *f.Month
	if month < 1 || month > 12 {
		return nil, NewTrackingError(ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("mês fora do intervalo: %d", month))
	}

	switch g {
	case GranularityMonth:
		return MonthKey{Year: year, Quarter: period.QuarterOf(month), Month: month}, nil
	case GranularityWeek:
		week := f.WeekValue()
		if week == nil {
			return nil, missingField(g, "week")
		}
		if *week < 1 || *week > period.WeeksInMonth(year, month) {
			return nil, NewTrackingError(ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("semana %d não existe em %02d/%04d", *week, month, year))
		}
		return WeekKey{Year: year, Quarter: period.QuarterOf(month), Month: month, Week: *week}, nil
	}

	return nil, NewTrackingError(ErrValidation, apiErrors.ErrMissingRequiredData, fmt.Sprintf("tipo de período inválido: %q", g))
}

// DayKeyOf converte o período resolvido na chave diária
func DayKeyOf(r period.Resolved) DayKey {
	return DayKey{Year: r.Year, Quarter: r.Quarter, Month: r.Month, Week: r.Week, Date: r.Date}
}

func missingField(g Granularity, field string) error {
	return NewTrackingError(ErrValidation, apiErrors.ErrMissingRequiredData, fmt.Sprintf("campo %s é obrigatório para o tipo %s", field, g))
}

// MarshalJSON grava a data diária no formato YYYY-MM-DD
func (k DayKey) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(struct {
		Year    int    `json:"year"`
		Quarter int    `json:"quarter"`
		Month   int    `json:"month"`
		Week    int    `json:"week"`
		Date    string `json:"date"`
	}{k.Year, k.Quarter, k.Month, k.Week, k.Date.Format("2006-01-02")})
}
