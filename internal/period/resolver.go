// Package period resolve datas de calendário nos períodos da hierarquia
// (ano, trimestre, mês e semana do mês).
//
// As semanas são ancoradas no domingo e a contagem reinicia a cada mês, então a
// semana 1 pode ter menos de sete dias.
package period

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate indica que a data recebida não pôde ser interpretada
var ErrInvalidDate = errors.New("data inválida")

const dateLayout = "2006-01-02"

// Formatos aceitos além de YYYY-MM-DD; todos são convertidos para o horário local
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Resolved é o período dono de uma data
type Resolved struct {
	Year    int
	Month   int
	Quarter int
	Week    int
	// Date é a data em meia-noite UTC, chave estável independente do fuso do cliente
	Date time.Time
}

// Resolve extrai ano/mês/dia dos campos locais de t
func Resolve(t time.Time) Resolved {
	local := t.In(time.Local)
	return resolveCalendar(local.Year(), local.Month(), local.Day())
}

// ResolveString interpreta YYYY-MM-DD literalmente (sem ajuste de fuso);
// os demais formatos aceitos usam os campos de calendário locais.
func ResolveString(s string) (Resolved, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Resolved{}, ErrInvalidDate
	}

	if len(s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return Resolved{}, ErrInvalidDate
		}
		return resolveCalendar(t.Year(), t.Month(), t.Day()), nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Resolve(t), nil
		}
	}

	return Resolved{}, ErrInvalidDate
}

// WeekOfMonth calcula ceil((dia + dia da semana do dia 1) / 7), com domingo = 0
func WeekOfMonth(year int, month time.Month, day int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	return (day + offset + 6) / 7
}

// QuarterOf retorna ceil(mês/3)
func QuarterOf(month int) int {
	return (month + 2) / 3
}

// WeekBounds retorna o primeiro e o último dia (UTC) da semana do mês.
// ok é false quando a semana não existe no mês.
func WeekBounds(year, month, week int) (start, end time.Time, ok bool) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	lastDay := first.AddDate(0, 1, -1).Day()

	startDay := (week-1)*7 - offset + 1
	endDay := week*7 - offset
	if startDay < 1 {
		startDay = 1
	}
	if endDay > lastDay {
		endDay = lastDay
	}
	if week < 1 || startDay > endDay {
		return time.Time{}, time.Time{}, false
	}

	start = time.Date(year, time.Month(month), startDay, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.Month(month), endDay, 0, 0, 0, 0, time.UTC)
	return start, end, true
}

// WeeksInMonth retorna quantas semanas (ancoradas no domingo) o mês possui
func WeeksInMonth(year, month int) int {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return WeekOfMonth(year, time.Month(month), lastDay)
}

func resolveCalendar(year int, month time.Month, day int) Resolved {
	return Resolved{
		Year:    year,
		Month:   int(month),
		Quarter: QuarterOf(int(month)),
		Week:    WeekOfMonth(year, month, day),
		Date:    time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}
