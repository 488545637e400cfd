package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		day      int
		expected int
	}{
		{
			name:     "Mês começando no sábado - dia 1 fica na semana 1",
			year:     2025,
			month:    time.November,
			day:      1,
			expected: 1,
		},
		{
			name:     "Mês começando no sábado - domingo dia 2 abre a semana 2",
			year:     2025,
			month:    time.November,
			day:      2,
			expected: 2,
		},
		{
			name:     "Mês começando no domingo - dia 7 ainda é semana 1",
			year:     2026,
			month:    time.March,
			day:      7,
			expected: 1,
		},
		{
			name:     "Mês começando no domingo - dia 8 é semana 2",
			year:     2026,
			month:    time.March,
			day:      8,
			expected: 2,
		},
		{
			name:     "Último dia de novembro de 2025 cai na semana 6",
			year:     2025,
			month:    time.November,
			day:      30,
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekOfMonth(tt.year, tt.month, tt.day))
		})
	}
}

func TestWeekOfMonth_MatchesFormulaForSaturdayStart(t *testing.T) {
	first := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, first.Weekday())

	for day := 1; day <= 30; day++ {
		expected := (day + 6 + 6) / 7
		assert.Equal(t, expected, WeekOfMonth(2025, time.November, day), "dia %d", day)
	}
}

func TestQuarterOf(t *testing.T) {
	expected := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
	for month := 1; month <= 12; month++ {
		assert.Equal(t, expected[month-1], QuarterOf(month), "mês %d", month)
	}
}

func TestResolveString(t *testing.T) {
	t.Run("Data YYYY-MM-DD é interpretada literalmente", func(t *testing.T) {
		resolved, err := ResolveString("2026-03-02")
		require.NoError(t, err)

		assert.Equal(t, 2026, resolved.Year)
		assert.Equal(t, 3, resolved.Month)
		assert.Equal(t, 1, resolved.Quarter)
		assert.Equal(t, 1, resolved.Week)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), resolved.Date)
	})

	t.Run("Data com horário usa os campos locais", func(t *testing.T) {
		original := time.Local
		time.Local = time.UTC
		defer func() { time.Local = original }()

		resolved, err := ResolveString("2026-12-31T23:30:00Z")
		require.NoError(t, err)

		assert.Equal(t, 2026, resolved.Year)
		assert.Equal(t, 12, resolved.Month)
		assert.Equal(t, 4, resolved.Quarter)
		assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), resolved.Date)
	})

	t.Run("Data inválida retorna erro", func(t *testing.T) {
		for _, input := range []string{"", "2026-02-30", "ontem", "2026/03/02"} {
			_, err := ResolveString(input)
			assert.ErrorIs(t, err, ErrInvalidDate, input)
		}
	})
}

func TestResolve_ReemitsUTCMidnight(t *testing.T) {
	original := time.Local
	time.Local = time.FixedZone("BRT", -3*60*60)
	defer func() { time.Local = original }()

	// 01:00 UTC de 1º de abril ainda é 31 de março no horário local
	resolved := Resolve(time.Date(2026, 4, 1, 1, 0, 0, 0, time.UTC))

	assert.Equal(t, 3, resolved.Month)
	assert.Equal(t, 1, resolved.Quarter)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), resolved.Date)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name          string
		year, month   int
		week          int
		expectedStart time.Time
		expectedEnd   time.Time
		ok            bool
	}{
		{
			name:          "Semana 1 de novembro de 2025 tem um único dia",
			year:          2025,
			month:         11,
			week:          1,
			expectedStart: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			ok:            true,
		},
		{
			name:          "Semana 2 de novembro de 2025 vai de domingo a sábado",
			year:          2025,
			month:         11,
			week:          2,
			expectedStart: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC),
			ok:            true,
		},
		{
			name:          "Última semana é cortada no fim do mês",
			year:          2026,
			month:         3,
			week:          5,
			expectedStart: time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			ok:            true,
		},
		{
			name:  "Semana inexistente",
			year:  2026,
			month: 3,
			week:  6,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := WeekBounds(tt.year, tt.month, tt.week)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expectedStart, start)
				assert.Equal(t, tt.expectedEnd, end)
			}
		})
	}
}

func TestWeeksInMonth(t *testing.T) {
	assert.Equal(t, 6, WeeksInMonth(2025, 11))
	assert.Equal(t, 5, WeeksInMonth(2026, 3))
	// fevereiro de 2026 começa no domingo e tem exatamente 4 semanas
	assert.Equal(t, 4, WeeksInMonth(2026, 2))
}
