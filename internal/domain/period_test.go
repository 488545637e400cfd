package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRef(v int) *int {
	return &v
}

func strRef(s string) *string {
	return &s
}

func TestNewPeriodKey(t *testing.T) {
	tests := []struct {
		name        string
		granularity Granularity
		fields      PeriodFields
		expected    PeriodKey
		expectedErr error
	}{
		{
			name:        "YEAR exige apenas o ano",
			granularity: GranularityYear,
			fields:      PeriodFields{Year: intRef(2026), Month: intRef(7), Week: intRef(2)},
			expected:    YearKey{Year: 2026},
		},
		{
			name:        "QUARTER sem trimestre é inválido",
			granularity: GranularityQuarter,
			fields:      PeriodFields{Year: intRef(2026)},
			expectedErr: ErrValidation,
		},
		{
			name:        "MONTH deriva o trimestre do mês",
			granularity: GranularityMonth,
			fields:      PeriodFields{Year: intRef(2026), Month: intRef(8)},
			expected:    MonthKey{Year: 2026, Quarter: 3, Month: 8},
		},
		{
			name:        "WEEK aceita weekOfMonth",
			granularity: GranularityWeek,
			fields:      PeriodFields{Year: intRef(2026), Month: intRef(3), WeekOfMonth: intRef(1)},
			expected:    WeekKey{Year: 2026, Quarter: 1, Month: 3, Week: 1},
		},
		{
			name:        "WEEK inexistente no mês é inválida",
			granularity: GranularityWeek,
			fields:      PeriodFields{Year: intRef(2026), Month: intRef(3), Week: intRef(6)},
			expectedErr: ErrValidation,
		},
		{
			name:        "DAY é resolvido a partir da data",
			granularity: GranularityDay,
			fields:      PeriodFields{Date: strRef("2026-03-02")},
			expected: DayKey{
				Year:    2026,
				Quarter: 1,
				Month:   3,
				Week:    1,
				Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "DAY sem data é inválido",
			granularity: GranularityDay,
			fields:      PeriodFields{Year: intRef(2026), Month: intRef(3)},
			expectedErr: ErrValidation,
		},
		{
			name:        "Mês fora do intervalo é inválido",
			granularity: GranularityMonth,
			fields:      PeriodFields{Year: intRef(2026), Month: intRef(13)},
			expectedErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewPeriodKey(tt.granularity, tt.fields)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, key)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestPeriodKey_ParentChain(t *testing.T) {
	key, err := NewPeriodKey(GranularityDay, PeriodFields{Date: strRef("2026-03-02")})
	require.NoError(t, err)

	var chain []string
	for current, ok := PeriodKey(key), true; ok; current, ok = current.Parent() {
		chain = append(chain, current.String())
	}

	assert.Equal(t, []string{
		"DAY:2026-03-02",
		"WEEK:2026-03-W1",
		"MONTH:2026-03",
		"QUARTER:2026-Q1",
		"YEAR:2026",
	}, chain)
}

func TestKeyFromColumns_RoundTripsEveryGranularity(t *testing.T) {
	day, err := NewPeriodKey(GranularityDay, PeriodFields{Date: strRef("2026-11-14")})
	require.NoError(t, err)

	keys := []PeriodKey{day}
	for current, ok := day.Parent(); ok; current, ok = current.Parent() {
		keys = append(keys, current)
	}

	for _, key := range keys {
		rebuilt, err := KeyFromColumns(key.Granularity(), ColumnsOf(key))
		require.NoError(t, err)
		assert.Equal(t, key, rebuilt)
	}
}

func TestKeyFromColumns_RejectsIncompleteRows(t *testing.T) {
	_, err := KeyFromColumns(GranularityWeek, PeriodColumns{Year: 2026, Quarter: intRef(1), Month: intRef(3)})
	assert.Error(t, err)
}

func TestDayKey_MarshalJSON(t *testing.T) {
	key := DayKey{Year: 2026, Quarter: 1, Month: 3, Week: 1, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)}

	data, err := json.Marshal(key)
	require.NoError(t, err)

	assert.JSONEq(t, `{"year":2026,"quarter":1,"month":3,"week":1,"date":"2026-03-02"}`, string(data))
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity(" week ")
	require.NoError(t, err)
	assert.Equal(t, GranularityWeek, g)
	assert.False(t, GranularityQuarter.IsPlanGranularity())
	assert.True(t, GranularityDay.IsPlanGranularity())

	_, err = ParseGranularity("FORTNIGHT")
	assert.ErrorIs(t, err, ErrValidation)
}
