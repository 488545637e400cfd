package domain

import (
	"math"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Número", input: `12.5`, expected: 12.5},
		{name: "String numérica", input: `"40"`, expected: 40},
		{name: "String com vírgula decimal", input: `"7,5"`, expected: 7.5},
		{name: "String com escape unicode", input: `"1\u0030"`, expected: 10},
		{name: "String vazia vira zero", input: `""`, expected: 0},
		{name: "Texto inválido vira zero", input: `"abc"`, expected: 0},
		{name: "Booleano vira zero", input: `true`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.expected, f.Float64())
		})
	}
}

func TestMetricsInput_NormalizesBlankAndInvalidValues(t *testing.T) {
	body := `{
		"income": {"amount": "40"},
		"bidding": {"bidCount": "", "bidAmount": "x", "offeredJobAmount": 3},
		"qualification": {"majorHours": null, "englishHours": "1.5"}
	}`

	var in MetricsInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	m := in.Metrics()
	assert.Equal(t, 40.0, m.Income.Amount)
	assert.Equal(t, 0.0, m.Bidding.BidCount)
	assert.Equal(t, 0.0, m.Bidding.BidAmount)
	assert.Equal(t, 3.0, m.Bidding.OfferedJobAmount)
	assert.Equal(t, 0.0, m.Qualification.MajorHours)
	assert.Equal(t, 1.5, m.Qualification.EnglishHours)
	assert.Equal(t, Acquisition{}, m.Acquisition)
}

func TestMetricsPatch_MergesOnlyProvidedFields(t *testing.T) {
	current := Metrics{
		Income:      Income{Amount: 100},
		Acquisition: Acquisition{CallNumber: 4, PostNumber: 2},
	}

	var in MetricsInput
	require.NoError(t, json.Unmarshal([]byte(`{"acquisition": {"callNumber": 9}}`), &in))

	updated := in.Patch().Apply(current)

	assert.Equal(t, 100.0, updated.Income.Amount)
	assert.Equal(t, 9.0, updated.Acquisition.CallNumber)
	assert.Equal(t, 2.0, updated.Acquisition.PostNumber)
}

func TestSumMetrics(t *testing.T) {
	items := []Metrics{
		{Income: Income{Amount: 10}, Qualification: Qualification{MajorHours: 1}},
		{Income: Income{Amount: 20}},
		{},
		{Income: Income{Amount: 5}, Qualification: Qualification{MajorHours: math.NaN()}},
	}

	total := SumMetrics(items)

	assert.Equal(t, 35.0, total.Income.Amount)
	assert.Equal(t, 1.0, total.Qualification.MajorHours)
}
