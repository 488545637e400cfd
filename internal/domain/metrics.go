package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Metrics agrupa os quatro grupos de métricas comuns a planos (metas) e execuções (realizado)
type Metrics struct {
	Income        Income        `json:"income"`
	Bidding       Bidding       `json:"bidding"`
	Acquisition   Acquisition   `json:"acquisition"`
	Qualification Qualification `json:"qualification"`
}

type Income struct {
	Amount float64 `json:"amount"`
}

type Bidding struct {
	BidCount           float64 `json:"bidCount"`
	BidAmount          float64 `json:"bidAmount"`
	OfferedJobAmount   float64 `json:"offeredJobAmount"`
	OfferedTotalBudget float64 `json:"offeredTotalBudget"`
}

type Acquisition struct {
	PostNumber           float64 `json:"postNumber"`
	CallNumber           float64 `json:"callNumber"`
	AcquiredPeopleAmount float64 `json:"acquiredPeopleAmount"`
}

type Qualification struct {
	MajorHours   float64 `json:"majorHours"`
	EnglishHours float64 `json:"englishHours"`
}

// Add soma campo a campo
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Income: Income{Amount: m.Income.Amount + o.Income.Amount},
		Bidding: Bidding{
			BidCount:           m.Bidding.BidCount + o.Bidding.BidCount,
			BidAmount:          m.Bidding.BidAmount + o.Bidding.BidAmount,
			OfferedJobAmount:   m.Bidding.OfferedJobAmount + o.Bidding.OfferedJobAmount,
			OfferedTotalBudget: m.Bidding.OfferedTotalBudget + o.Bidding.OfferedTotalBudget,
		},
		Acquisition: Acquisition{
			PostNumber:           m.Acquisition.PostNumber + o.Acquisition.PostNumber,
			CallNumber:           m.Acquisition.CallNumber + o.Acquisition.CallNumber,
			AcquiredPeopleAmount: m.Acquisition.AcquiredPeopleAmount + o.Acquisition.AcquiredPeopleAmount,
		},
		Qualification: Qualification{
			MajorHours:   m.Qualification.MajorHours + o.Qualification.MajorHours,
			EnglishHours: m.Qualification.EnglishHours + o.Qualification.EnglishHours,
		},
	}
}

// Normalize troca NaN e infinitos por zero
func (m Metrics) Normalize() Metrics {
	for _, f := range m.fields() {
		*f = finiteOrZero(*f)
	}
	return m
}

func (m *Metrics) fields() []*float64 {
	return []*float64{
		&m.Income.Amount,
		&m.Bidding.BidCount,
		&m.Bidding.BidAmount,
		&m.Bidding.OfferedJobAmount,
		&m.Bidding.OfferedTotalBudget,
		&m.Acquisition.PostNumber,
		&m.Acquisition.CallNumber,
		&m.Acquisition.AcquiredPeopleAmount,
		&m.Qualification.MajorHours,
		&m.Qualification.EnglishHours,
	}
}

// SumMetrics soma as métricas de todos os registros; ausentes contam como zero
func SumMetrics(items []Metrics) Metrics {
	total := Metrics{}
	for _, item := range items {
		total = total.Add(item.Normalize())
	}
	return total
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FlexFloat aceita número, string numérica, string vazia ou null.
// Valores em branco ou inválidos viram zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(parseLoose(s))
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(finiteOrZero(v))
	return nil
}

func (f FlexFloat) Float64() float64 {
	return finiteOrZero(float64(f))
}

func parseLoose(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

// MetricsInput é o corpo de métricas enviado pelo cliente; ausentes ficam nil
type MetricsInput struct {
	Income *struct {
		Amount *FlexFloat `json:"amount"`
	} `json:"income"`
	Bidding *struct {
		BidCount           *FlexFloat `json:"bidCount"`
		BidAmount          *FlexFloat `json:"bidAmount"`
		OfferedJobAmount   *FlexFloat `json:"offeredJobAmount"`
		OfferedTotalBudget *FlexFloat `json:"offeredTotalBudget"`
	} `json:"bidding"`
	Acquisition *struct {
		PostNumber           *FlexFloat `json:"postNumber"`
		CallNumber           *FlexFloat `json:"callNumber"`
		AcquiredPeopleAmount *FlexFloat `json:"acquiredPeopleAmount"`
	} `json:"acquisition"`
	Qualification *struct {
		MajorHours   *FlexFloat `json:"majorHours"`
		EnglishHours *FlexFloat `json:"englishHours"`
	} `json:"qualification"`
}

// MetricsPatch carrega apenas os campos que devem ser alterados
type MetricsPatch struct {
	IncomeAmount         *float64
	BidCount             *float64
	BidAmount            *float64
	OfferedJobAmount     *float64
	OfferedTotalBudget   *float64
	PostNumber           *float64
	CallNumber           *float64
	AcquiredPeopleAmount *float64
	MajorHours           *float64
	EnglishHours         *float64
}

// Patch converte a entrada do cliente em um patch, mantendo nil para campos não enviados
func (in MetricsInput) Patch() MetricsPatch {
	p := MetricsPatch{}
	if in.Income != nil {
		p.IncomeAmount = flexPtr(in.Income.Amount)
	}
	if in.Bidding != nil {
		p.BidCount = flexPtr(in.Bidding.BidCount)
		p.BidAmount = flexPtr(in.Bidding.BidAmount)
		p.OfferedJobAmount = flexPtr(in.Bidding.OfferedJobAmount)
		p.OfferedTotalBudget = flexPtr(in.Bidding.OfferedTotalBudget)
	}
	if in.Acquisition != nil {
		p.PostNumber = flexPtr(in.Acquisition.PostNumber)
		p.CallNumber = flexPtr(in.Acquisition.CallNumber)
		p.AcquiredPeopleAmount = flexPtr(in.Acquisition.AcquiredPeopleAmount)
	}
	if in.Qualification != nil {
		p.MajorHours = flexPtr(in.Qualification.MajorHours)
		p.EnglishHours = flexPtr(in.Qualification.EnglishHours)
	}
	return p
}

// Metrics converte a entrada em métricas completas; campos ausentes valem zero
func (in MetricsInput) Metrics() Metrics {
	return in.Patch().Apply(Metrics{})
}

// Apply mescla o patch sobre as métricas atuais
func (p MetricsPatch) Apply(m Metrics) Metrics {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = finiteOrZero(*src)
		}
	}

	set(&m.Income.Amount, p.IncomeAmount)
	set(&m.Bidding.BidCount, p.BidCount)
	set(&m.Bidding.BidAmount, p.BidAmount)
	set(&m.Bidding.OfferedJobAmount, p.OfferedJobAmount)
	set(&m.Bidding.OfferedTotalBudget, p.OfferedTotalBudget)
	set(&m.Acquisition.PostNumber, p.PostNumber)
	set(&m.Acquisition.CallNumber, p.CallNumber)
	set(&m.Acquisition.AcquiredPeopleAmount, p.AcquiredPeopleAmount)
	set(&m.Qualification.MajorHours, p.MajorHours)
	set(&m.Qualification.EnglishHours, p.EnglishHours)

	return m.Normalize()
}

func flexPtr(f *FlexFloat) *float64 {
	if f == nil {
		return nil
	}
	v := f.Float64()
	return &v
}
