// Package completion calcula o percentual ponderado de conclusão de um plano.
//
// Pesos: receita 5, propostas 2, captação 2, qualificação 1. Receita igual ou
// acima de 100% encerra o cálculo e é devolvida sozinha.
package completion

import (
	"github.com/vfg2006/plan-tracker-api/internal/domain"
	"github.com/vfg2006/plan-tracker-api/pkg/utils"
)

const (
	incomeWeight        = 5
	biddingWeight       = 2
	acquisitionWeight   = 2
	qualificationWeight = 1
	totalWeight         = incomeWeight + biddingWeight + acquisitionWeight + qualificationWeight
)

// Percentage compara o realizado com a meta. Não tem efeitos colaterais nem falha;
// campos ausentes valem zero.
func Percentage(plan, execution domain.Metrics) float64 {
	plan = plan.Normalize()
	execution = execution.Normalize()

	income := ratio(plan.Income.Amount, execution.Income.Amount)
	if income >= 100 {
		return utils.RoundWithTwoDecimalPlace(income)
	}

	bidding := mean(
		ratio(plan.Bidding.OfferedJobAmount, execution.Bidding.OfferedJobAmount),
		ratio(plan.Bidding.OfferedTotalBudget, execution.Bidding.OfferedTotalBudget),
	)
	acquisition := mean(
		ratio(plan.Acquisition.CallNumber, execution.Acquisition.CallNumber),
		ratio(plan.Acquisition.AcquiredPeopleAmount, execution.Acquisition.AcquiredPeopleAmount),
	)
	qualification := mean(
		ratio(plan.Qualification.MajorHours, execution.Qualification.MajorHours),
		ratio(plan.Qualification.EnglishHours, execution.Qualification.EnglishHours),
	)

	weighted := incomeWeight*income +
		biddingWeight*bidding +
		acquisitionWeight*acquisition +
		qualificationWeight*qualification

	return utils.RoundWithTwoDecimalPlace(weighted / totalWeight)
}

// ratio: meta zerada com realizado positivo conta como 100
func ratio(planned, actual float64) float64 {
	if planned <= 0 && actual > 0 {
		return 100
	}
	if actual <= 0 || planned <= 0 {
		return 0
	}
	return 100 * actual / planned
}

func mean(a, b float64) float64 {
	return (a + b) / 2
}
