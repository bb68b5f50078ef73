// Package metrics derives display values from accounts: available credit,
// utilization, collection totals, sorting and upcoming payments.
package metrics

import (
	"math"

	"github.com/shopspring/decimal"

	"credit-tracker/internal/models"
)

// AmountAvailable is the credit limit minus the amount owed, with negative inputs
// clamped to zero. An over-limit account yields a negative value.
func AmountAvailable(a models.Account) float64 {
	limit := decimal.NewFromFloat(math.Max(a.CreditLimit, 0))
	owed := decimal.NewFromFloat(math.Max(a.AmountOwed, 0))
	return limit.Sub(owed).InexactFloat64()
}

// UtilizationPercent returns amountOwed/creditLimit as a whole percentage, rounded
// half away from zero. ok is false when the credit limit is not positive.
func UtilizationPercent(a models.Account) (percent int, ok bool) {
	return utilization(a.AmountOwed, a.CreditLimit)
}

func utilization(owed, limit float64) (int, bool) {
	if limit <= 0 {
		return 0, false
	}
	ratio := decimal.NewFromFloat(owed).Div(decimal.NewFromFloat(limit)).Mul(decimal.NewFromInt(100))
	return int(ratio.Round(0).IntPart()), true
}

// Totals sums the collection. Utilization is computed on the totals and left nil
// when the total credit limit is zero.
func Totals(accounts []models.Account) models.SummaryTotals {
	limit, owed, available, minimum := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero

	for _, a := range accounts {
		limit = limit.Add(decimal.NewFromFloat(a.CreditLimit))
		owed = owed.Add(decimal.NewFromFloat(a.AmountOwed))
		available = available.Add(decimal.NewFromFloat(AmountAvailable(a)))
		minimum = minimum.Add(decimal.NewFromFloat(a.MinimumMonthlyPayment))
	}

	totals := models.SummaryTotals{
		CreditLimit:           limit.InexactFloat64(),
		AmountOwed:            owed.InexactFloat64(),
		AmountAvailable:       available.InexactFloat64(),
		MinimumMonthlyPayment: minimum.InexactFloat64(),
		AccountCount:          len(accounts),
	}

	if pct, ok := utilization(totals.AmountOwed, totals.CreditLimit); ok {
		totals.UtilizationPercent = &pct
	}

	return totals
}
