package cli

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"credit-tracker/internal/metrics"
	"credit-tracker/internal/models"
)

// formatMoney renders a major-unit amount with the currency's symbol, grouping
// and fraction digits
func formatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

func formatRate(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(2) + "%"
}

func formatUtilization(a models.Account) string {
	pct, ok := metrics.UtilizationPercent(a)
	if !ok {
		return "-"
	}
	if a.IsOverLimit() {
		return fmt.Sprintf("%d%% over", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
