package metrics

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"credit-tracker/internal/models"
)

// SortField names a sortable account column
type SortField string

const (
	FieldNone                  SortField = ""
	FieldAccountName           SortField = "accountName"
	FieldAccountNumber         SortField = "accountNumber"
	FieldCreditLimit           SortField = "creditLimit"
	FieldAmountOwed            SortField = "amountOwed"
	FieldAmountAvailable       SortField = "amountAvailable"
	FieldMinimumMonthlyPayment SortField = "minimumMonthlyPayment"
	FieldInterestRate          SortField = "interestRate"
	FieldRateExpiration        SortField = "rateExpiration"
	FieldRewards               SortField = "rewards"
	FieldLastUsed              SortField = "lastUsed"
	FieldStatementCycleDay     SortField = "statementCycleDay"
)

// SortDirection is ascending or descending
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

var ErrUnknownSortField = errors.New("unknown sort field")

var stringFields = map[SortField]func(models.Account) string{
	FieldAccountName:    func(a models.Account) string { return a.AccountName },
	FieldAccountNumber:  func(a models.Account) string { return a.AccountNumber },
	FieldRateExpiration: func(a models.Account) string { return a.RateExpiration },
}

var numericFields = map[SortField]func(models.Account) float64{
	FieldCreditLimit:           func(a models.Account) float64 { return a.CreditLimit },
	FieldAmountOwed:            func(a models.Account) float64 { return a.AmountOwed },
	FieldAmountAvailable:       AmountAvailable,
	FieldMinimumMonthlyPayment: func(a models.Account) float64 { return a.MinimumMonthlyPayment },
	FieldInterestRate:          func(a models.Account) float64 { return a.InterestRate },
	FieldRewards:               func(a models.Account) float64 { return a.Rewards },
	FieldLastUsed:              func(a models.Account) float64 { return intOrZero(a.LastUsed) },
	FieldStatementCycleDay:     func(a models.Account) float64 { return intOrZero(a.StatementCycleDay) },
}

func intOrZero(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

// ParseSortField validates a column name. The empty string means natural order.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if f == FieldNone {
		return f, nil
	}
	if _, ok := stringFields[f]; ok {
		return f, nil
	}
	if _, ok := numericFields[f]; ok {
		return f, nil
	}
	return FieldNone, fmt.Errorf("%q: %w", s, ErrUnknownSortField)
}

// SortState is the active column and direction of the account table
type SortState struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// Select returns the state after the user picks a column: the same column flips
// direction, a new column starts ascending.
func (s SortState) Select(field SortField) SortState {
	if s.Field == field && field != FieldNone {
		if s.Direction == Ascending {
			return SortState{Field: field, Direction: Descending}
		}
		return SortState{Field: field, Direction: Ascending}
	}
	return SortState{Field: field, Direction: Ascending}
}

// Sort returns a stably sorted copy of accounts. Without an active column the
// accounts are ordered by position.
func Sort(accounts []models.Account, state SortState) []models.Account {
	out := models.CloneAccounts(accounts)

	less := lessFunc(state.Field)
	if less == nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
		return out
	}

	desc := state.Direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field SortField) func(a, b models.Account) bool {
	if get, ok := stringFields[field]; ok {
		// collators are not safe for concurrent use, so one is built per sort
		c := collate.New(language.English)
		return func(a, b models.Account) bool {
			return c.CompareString(get(a), get(b)) < 0
		}
	}
	if get, ok := numericFields[field]; ok {
		return func(a, b models.Account) bool {
			return get(a) < get(b)
		}
	}
	return nil
}
