package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"credit-tracker/internal/dto"
	"credit-tracker/internal/models"
)

// clearableFlags maps the flags of optional fields to the field names a patch clears
var clearableFlags = map[string]string{
	"number":          models.FieldAccountNumber,
	"rate-expiration": models.FieldRateExpiration,
	"last-used":       models.FieldLastUsed,
	"cycle-day":       models.FieldStatementCycleDay,
}

// accountForm binds the account fields to command flags
type accountForm struct {
	name           string
	number         string
	limit          float64
	owed           float64
	minPayment     float64
	rate           float64
	rateExpiration string
	rewards        float64
	lastUsed       int
	cycleDay       int
}

func (f *accountForm) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "account name")
	flags.StringVar(&f.number, "number", "", "account number")
	flags.Float64Var(&f.limit, "limit", 0, "credit limit")
	flags.Float64Var(&f.owed, "owed", 0, "amount owed")
	flags.Float64Var(&f.minPayment, "min-payment", 0, "minimum monthly payment")
	flags.Float64Var(&f.rate, "rate", 0, "interest rate in percent")
	flags.StringVar(&f.rateExpiration, "rate-expiration", "", "promotional rate expiration (YYYY-MM-DD)")
	flags.Float64Var(&f.rewards, "rewards", 0, "rewards balance")
	flags.IntVar(&f.lastUsed, "last-used", 0, "month the card was last used (1-12)")
	flags.IntVar(&f.cycleDay, "cycle-day", 0, "statement cycle day (1-31)")
}

func (f *accountForm) createRequest(flags *pflag.FlagSet) dto.CreateAccountRequest {
	req := dto.CreateAccountRequest{
		AccountName:           f.name,
		AccountNumber:         f.number,
		CreditLimit:           f.limit,
		AmountOwed:            f.owed,
		MinimumMonthlyPayment: f.minPayment,
		InterestRate:          f.rate,
		RateExpiration:        f.rateExpiration,
		Rewards:               f.rewards,
	}
	if flags.Changed("last-used") {
		req.LastUsed = &f.lastUsed
	}
	if flags.Changed("cycle-day") {
		req.StatementCycleDay = &f.cycleDay
	}
	return req
}

// updateRequest carries only the flags the user set
func (f *accountForm) updateRequest(flags *pflag.FlagSet) dto.UpdateAccountRequest {
	var req dto.UpdateAccountRequest
	if flags.Changed("name") {
		req.AccountName = &f.name
	}
	if flags.Changed("number") {
		req.AccountNumber = &f.number
	}
	if flags.Changed("limit") {
		req.CreditLimit = &f.limit
	}
	if flags.Changed("owed") {
		req.AmountOwed = &f.owed
	}
	if flags.Changed("min-payment") {
		req.MinimumMonthlyPayment = &f.minPayment
	}
	if flags.Changed("rate") {
		req.InterestRate = &f.rate
	}
	if flags.Changed("rate-expiration") {
		req.RateExpiration = &f.rateExpiration
	}
	if flags.Changed("rewards") {
		req.Rewards = &f.rewards
	}
	if flags.Changed("last-used") {
		req.LastUsed = &f.lastUsed
	}
	if flags.Changed("cycle-day") {
		req.StatementCycleDay = &f.cycleDay
	}
	return req
}

// clearFields resolves --clear values to field names. A field cannot be set and
// cleared in the same edit.
func clearFields(flags *pflag.FlagSet, names []string) ([]string, error) {
	fields := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimPrefix(strings.TrimSpace(name), "--")
		field, ok := clearableFlags[name]
		if !ok {
			return nil, fmt.Errorf("cannot clear %q: clearable fields are %s", name, clearableFlagNames())
		}
		if flags.Changed(name) {
			return nil, fmt.Errorf("--%s is both set and cleared", name)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func clearableFlagNames() string {
	names := make([]string, 0, len(clearableFlags))
	for name := range clearableFlags {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}
