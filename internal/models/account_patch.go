package models

import "slices"

// Optional fields that a patch can blank through AccountPatch.Clear
const (
	FieldAccountNumber     = "accountNumber"
	FieldRateExpiration    = "rateExpiration"
	FieldLastUsed          = "lastUsed"
	FieldStatementCycleDay = "statementCycleDay"
)

// ClearableFields lists the JSON names accepted in AccountPatch.Clear
var ClearableFields = []string{FieldAccountNumber, FieldRateExpiration, FieldLastUsed, FieldStatementCycleDay}

// AccountPatch is a partial account payload. Nil fields are left untouched;
// optional fields named in Clear are blanked after the present fields are copied.
// The id and position are owned by the store and cannot be patched.
type AccountPatch struct {
	AccountName           *string  `json:"accountName,omitempty"`
	AccountNumber         *string  `json:"accountNumber,omitempty"`
	CreditLimit           *float64 `json:"creditLimit,omitempty"`
	AmountOwed            *float64 `json:"amountOwed,omitempty"`
	MinimumMonthlyPayment *float64 `json:"minimumMonthlyPayment,omitempty"`
	InterestRate          *float64 `json:"interestRate,omitempty"`
	RateExpiration        *string  `json:"rateExpiration,omitempty"`
	Rewards               *float64 `json:"rewards,omitempty"`
	LastUsed              *int     `json:"lastUsed,omitempty"`
	StatementCycleDay     *int     `json:"statementCycleDay,omitempty"`
	Clear                 []string `json:"clear,omitempty"`
}

// Apply copies every present field of the patch onto the account
func (p AccountPatch) Apply(a *Account) {
	if p.AccountName != nil {
		a.AccountName = *p.AccountName
	}
	if p.AccountNumber != nil {
		a.AccountNumber = *p.AccountNumber
	}
	if p.CreditLimit != nil {
		a.CreditLimit = *p.CreditLimit
	}
	if p.AmountOwed != nil {
		a.AmountOwed = *p.AmountOwed
	}
	if p.MinimumMonthlyPayment != nil {
		a.MinimumMonthlyPayment = *p.MinimumMonthlyPayment
	}
	if p.InterestRate != nil {
		a.InterestRate = *p.InterestRate
	}
	if p.RateExpiration != nil {
		a.RateExpiration = *p.RateExpiration
	}
	if p.Rewards != nil {
		a.Rewards = *p.Rewards
	}
	if p.LastUsed != nil {
		v := *p.LastUsed
		a.LastUsed = &v
	}
	if p.StatementCycleDay != nil {
		v := *p.StatementCycleDay
		a.StatementCycleDay = &v
	}

	for _, field := range p.Clear {
		switch field {
		case FieldAccountNumber:
			a.AccountNumber = ""
		case FieldRateExpiration:
			a.RateExpiration = ""
		case FieldLastUsed:
			a.LastUsed = nil
		case FieldStatementCycleDay:
			a.StatementCycleDay = nil
		}
	}
}

// IsEmpty reports whether the patch neither sets nor clears any field
func (p AccountPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields lists the JSON names of the fields the patch sets or clears
func (p AccountPatch) Fields() []string {
	var fields []string
	add := func(present bool, name string) {
		if present {
			fields = append(fields, name)
		}
	}
	add(p.AccountName != nil, "accountName")
	add(p.AccountNumber != nil, "accountNumber")
	add(p.CreditLimit != nil, "creditLimit")
	add(p.AmountOwed != nil, "amountOwed")
	add(p.MinimumMonthlyPayment != nil, "minimumMonthlyPayment")
	add(p.InterestRate != nil, "interestRate")
	add(p.RateExpiration != nil, "rateExpiration")
	add(p.Rewards != nil, "rewards")
	add(p.LastUsed != nil, "lastUsed")
	add(p.StatementCycleDay != nil, "statementCycleDay")
	for _, field := range p.Clear {
		add(slices.Contains(ClearableFields, field) && !slices.Contains(fields, field), field)
	}
	return fields
}

// NewAccount builds an unsaved account from a creation patch
func NewAccount(p AccountPatch) Account {
	var a Account
	p.Apply(&a)
	return a
}

// Float64 returns a pointer to v, for building patches
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v, for building patches
func String(v string) *string { return &v }

// Int returns a pointer to v, for building patches
func Int(v int) *int { return &v }
