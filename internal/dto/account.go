package dto

import (
	"credit-tracker/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	AccountName           string  `json:"accountName" validate:"required,not_blank,max=100"`
	AccountNumber         string  `json:"accountNumber" validate:"omitempty,max=64"`
	CreditLimit           float64 `json:"creditLimit" validate:"required,finite,gt=0"`
	AmountOwed            float64 `json:"amountOwed" validate:"finite,gte=0"`
	MinimumMonthlyPayment float64 `json:"minimumMonthlyPayment" validate:"finite,gte=0"`
	InterestRate          float64 `json:"interestRate" validate:"finite,gte=0"`
	RateExpiration        string  `json:"rateExpiration" validate:"omitempty,iso_date"`
	Rewards               float64 `json:"rewards" validate:"finite,gte=0"`
	LastUsed              *int    `json:"lastUsed" validate:"omitempty,month"`
	StatementCycleDay     *int    `json:"statementCycleDay" validate:"omitempty,cycle_day"`
}

// ToPatch converts the request into a full creation patch
func (r CreateAccountRequest) ToPatch() models.AccountPatch {
	patch := models.AccountPatch{
		AccountName:           models.String(r.AccountName),
		CreditLimit:           models.Float64(r.CreditLimit),
		AmountOwed:            models.Float64(r.AmountOwed),
		MinimumMonthlyPayment: models.Float64(r.MinimumMonthlyPayment),
		InterestRate:          models.Float64(r.InterestRate),
		Rewards:               models.Float64(r.Rewards),
		LastUsed:              r.LastUsed,
		StatementCycleDay:     r.StatementCycleDay,
	}
	if r.AccountNumber != "" {
		patch.AccountNumber = models.String(r.AccountNumber)
	}
	if r.RateExpiration != "" {
		patch.RateExpiration = models.String(r.RateExpiration)
	}
	return patch
}

// UpdateAccountRequest represents a partial update. Absent fields are left untouched;
// optional fields listed in clear are blanked.
type UpdateAccountRequest struct {
	AccountName           *string  `json:"accountName" validate:"omitempty,not_blank,max=100"`
	AccountNumber         *string  `json:"accountNumber" validate:"omitempty,max=64"`
	CreditLimit           *float64 `json:"creditLimit" validate:"omitempty,finite,gt=0"`
	AmountOwed            *float64 `json:"amountOwed" validate:"omitempty,finite,gte=0"`
	MinimumMonthlyPayment *float64 `json:"minimumMonthlyPayment" validate:"omitempty,finite,gte=0"`
	InterestRate          *float64 `json:"interestRate" validate:"omitempty,finite,gte=0"`
	RateExpiration        *string  `json:"rateExpiration" validate:"omitempty,iso_date"`
	Rewards               *float64 `json:"rewards" validate:"omitempty,finite,gte=0"`
	LastUsed              *int     `json:"lastUsed" validate:"omitempty,month"`
	StatementCycleDay     *int     `json:"statementCycleDay" validate:"omitempty,cycle_day"`
	Clear                 []string `json:"clear" validate:"omitempty,dive,oneof=accountNumber rateExpiration lastUsed statementCycleDay"`
}

// ToPatch converts the request into an account patch
func (r UpdateAccountRequest) ToPatch() models.AccountPatch {
	return models.AccountPatch{
		AccountName:           r.AccountName,
		AccountNumber:         r.AccountNumber,
		CreditLimit:           r.CreditLimit,
		AmountOwed:            r.AmountOwed,
		MinimumMonthlyPayment: r.MinimumMonthlyPayment,
		InterestRate:          r.InterestRate,
		RateExpiration:        r.RateExpiration,
		Rewards:               r.Rewards,
		LastUsed:              r.LastUsed,
		StatementCycleDay:     r.StatementCycleDay,
		Clear:                 r.Clear,
	}
}

// ReorderRequest moves one account a single step up or down
type ReorderRequest struct {
	AccountID string `json:"accountId" validate:"required,not_blank"`
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// MigrateRequest bulk-replaces the store contents with a cached snapshot
type MigrateRequest struct {
	Accounts []models.Account `json:"accounts" validate:"required,min=1"`
}

// PaymentRequest records a payment against an account
type PaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,finite,positive_amount"`
}

// Account Response DTOs

// MigrateResponse reports how many accounts were written
type MigrateResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
