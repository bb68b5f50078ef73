package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultUserID is the fixed owner of every account. The tracker is single-user.
	DefaultUserID = "current-user-id"

	// RateExpirationLayout is the ISO calendar date layout used by rateExpiration
	RateExpirationLayout = "2006-01-02"
)

var (
	ErrAccountNameRequired   = errors.New("account name is required")
	ErrInvalidCreditLimit    = errors.New("credit limit must be greater than 0")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrInvalidLastUsed       = errors.New("last used must be between 1 and 12")
	ErrInvalidCycleDay       = errors.New("statement cycle day must be between 1 and 31")
	ErrInvalidRateExpiration = errors.New("rate expiration must be an ISO date (YYYY-MM-DD)")
	ErrInvalidPosition       = errors.New("position cannot be negative")
	ErrNonFiniteAmount       = errors.New("amount must be a finite number")
)

// Account represents a revolving-credit account tracked by the user
type Account struct {
	ID                    string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID                string    `gorm:"type:varchar(64);not null;index" json:"userId,omitempty"`
	AccountName           string    `gorm:"type:varchar(100);not null" json:"accountName"`
	AccountNumber         string    `gorm:"type:varchar(64)" json:"accountNumber,omitempty"`
	CreditLimit           float64   `gorm:"type:decimal(15,2);not null" json:"creditLimit"`
	AmountOwed            float64   `gorm:"type:decimal(15,2);not null;default:0" json:"amountOwed"`
	MinimumMonthlyPayment float64   `gorm:"type:decimal(15,2);not null;default:0" json:"minimumMonthlyPayment"`
	InterestRate          float64   `gorm:"type:decimal(7,4);not null;default:0" json:"interestRate"`
	RateExpiration        string    `gorm:"type:varchar(10)" json:"rateExpiration,omitempty"`
	Rewards               float64   `gorm:"type:decimal(15,2);not null;default:0" json:"rewards"`
	LastUsed              *int      `json:"lastUsed,omitempty"`
	StatementCycleDay     *int      `json:"statementCycleDay,omitempty"`
	Position              int       `gorm:"not null;index" json:"position"`
	CreatedAt             time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt             time.Time `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	if a.UserID == "" {
		a.UserID = DefaultUserID
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.AccountName) == "" {
		return ErrAccountNameRequired
	}

	if !isFinite(a.CreditLimit) {
		return fmt.Errorf("credit limit: %w", ErrNonFiniteAmount)
	}
	if a.CreditLimit <= 0 {
		return ErrInvalidCreditLimit
	}

	amounts := map[string]float64{
		"amount owed":             a.AmountOwed,
		"minimum monthly payment": a.MinimumMonthlyPayment,
		"interest rate":           a.InterestRate,
		"rewards":                 a.Rewards,
	}
	for field, value := range amounts {
		if !isFinite(value) {
			return fmt.Errorf("%s: %w", field, ErrNonFiniteAmount)
		}
		if value < 0 {
			return fmt.Errorf("%s: %w", field, ErrNegativeAmount)
		}
	}

	if a.LastUsed != nil && (*a.LastUsed < 1 || *a.LastUsed > 12) {
		return ErrInvalidLastUsed
	}

	if a.StatementCycleDay != nil && (*a.StatementCycleDay < 1 || *a.StatementCycleDay > 31) {
		return ErrInvalidCycleDay
	}

	if a.RateExpiration != "" {
		if _, err := time.Parse(RateExpirationLayout, a.RateExpiration); err != nil {
			return ErrInvalidRateExpiration
		}
	}

	if a.Position < 0 {
		return ErrInvalidPosition
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsOverLimit reports whether more is owed than the credit limit allows
func (a *Account) IsOverLimit() bool {
	return a.AmountOwed > a.CreditLimit
}

// FindAccount returns the index of the account with the given id, or -1
func FindAccount(accounts []Account, id string) int {
	for i := range accounts {
		if accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// CloneAccounts returns a copy of accounts that shares no pointer fields with the input
func CloneAccounts(accounts []Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = a.Clone()
	}
	return out
}

// Clone returns a deep copy of the account
func (a Account) Clone() Account {
	if a.LastUsed != nil {
		v := *a.LastUsed
		a.LastUsed = &v
	}
	if a.StatementCycleDay != nil {
		v := *a.StatementCycleDay
		a.StatementCycleDay = &v
	}
	return a
}
