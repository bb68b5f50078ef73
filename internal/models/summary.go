package models

import "time"

// SummaryTotals holds the collection-wide totals shown under the account table
type SummaryTotals struct {
	CreditLimit           float64 `json:"creditLimit"`
	AmountOwed            float64 `json:"amountOwed"`
	AmountAvailable       float64 `json:"amountAvailable"`
	MinimumMonthlyPayment float64 `json:"minimumMonthlyPayment"`
	// UtilizationPercent is nil when the total credit limit is zero
	UtilizationPercent *int `json:"utilizationPercent,omitempty"`
	AccountCount       int  `json:"accountCount"`
}

// UpcomingPayment is a minimum payment falling due within the lookahead window
type UpcomingPayment struct {
	AccountID     string    `json:"accountId"`
	AccountName   string    `json:"accountName"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"dueDate"`
	FormattedDate string    `json:"formattedDate"`
	DaysUntilDue  int       `json:"daysUntilDue"`
}

// StoreDiagnostics reports whether the authoritative store answers and what it holds
type StoreDiagnostics struct {
	Accessible   bool      `json:"accessible"`
	Error        string    `json:"error,omitempty"`
	AccountCount int       `json:"accountCount"`
	Accounts     []Account `json:"accounts,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// CircuitBreakerState is the state of the record store circuit breaker
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}
