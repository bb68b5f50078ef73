package services

import (
	"context"
	"time"

	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
)

// AccountServiceInterface defines the record store operations on one owner's accounts
type AccountServiceInterface interface {
	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)
	CreateAccount(ctx context.Context, userID string, patch models.AccountPatch) (*models.Account, error)
	UpdateAccount(ctx context.Context, userID, id string, patch models.AccountPatch) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, id string) error
	// ReorderAccount swaps the account with its neighbor and returns the whole
	// collection in its new order
	ReorderAccount(ctx context.Context, userID, id string, dir ordering.Direction) ([]models.Account, error)
	// MigrateAccounts replaces the owner's collection with a snapshot
	MigrateAccounts(ctx context.Context, userID string, accounts []models.Account) (int, error)
	Summary(ctx context.Context, userID string) (*models.SummaryTotals, error)
	UpcomingPayments(ctx context.Context, userID string, window time.Duration) ([]models.UpcomingPayment, error)
	Diagnostics(ctx context.Context, userID string) models.StoreDiagnostics
}

// MetricsRecorderInterface abstracts metric collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// StoreEventLoggerInterface writes a structured log line per store mutation
type StoreEventLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account *models.Account)
	LogAccountUpdated(ctx context.Context, account *models.Account, fields []string)
	LogAccountDeleted(ctx context.Context, userID, accountID string, remaining int)
	LogAccountMoved(ctx context.Context, accountID string, dir ordering.Direction, fromPosition, toPosition int)
	LogAccountsMigrated(ctx context.Context, userID string, replaced, inserted int)
	LogOperationFailed(ctx context.Context, operation, accountID string, err error)
}
