package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-tracker/internal/metrics"
	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
	"credit-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCannotMove       = errors.New("cannot move account in that direction")
	ErrInvalidAccount   = errors.New("invalid account")
	ErrNothingToMigrate = errors.New("no accounts to migrate")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	events      StoreEventLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	now         func() time.Time
}

// NewAccountService creates the record store service. A nil recorder disables metrics.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	events StoreEventLoggerInterface,
	recorder MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	if recorder == nil {
		recorder = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		accountRepo: accountRepo,
		events:      events,
		metrics:     recorder,
		logger:      logger,
		now:         time.Now,
	}
}

// observe records the outcome and duration of one operation
func (s *accountService) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	s.metrics.IncrementCounter(MetricAccountOperation, map[string]string{"operation": operation, "status": status})
	s.metrics.RecordProcessingTime(MetricAccountOperation+"."+operation, s.now().Sub(start))
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) (accounts []models.Account, err error) {
	defer func(start time.Time) { s.observe("list", start, err) }(s.now())

	accounts, err = s.accountRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.metrics.RecordGauge(MetricAccountsTotal, float64(len(accounts)), nil)
	s.metrics.RecordGauge(MetricAmountOwedTotal, metrics.Totals(accounts).AmountOwed, nil)
	return ordering.SortByPosition(accounts), nil
}

func (s *accountService) CreateAccount(ctx context.Context, userID string, patch models.AccountPatch) (account *models.Account, err error) {
	defer func(start time.Time) { s.observe("create", start, err) }(s.now())

	existing, err := s.accountRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	appended := ordering.Append(existing, models.NewAccount(patch))
	created := appended[len(appended)-1]
	created.UserID = userID

	if err := created.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	if err := s.accountRepo.Create(&created); err != nil {
		s.events.LogOperationFailed(ctx, "create", "", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.events.LogAccountCreated(ctx, &created)
	s.metrics.RecordGauge(MetricAccountsTotal, float64(len(appended)), nil)
	return &created, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, id string, patch models.AccountPatch) (account *models.Account, err error) {
	defer func(start time.Time) { s.observe("update", start, err) }(s.now())

	account, err = s.accountRepo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if patch.IsEmpty() {
		return account, nil
	}

	patch.Apply(account)
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	if err := s.accountRepo.Update(account); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		s.events.LogOperationFailed(ctx, "update", id, err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.events.LogAccountUpdated(ctx, account, patch.Fields())
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, id string) (err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(s.now())

	accounts, err := s.accountRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to read accounts: %w", err)
	}
	if models.FindAccount(accounts, id) < 0 {
		return ErrAccountNotFound
	}

	remaining := ordering.Remove(accounts, id)
	if err := s.accountRepo.DeleteAndReindex(userID, id, remaining); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		s.events.LogOperationFailed(ctx, "delete", id, err)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.events.LogAccountDeleted(ctx, userID, id, len(remaining))
	s.metrics.RecordGauge(MetricAccountsTotal, float64(len(remaining)), nil)
	return nil
}

func (s *accountService) ReorderAccount(ctx context.Context, userID, id string, dir ordering.Direction) (result []models.Account, err error) {
	defer func(start time.Time) { s.observe("reorder", start, err) }(s.now())

	accounts, err := s.accountRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	current, neighbor, err := ordering.Swap(accounts, id, dir)
	switch {
	case errors.Is(err, ordering.ErrNotFound):
		return nil, ErrAccountNotFound
	case errors.Is(err, ordering.ErrCannotMove):
		return nil, ErrCannotMove
	case err != nil:
		return nil, err
	}

	if err := s.accountRepo.SwapPositions(current, neighbor); err != nil {
		s.events.LogOperationFailed(ctx, "reorder", id, err)
		return nil, fmt.Errorf("failed to persist new order: %w", err)
	}

	s.events.LogAccountMoved(ctx, id, dir, neighbor.Position, current.Position)

	return ordering.Move(ordering.SortByPosition(accounts), id, dir), nil
}

// MigrateAccounts keeps identifiers that are valid and unique UUIDs, assigns
// new ones otherwise, and renumbers positions in snapshot order.
func (s *accountService) MigrateAccounts(ctx context.Context, userID string, accounts []models.Account) (count int, err error) {
	defer func(start time.Time) { s.observe("migrate", start, err) }(s.now())

	if len(accounts) == 0 {
		return 0, ErrNothingToMigrate
	}

	rows := ordering.Renumber(ordering.SortByPosition(accounts))
	seen := make(map[string]struct{}, len(rows))
	for i := range rows {
		if _, err := uuid.Parse(rows[i].ID); err != nil {
			rows[i].ID = uuid.New().String()
		} else if _, dup := seen[rows[i].ID]; dup {
			rows[i].ID = uuid.New().String()
		}
		seen[rows[i].ID] = struct{}{}

		rows[i].UserID = userID
		if err := rows[i].Validate(); err != nil {
			return 0, fmt.Errorf("%w: account %d (%s): %w", ErrInvalidAccount, i, rows[i].AccountName, err)
		}
	}

	previous, err := s.accountRepo.CountByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := s.accountRepo.ReplaceAll(userID, rows); err != nil {
		s.events.LogOperationFailed(ctx, "migrate", "", err)
		return 0, fmt.Errorf("failed to migrate accounts: %w", err)
	}

	s.events.LogAccountsMigrated(ctx, userID, int(previous), len(rows))
	s.metrics.RecordGauge(MetricMigrationSize, float64(len(rows)), nil)
	s.metrics.RecordGauge(MetricAccountsTotal, float64(len(rows)), nil)
	return len(rows), nil
}

func (s *accountService) Summary(ctx context.Context, userID string) (*models.SummaryTotals, error) {
	accounts, err := s.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals := metrics.Totals(accounts)
	return &totals, nil
}

func (s *accountService) UpcomingPayments(ctx context.Context, userID string, window time.Duration) ([]models.UpcomingPayment, error) {
	accounts, err := s.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		window = metrics.DefaultUpcomingWindow
	}
	return metrics.UpcomingPayments(accounts, s.now(), window), nil
}

// Diagnostics never fails; an unreachable database is reported in the result
func (s *accountService) Diagnostics(ctx context.Context, userID string) models.StoreDiagnostics {
	diag := models.StoreDiagnostics{Timestamp: s.now().UTC()}

	if err := s.accountRepo.Ping(); err != nil {
		s.logger.ErrorContext(ctx, "record store database unreachable", slog.String("error", err.Error()))
		diag.Error = err.Error()
		return diag
	}

	accounts, err := s.accountRepo.ListByUser(userID)
	if err != nil {
		diag.Error = err.Error()
		return diag
	}

	diag.Accessible = true
	diag.AccountCount = len(accounts)
	diag.Accounts = ordering.SortByPosition(accounts)
	return diag
}
