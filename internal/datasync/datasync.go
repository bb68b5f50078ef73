// Package datasync keeps the local cache consistent with the record store.
//
// Reads try the record store first and fall back to the cache. Writes go to the
// record store only; after a successful write the full collection is fetched
// again and written to the cache. A failed write never touches the cache.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"credit-tracker/internal/cache"
	"credit-tracker/internal/client"
	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
)

var (
	ErrNotFound          = client.ErrNotFound
	ErrCannotMove        = client.ErrCannotMove
	ErrRemoteUnavailable = client.ErrRemoteUnavailable
	ErrRejected          = client.ErrRejected
	ErrNothingToMigrate  = errors.New("no cached accounts to migrate")
	ErrInvalidAmount     = errors.New("payment amount must be a finite number")
)

// Source says where a loaded collection came from
type Source string

const (
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
	SourceNone   Source = "none"
)

// LoadResult is the outcome of Load. RemoteErr is set when the record store
// could not be read, which separates "nothing stored" from "store unreachable".
type LoadResult struct {
	Accounts  []models.Account
	Source    Source
	RemoteErr error
}

// Stale reports whether the accounts did not come from the record store
func (r LoadResult) Stale() bool {
	return r.Source != SourceRemote
}

// CacheStatus describes the local cache during diagnostics
type CacheStatus struct {
	Readable     bool   `json:"readable"`
	AccountCount int    `json:"accountCount"`
	Dense        bool   `json:"dense"`
	Error        string `json:"error,omitempty"`
}

// Diagnostics reports the state of both sides of the sync
type Diagnostics struct {
	Cache          CacheStatus             `json:"cache"`
	Store          models.StoreDiagnostics `json:"store"`
	CircuitBreaker string                  `json:"circuitBreaker"`
	Timestamp      time.Time               `json:"timestamp"`
}

// AccountSyncInterface is the facade used by the user interface
type AccountSyncInterface interface {
	Load(ctx context.Context) LoadResult
	Create(ctx context.Context, patch models.AccountPatch) (*models.Account, error)
	Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error)
	Delete(ctx context.Context, id string) error
	MakePayment(ctx context.Context, id string, amount float64) (*models.Account, error)
	Move(ctx context.Context, id string, dir ordering.Direction) ([]models.Account, error)
	MigrateFromCache(ctx context.Context) (int, error)
	ClearCache(ctx context.Context) error
	Diagnose(ctx context.Context) Diagnostics
}

type accountSync struct {
	store  client.RecordStoreInterface
	cache  cache.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewAccountSync wires the facade to a record store and a cache slot
func NewAccountSync(store client.RecordStoreInterface, slot cache.Store, logger *slog.Logger) AccountSyncInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountSync{
		store:  store,
		cache:  slot,
		logger: logger,
		now:    time.Now,
	}
}

func (s *accountSync) Load(ctx context.Context) LoadResult {
	remote, err := s.store.FetchAll(ctx)
	if err == nil && len(remote) > 0 {
		remote = ordering.SortByPosition(remote)
		s.writeCache(ctx, remote)
		return LoadResult{Accounts: remote, Source: SourceRemote}
	}

	if err != nil {
		s.logger.WarnContext(ctx, "record store unavailable, using cache",
			slog.String("error", err.Error()))
	}

	cached, cerr := s.cache.Read()
	if cerr != nil {
		s.logger.ErrorContext(ctx, "failed to read cache",
			slog.String("error", cerr.Error()))
		cached = nil
	}

	if len(cached) == 0 {
		return LoadResult{Accounts: []models.Account{}, Source: SourceNone, RemoteErr: err}
	}

	cached = ordering.SortByPosition(cached)
	if !ordering.IsDense(cached) {
		s.logger.WarnContext(ctx, "cached positions have gaps or duplicates, renumbering",
			slog.Int("count", len(cached)))
		cached = ordering.Renumber(cached)
	}
	return LoadResult{Accounts: cached, Source: SourceCache, RemoteErr: err}
}

func (s *accountSync) Create(ctx context.Context, patch models.AccountPatch) (*models.Account, error) {
	account, err := s.store.Create(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.refresh(ctx, "create")
	return account, nil
}

func (s *accountSync) Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	account, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.refresh(ctx, "update")
	return account, nil
}

func (s *accountSync) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.refresh(ctx, "delete")
	return nil
}

// MakePayment reads the authoritative amount owed and lowers it by amount,
// never below zero. Range checks on amount are the caller's job; only
// non-finite amounts are refused here.
func (s *accountSync) MakePayment(ctx context.Context, id string, amount float64) (*models.Account, error) {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, fmt.Errorf("payment on %s: %w", id, ErrInvalidAmount)
	}

	accounts, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts for payment: %w", err)
	}

	idx := models.FindAccount(accounts, id)
	if idx < 0 {
		return nil, fmt.Errorf("payment on %s: %w", id, ErrNotFound)
	}

	owed := decimal.NewFromFloat(math.Max(accounts[idx].AmountOwed, 0))
	newOwed := decimal.Max(decimal.Zero, owed.Sub(decimal.NewFromFloat(amount)))

	s.logger.InfoContext(ctx, "payment applied",
		slog.String("account_id", id),
		slog.String("old_amount_owed", owed.StringFixed(2)),
		slog.String("new_amount_owed", newOwed.StringFixed(2)))

	return s.Update(ctx, id, models.AccountPatch{AmountOwed: models.Float64(newOwed.InexactFloat64())})
}

func (s *accountSync) Move(ctx context.Context, id string, dir ordering.Direction) ([]models.Account, error) {
	accounts, err := s.store.Reorder(ctx, id, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to move account: %w", err)
	}

	accounts = ordering.SortByPosition(accounts)
	s.writeCache(ctx, accounts)
	return accounts, nil
}

// MigrateFromCache seeds the record store with the cached snapshot, replacing
// whatever it held.
func (s *accountSync) MigrateFromCache(ctx context.Context) (int, error) {
	cached, err := s.cache.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read cache: %w", err)
	}
	if len(cached) == 0 {
		return 0, ErrNothingToMigrate
	}

	count, err := s.store.Migrate(ctx, ordering.SortByPosition(cached))
	if err != nil {
		return 0, fmt.Errorf("failed to migrate accounts: %w", err)
	}

	s.logger.InfoContext(ctx, "cache migrated to record store", slog.Int("count", count))
	s.refresh(ctx, "migrate")
	return count, nil
}

// ClearCache empties the local cache slot. The record store is not touched.
func (s *accountSync) ClearCache(ctx context.Context) error {
	if err := s.cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	s.logger.InfoContext(ctx, "cache cleared")
	return nil
}

func (s *accountSync) Diagnose(ctx context.Context) Diagnostics {
	diag := Diagnostics{
		CircuitBreaker: s.store.BreakerState().String(),
		Timestamp:      s.now(),
	}

	if cached, err := s.cache.Read(); err != nil {
		diag.Cache.Error = err.Error()
	} else {
		diag.Cache.Readable = true
		diag.Cache.AccountCount = len(cached)
		diag.Cache.Dense = ordering.IsDense(cached)
	}

	store, err := s.store.Diagnostics(ctx)
	if err != nil {
		diag.Store = models.StoreDiagnostics{Accessible: false, Error: err.Error(), Timestamp: diag.Timestamp}
	} else {
		diag.Store = *store
	}

	return diag
}

// refresh re-reads the whole collection after a successful write. When the
// re-read fails the cache keeps its previous contents.
func (s *accountSync) refresh(ctx context.Context, operation string) {
	accounts, err := s.store.FetchAll(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "refetch after write failed, cache left unchanged",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return
	}
	s.writeCache(ctx, ordering.SortByPosition(accounts))
}

func (s *accountSync) writeCache(ctx context.Context, accounts []models.Account) {
	if err := s.cache.Write(accounts); err != nil {
		s.logger.ErrorContext(ctx, "failed to write cache",
			slog.Int("count", len(accounts)),
			slog.String("error", err.Error()))
	}
}
