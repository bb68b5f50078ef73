package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"credit-tracker/internal/cache"
	"credit-tracker/internal/client"
	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
)

// fakeStore is an in-memory record store with switchable failures
type fakeStore struct {
	accounts []models.Account
	nextID   int
	fetchErr error
	writeErr error
	migrated []models.Account
}

func (f *fakeStore) FetchAll(ctx context.Context) ([]models.Account, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return models.CloneAccounts(f.accounts), nil
}

func (f *fakeStore) Create(ctx context.Context, patch models.AccountPatch) (*models.Account, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.nextID++
	account := models.NewAccount(patch)
	account.ID = fmt.Sprintf("id-%d", f.nextID)
	f.accounts = ordering.Append(f.accounts, account)
	created := f.accounts[len(f.accounts)-1]
	return &created, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	idx := models.FindAccount(f.accounts, id)
	if idx < 0 {
		return nil, client.ErrNotFound
	}
	patch.Apply(&f.accounts[idx])
	updated := f.accounts[idx]
	return &updated, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if models.FindAccount(f.accounts, id) < 0 {
		return client.ErrNotFound
	}
	f.accounts = ordering.Remove(f.accounts, id)
	return nil
}

func (f *fakeStore) Reorder(ctx context.Context, id string, dir ordering.Direction) ([]models.Account, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	current, neighbor, err := ordering.Swap(f.accounts, id, dir)
	switch {
	case errors.Is(err, ordering.ErrNotFound):
		return nil, client.ErrNotFound
	case errors.Is(err, ordering.ErrCannotMove):
		return nil, client.ErrCannotMove
	}
	f.accounts[models.FindAccount(f.accounts, current.ID)] = current
	f.accounts[models.FindAccount(f.accounts, neighbor.ID)] = neighbor
	return ordering.SortByPosition(f.accounts), nil
}

func (f *fakeStore) Migrate(ctx context.Context, accounts []models.Account) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.migrated = models.CloneAccounts(accounts)
	f.accounts = ordering.Renumber(accounts)
	return len(accounts), nil
}

func (f *fakeStore) Diagnostics(ctx context.Context) (*models.StoreDiagnostics, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &models.StoreDiagnostics{Accessible: true, AccountCount: len(f.accounts)}, nil
}

func (f *fakeStore) BreakerState() models.CircuitBreakerState {
	return client.StateClosed
}

// brokenCache fails every operation
type brokenCache struct{}

func (brokenCache) Read() ([]models.Account, error) { return nil, errors.New("disk gone") }
func (brokenCache) Write([]models.Account) error     { return errors.New("disk gone") }
func (brokenCache) Clear() error                     { return errors.New("disk gone") }

var errUnavailable = fmt.Errorf("%w: connection refused", client.ErrRemoteUnavailable)

type AccountSyncTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *fakeStore
	cache cache.Store
	sync  AccountSyncInterface
}

func (s *AccountSyncTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = &fakeStore{}
	s.cache = cache.NewMemoryStore()
	s.sync = NewAccountSync(s.store, s.cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *AccountSyncTestSuite) seedStore(names ...string) {
	for _, name := range names {
		_, err := s.store.Create(s.ctx, models.AccountPatch{
			AccountName: models.String(name),
			CreditLimit: models.Float64(1000),
			AmountOwed:  models.Float64(300),
		})
		s.Require().NoError(err)
	}
}

func (s *AccountSyncTestSuite) cached() []models.Account {
	accounts, err := s.cache.Read()
	s.Require().NoError(err)
	return accounts
}

func (s *AccountSyncTestSuite) TestLoad_RemoteWinsAndOverwritesCache() {
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "stale"}}))
	s.seedStore("Visa", "Amex")

	result := s.sync.Load(s.ctx)

	s.Equal(SourceRemote, result.Source)
	s.NoError(result.RemoteErr)
	s.False(result.Stale())
	s.Len(result.Accounts, 2)
	s.Equal("Visa", s.cached()[0].AccountName)
}

func (s *AccountSyncTestSuite) TestLoad_RemoteEmptyFallsBackToCache() {
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "c1", AccountName: "Cached"}}))

	result := s.sync.Load(s.ctx)

	s.Equal(SourceCache, result.Source)
	s.NoError(result.RemoteErr)
	s.Require().Len(result.Accounts, 1)
	s.Equal("Cached", result.Accounts[0].AccountName)
	s.Len(s.cached(), 1)
}

func (s *AccountSyncTestSuite) TestLoad_RemoteFailureFallsBackToCache() {
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "c1", AccountName: "Cached"}}))
	s.store.fetchErr = errUnavailable

	result := s.sync.Load(s.ctx)

	s.Equal(SourceCache, result.Source)
	s.ErrorIs(result.RemoteErr, client.ErrRemoteUnavailable)
	s.True(result.Stale())
	s.Len(result.Accounts, 1)
}

func (s *AccountSyncTestSuite) TestLoad_CacheWithGapsIsRenumbered() {
	s.Require().NoError(s.cache.Write([]models.Account{
		{ID: "c3", AccountName: "Third", Position: 9},
		{ID: "c1", AccountName: "First", Position: 2},
		{ID: "c2", AccountName: "Second", Position: 5},
	}))
	s.store.fetchErr = errUnavailable

	result := s.sync.Load(s.ctx)

	s.Equal(SourceCache, result.Source)
	s.Require().Len(result.Accounts, 3)
	s.Equal([]string{"c1", "c2", "c3"}, []string{result.Accounts[0].ID, result.Accounts[1].ID, result.Accounts[2].ID})
	s.True(ordering.IsDense(result.Accounts))
	s.Equal(9, s.cached()[0].Position, "fallback read must not rewrite the cache")
}

func (s *AccountSyncTestSuite) TestLoad_NothingAnywhere() {
	s.store.fetchErr = errUnavailable

	result := s.sync.Load(s.ctx)

	s.Equal(SourceNone, result.Source)
	s.NotNil(result.Accounts)
	s.Empty(result.Accounts)
	s.Error(result.RemoteErr)
}

func (s *AccountSyncTestSuite) TestLoad_BrokenCacheStillReturnsRemote() {
	s.sync = NewAccountSync(s.store, brokenCache{}, nil)
	s.seedStore("Visa")

	result := s.sync.Load(s.ctx)

	s.Equal(SourceRemote, result.Source)
	s.Len(result.Accounts, 1)
}

func (s *AccountSyncTestSuite) TestCreate_RefreshesCache() {
	s.seedStore("Visa")

	account, err := s.sync.Create(s.ctx, models.AccountPatch{
		AccountName: models.String("Discover"),
		CreditLimit: models.Float64(2500),
	})

	s.Require().NoError(err)
	s.Equal("Discover", account.AccountName)
	s.Equal(1, account.Position)
	cached := s.cached()
	s.Require().Len(cached, 2)
	s.Equal("Discover", cached[1].AccountName)
	s.True(ordering.IsDense(cached))
}

func (s *AccountSyncTestSuite) TestCreate_FailureLeavesCacheUntouched() {
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "c1"}}))
	s.store.writeErr = errUnavailable

	account, err := s.sync.Create(s.ctx, models.AccountPatch{AccountName: models.String("X")})

	s.Nil(account)
	s.ErrorIs(err, client.ErrRemoteUnavailable)
	s.Len(s.cached(), 1)
	s.Equal("c1", s.cached()[0].ID)
}

func (s *AccountSyncTestSuite) TestCreate_RefetchFailureLeavesCacheUntouched() {
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "c1"}}))
	s.store.fetchErr = errUnavailable

	account, err := s.sync.Create(s.ctx, models.AccountPatch{AccountName: models.String("X"), CreditLimit: models.Float64(1)})

	s.Require().NoError(err)
	s.NotNil(account)
	s.Equal("c1", s.cached()[0].ID)
}

func (s *AccountSyncTestSuite) TestUpdate() {
	s.seedStore("Visa")

	account, err := s.sync.Update(s.ctx, "id-1", models.AccountPatch{Rewards: models.Float64(42)})

	s.Require().NoError(err)
	s.Equal(42.0, account.Rewards)
	s.Equal(42.0, s.cached()[0].Rewards)
}

func (s *AccountSyncTestSuite) TestUpdate_NotFound() {
	_, err := s.sync.Update(s.ctx, "missing", models.AccountPatch{Rewards: models.Float64(1)})

	s.ErrorIs(err, ErrNotFound)
}

func (s *AccountSyncTestSuite) TestDelete_RenumbersAndCaches() {
	s.seedStore("A", "B", "C")

	s.Require().NoError(s.sync.Delete(s.ctx, "id-1"))

	cached := s.cached()
	s.Require().Len(cached, 2)
	s.Equal("B", cached[0].AccountName)
	s.Equal(0, cached[0].Position)
	s.True(ordering.IsDense(cached))
}

func (s *AccountSyncTestSuite) TestDelete_LastAccountEmptiesCache() {
	s.seedStore("Only")
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "id-1"}}))

	s.Require().NoError(s.sync.Delete(s.ctx, "id-1"))

	s.Empty(s.cached())
}

func (s *AccountSyncTestSuite) TestDelete_Failure() {
	s.store.writeErr = errUnavailable

	err := s.sync.Delete(s.ctx, "id-1")

	s.ErrorIs(err, ErrRemoteUnavailable)
}

func (s *AccountSyncTestSuite) TestMakePayment() {
	s.seedStore("Visa")

	account, err := s.sync.MakePayment(s.ctx, "id-1", 100.10)

	s.Require().NoError(err)
	s.Equal(199.9, account.AmountOwed)
	s.Equal(199.9, s.cached()[0].AmountOwed)
}

func (s *AccountSyncTestSuite) TestMakePayment_ClampsAtZero() {
	s.seedStore("Visa")

	account, err := s.sync.MakePayment(s.ctx, "id-1", 5000)

	s.Require().NoError(err)
	s.Equal(0.0, account.AmountOwed)
}

func (s *AccountSyncTestSuite) TestMakePayment_NotFound() {
	s.seedStore("Visa")

	account, err := s.sync.MakePayment(s.ctx, "missing", 10)

	s.Nil(account)
	s.ErrorIs(err, ErrNotFound)
}

func (s *AccountSyncTestSuite) TestMakePayment_NonFiniteAmount() {
	s.seedStore("Visa")
	before := s.cached()

	for _, amount := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		var (
			account *models.Account
			err     error
		)
		s.NotPanics(func() {
			account, err = s.sync.MakePayment(s.ctx, "id-1", amount)
		})

		s.Nil(account)
		s.ErrorIs(err, ErrInvalidAmount)
	}
	s.Equal(300.0, s.store.accounts[0].AmountOwed)
	s.Equal(before, s.cached())
}

func (s *AccountSyncTestSuite) TestMakePayment_StoreUnavailable() {
	s.store.fetchErr = errUnavailable

	_, err := s.sync.MakePayment(s.ctx, "id-1", 10)

	s.ErrorIs(err, ErrRemoteUnavailable)
}

func (s *AccountSyncTestSuite) TestMove() {
	s.seedStore("A", "B", "C")

	accounts, err := s.sync.Move(s.ctx, "id-3", ordering.Up)

	s.Require().NoError(err)
	s.Equal("C", accounts[1].AccountName)
	s.Equal("B", accounts[2].AccountName)
	s.True(ordering.IsDense(accounts))
	s.Equal("C", s.cached()[1].AccountName)
}

func (s *AccountSyncTestSuite) TestMove_Boundary() {
	s.seedStore("A", "B")
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "keep"}}))

	_, err := s.sync.Move(s.ctx, "id-1", ordering.Up)

	s.ErrorIs(err, ErrCannotMove)
	s.Equal("keep", s.cached()[0].ID)
}

func (s *AccountSyncTestSuite) TestMigrateFromCache() {
	s.Require().NoError(s.cache.Write([]models.Account{
		{ID: "b", AccountName: "B", Position: 1},
		{ID: "a", AccountName: "A", Position: 0},
	}))

	count, err := s.sync.MigrateFromCache(s.ctx)

	s.Require().NoError(err)
	s.Equal(2, count)
	s.Equal("a", s.store.migrated[0].ID)
	s.Len(s.cached(), 2)
}

func (s *AccountSyncTestSuite) TestMigrateFromCache_Empty() {
	_, err := s.sync.MigrateFromCache(s.ctx)

	s.ErrorIs(err, ErrNothingToMigrate)
}

func (s *AccountSyncTestSuite) TestDiagnose() {
	s.seedStore("A")
	s.Require().NoError(s.cache.Write([]models.Account{{ID: "x"}, {ID: "y"}}))

	diag := s.sync.Diagnose(s.ctx)

	s.True(diag.Cache.Readable)
	s.Equal(2, diag.Cache.AccountCount)
	s.False(diag.Cache.Dense)
	s.True(diag.Store.Accessible)
	s.Equal(1, diag.Store.AccountCount)
	s.Equal("closed", diag.CircuitBreaker)
}

func (s *AccountSyncTestSuite) TestDiagnose_DenseCache() {
	s.seedStore("A", "B")
	s.sync.Load(s.ctx)

	diag := s.sync.Diagnose(s.ctx)

	s.Equal(2, diag.Cache.AccountCount)
	s.True(diag.Cache.Dense)
}

func (s *AccountSyncTestSuite) TestClearCache() {
	s.seedStore("Visa", "Amex")
	s.sync.Load(s.ctx)
	s.Require().Len(s.cached(), 2)

	s.NoError(s.sync.ClearCache(s.ctx))

	s.Empty(s.cached())
	s.Len(s.store.accounts, 2)
}

func (s *AccountSyncTestSuite) TestClearCache_BrokenCache() {
	s.sync = NewAccountSync(s.store, brokenCache{}, nil)

	err := s.sync.ClearCache(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "disk gone")
}

func (s *AccountSyncTestSuite) TestDiagnose_StoreDown() {
	s.store.fetchErr = errUnavailable

	diag := s.sync.Diagnose(s.ctx)

	s.False(diag.Store.Accessible)
	s.Contains(diag.Store.Error, "connection refused")
}

func TestAccountSyncTestSuite(t *testing.T) {
	suite.Run(t, new(AccountSyncTestSuite))
}
