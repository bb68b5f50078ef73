package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"credit-tracker/internal/client"
	"credit-tracker/internal/config"
	"credit-tracker/internal/datasync"
	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
)

// fakeSync records what the commands asked the facade to do
type fakeSync struct {
	load        datasync.LoadResult
	created     *models.AccountPatch
	updatedID   string
	updated     *models.AccountPatch
	deleted     string
	paidID      string
	paid        float64
	movedID     string
	movedDir    ordering.Direction
	migrated    int
	cleared     bool
	diagnostics datasync.Diagnostics
	err         error
}

func (f *fakeSync) Load(ctx context.Context) datasync.LoadResult { return f.load }

func (f *fakeSync) Create(ctx context.Context, patch models.AccountPatch) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &patch
	a := models.NewAccount(patch)
	a.ID = "new-id"
	return &a, nil
}

func (f *fakeSync) Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updatedID, f.updated = id, &patch
	a := models.Account{ID: id, AccountName: "Visa", CreditLimit: 1000}
	patch.Apply(&a)
	return &a, nil
}

func (f *fakeSync) Delete(ctx context.Context, id string) error {
	f.deleted = id
	return f.err
}

func (f *fakeSync) MakePayment(ctx context.Context, id string, amount float64) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.paidID, f.paid = id, amount
	return &models.Account{ID: id, AccountName: "Visa", CreditLimit: 1000, AmountOwed: 100}, nil
}

func (f *fakeSync) Move(ctx context.Context, id string, dir ordering.Direction) ([]models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.movedID, f.movedDir = id, dir
	return f.load.Accounts, nil
}

func (f *fakeSync) MigrateFromCache(ctx context.Context) (int, error) {
	return f.migrated, f.err
}

func (f *fakeSync) ClearCache(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = true
	return nil
}

func (f *fakeSync) Diagnose(ctx context.Context) datasync.Diagnostics { return f.diagnostics }

// CLISuite runs commands against a fake facade
type CLISuite struct {
	suite.Suite
	sync   *fakeSync
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.sync = &fakeSync{load: datasync.LoadResult{
		Source: datasync.SourceRemote,
		Accounts: []models.Account{
			{ID: "a", AccountName: "Zeta Card", CreditLimit: 5000, AmountOwed: 1250, MinimumMonthlyPayment: 35, StatementCycleDay: models.Int(15), Position: 0},
			{ID: "b", AccountName: "alpha card", CreditLimit: 1000, AmountOwed: 0, Position: 1},
		},
	}}
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *CLISuite) run(args ...string) error {
	cfg := &config.Config{Output: "text", Store: config.StoreConfig{BaseURL: "http://store.test", Timeout: time.Second}}
	cmd := newRootCommand(cfg, func(opts *RootOptions, logs io.Writer) (datasync.AccountSyncInterface, error) {
		opts.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
		return s.sync, nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

func (s *CLISuite) TestCommandPresence() {
	cmd := NewRootCommand()
	for _, name := range []string{"list", "add", "edit", "delete", "pay", "move", "summary", "upcoming", "export", "migrate", "diagnose", "cache"} {
		sub, _, err := cmd.Find([]string{name})
		s.Require().NoError(err, name)
		s.Equal(name, sub.Name())
	}
}

func (s *CLISuite) TestInvalidFormat() {
	err := s.run("list", "--format", "xml")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
}

func (s *CLISuite) TestList_TextSortedByName() {
	s.Require().NoError(s.run("list", "--sort", "accountName"))

	out := s.stdout.String()
	s.Less(strings.Index(out, "alpha card"), strings.Index(out, "Zeta Card"))
	s.Contains(out, "$5,000.00")
	s.Contains(out, "$3,750.00")
	s.Contains(out, "25%")
	s.Contains(out, "TOTAL (2)")
	s.Empty(s.stderr.String())
}

func (s *CLISuite) TestList_UnknownSortField() {
	err := s.run("list", "--sort", "color")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
}

func (s *CLISuite) TestList_StaleWarningGoesToStderr() {
	s.sync.load.Source = datasync.SourceCache
	s.sync.load.RemoteErr = datasync.ErrRemoteUnavailable

	s.Require().NoError(s.run("list", "--format", "json"))

	s.Contains(s.stderr.String(), "showing cached accounts")
	var got accountList
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &got))
	s.Equal(datasync.SourceCache, got.Source)
	s.Len(got.Accounts, 2)
	s.Equal(6000.0, got.Totals.CreditLimit)
}

func (s *CLISuite) TestList_Empty() {
	s.sync.load = datasync.LoadResult{Source: datasync.SourceNone, Accounts: []models.Account{}}
	s.Require().NoError(s.run("list"))
	s.Contains(s.stdout.String(), "No accounts yet")
}

func (s *CLISuite) TestList_YAML() {
	s.Require().NoError(s.run("list", "--format", "yaml", "--sort", "creditLimit", "--desc"))

	out := s.stdout.String()
	s.Contains(out, "source: remote")
	s.Contains(out, "accountName: Zeta Card")
	s.Contains(out, "direction: desc")
	s.NotContains(out, "{")
}

func (s *CLISuite) TestAdd_Success() {
	s.Require().NoError(s.run("add", "--name", "Chase Freedom", "--limit", "7500", "--owed", "300.5", "--cycle-day", "21"))

	s.Require().NotNil(s.sync.created)
	s.Equal("Chase Freedom", *s.sync.created.AccountName)
	s.Equal(7500.0, *s.sync.created.CreditLimit)
	s.Equal(21, *s.sync.created.StatementCycleDay)
	s.Nil(s.sync.created.LastUsed)
	s.Contains(s.stdout.String(), `Added "Chase Freedom"`)
}

func (s *CLISuite) TestAdd_InvalidForm() {
	err := s.run("add", "--name", "Visa", "--limit", "100", "--last-used", "13", "--rate-expiration", "03/2026")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
	s.Contains(err.Error(), "lastUsed")
	s.Contains(err.Error(), "rateExpiration")
	s.Nil(s.sync.created)
}

func (s *CLISuite) TestAdd_MissingRequiredFlags() {
	s.Error(s.run("add", "--name", "Visa"))
	s.Nil(s.sync.created)
}

func (s *CLISuite) TestAdd_StoreUnavailable() {
	s.sync.err = datasync.ErrRemoteUnavailable
	err := s.run("add", "--name", "Visa", "--limit", "100")
	s.Require().Error(err)
	s.Equal(ExitFailure, GetExitCode(err))
	s.Contains(err.Error(), "unavailable")
}

func (s *CLISuite) TestEdit_OnlyChangedFields() {
	s.Require().NoError(s.run("edit", "a", "--owed", "0"))

	s.Equal("a", s.sync.updatedID)
	s.Require().NotNil(s.sync.updated.AmountOwed)
	s.Equal(0.0, *s.sync.updated.AmountOwed)
	s.Nil(s.sync.updated.AccountName)
	s.Nil(s.sync.updated.CreditLimit)
}

func (s *CLISuite) TestEdit_NothingToChange() {
	err := s.run("edit", "a")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
	s.Nil(s.sync.updated)
}

func (s *CLISuite) TestEdit_ClearOptionalFields() {
	s.Require().NoError(s.run("edit", "a", "--name", "Visa Infinite", "--clear", "last-used,cycle-day", "--clear", "rate-expiration"))

	s.Require().NotNil(s.sync.updated)
	s.Equal("Visa Infinite", *s.sync.updated.AccountName)
	s.Equal([]string{models.FieldLastUsed, models.FieldStatementCycleDay, models.FieldRateExpiration}, s.sync.updated.Clear)
}

func (s *CLISuite) TestEdit_ClearAlone() {
	s.Require().NoError(s.run("edit", "a", "--clear", "number"))
	s.Equal([]string{models.FieldAccountNumber}, s.sync.updated.Clear)
}

func (s *CLISuite) TestEdit_ClearRejected() {
	for _, args := range [][]string{
		{"edit", "a", "--clear", "limit"},
		{"edit", "a", "--clear", "bogus"},
		{"edit", "a", "--last-used", "4", "--clear", "last-used"},
	} {
		err := s.run(args...)
		s.Require().Error(err, args)
		s.Equal(ExitUsage, GetExitCode(err), args)
	}
	s.Nil(s.sync.updated)
}

func (s *CLISuite) TestAddEdit_RejectNonFiniteAmounts() {
	err := s.run("add", "--name", "Visa", "--limit", "Inf")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
	s.Contains(err.Error(), "creditLimit: must be a finite number")
	s.Nil(s.sync.created)

	err = s.run("edit", "a", "--owed", "NaN")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
	s.Nil(s.sync.updated)
}

func (s *CLISuite) TestPay_FacadeRejectsAmount() {
	s.sync.err = fmt.Errorf("payment on a: %w", datasync.ErrInvalidAmount)
	err := s.run("pay", "a", "10")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
}

func (s *CLISuite) TestDelete_NotFound() {
	s.sync.err = datasync.ErrNotFound
	err := s.run("delete", "zzz")
	s.Require().Error(err)
	s.Contains(err.Error(), "account not found")
}

func (s *CLISuite) TestPay() {
	s.Require().NoError(s.run("pay", "a", "150.25"))
	s.Equal("a", s.sync.paidID)
	s.Equal(150.25, s.sync.paid)
	s.Contains(s.stdout.String(), "Paid $150.25")
}

func (s *CLISuite) TestPay_RejectsNonPositiveAmounts() {
	for _, amount := range []string{"0", "-5", "abc", "Inf", "+Inf", "infinity", "NaN", "1e400"} {
		err := s.run("pay", "a", amount)
		s.Require().Error(err, amount)
		s.Equal(ExitUsage, GetExitCode(err), amount)
	}
	s.Empty(s.sync.paidID)
}

func (s *CLISuite) TestMove() {
	s.Require().NoError(s.run("move", "b", "UP"))
	s.Equal("b", s.sync.movedID)
	s.Equal(ordering.Up, s.sync.movedDir)
}

func (s *CLISuite) TestMove_Boundary() {
	s.sync.err = datasync.ErrCannotMove
	err := s.run("move", "a", "up")
	s.Require().Error(err)
	s.Contains(err.Error(), "cannot move account in that direction")
}

func (s *CLISuite) TestMove_InvalidDirection() {
	err := s.run("move", "a", "left")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
	s.Empty(s.sync.movedID)
}

func (s *CLISuite) TestSummary() {
	s.Require().NoError(s.run("summary"))
	out := s.stdout.String()
	s.Contains(out, "$6,000.00")
	s.Contains(out, "$1,250.00")
	s.Contains(out, "21%")
}

func (s *CLISuite) TestUpcoming() {
	s.Require().NoError(s.run("upcoming", "--days", "10"))
	out := s.stdout.String()
	s.Contains(out, "Zeta Card")
	s.Contains(out, "5 days")
	s.Contains(out, "$35.00")
	s.NotContains(out, "alpha card")
}

func (s *CLISuite) TestUpcoming_InvalidDays() {
	err := s.run("upcoming", "--days", "0")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
}

func (s *CLISuite) TestExport_ToFile() {
	path := filepath.Join(s.T().TempDir(), "out.csv")
	s.Require().NoError(s.run("export", "-o", path, "--sort", "accountName"))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	lines := strings.Split(string(data), "\n")
	s.Require().Len(lines, 3)
	s.True(strings.HasPrefix(lines[1], `"alpha card"`))
	s.Contains(s.stderr.String(), "Exported 2 accounts")
}

func (s *CLISuite) TestExport_Stdout() {
	s.Require().NoError(s.run("export"))
	s.True(strings.HasPrefix(s.stdout.String(), "Account Name,"))
}

func (s *CLISuite) TestMigrate_RequiresConfirmation() {
	s.sync.migrated = 2
	err := s.run("migrate")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))

	s.Require().NoError(s.run("migrate", "--yes", "--format", "json"))
	s.Contains(s.stdout.String(), `"count": 2`)
}

func (s *CLISuite) TestMigrate_NothingCached() {
	s.sync.err = datasync.ErrNothingToMigrate
	err := s.run("migrate", "-y")
	s.Require().Error(err)
	s.True(errors.Is(err, datasync.ErrNothingToMigrate))
}

func (s *CLISuite) TestCacheClear() {
	err := s.run("cache", "clear")
	s.Require().Error(err)
	s.Equal(ExitUsage, GetExitCode(err))
	s.False(s.sync.cleared)

	s.Require().NoError(s.run("cache", "clear", "--yes"))
	s.True(s.sync.cleared)
	s.Contains(s.stdout.String(), "Cache cleared")
}

func (s *CLISuite) TestCacheClear_Failure() {
	s.sync.err = errors.New("permission denied")

	err := s.run("cache", "clear", "-y", "--format", "json")

	s.Require().Error(err)
	s.Equal(ExitFailure, GetExitCode(err))
	s.Contains(err.Error(), "permission denied")
	s.Empty(s.stdout.String())
}

func (s *CLISuite) TestDiagnose_CacheOrder() {
	s.sync.diagnostics = datasync.Diagnostics{
		Cache:          datasync.CacheStatus{Readable: true, AccountCount: 3, Dense: false},
		Store:          models.StoreDiagnostics{Accessible: true, AccountCount: 3},
		CircuitBreaker: "closed",
	}
	s.Require().NoError(s.run("diagnose"))
	s.Contains(s.stdout.String(), "has gaps")

	s.stdout.Reset()
	s.sync.diagnostics.Cache.Dense = true
	s.Require().NoError(s.run("diagnose", "--format", "json"))
	s.Contains(s.stdout.String(), `"dense": true`)
}

func (s *CLISuite) TestDiagnose() {
	s.sync.diagnostics = datasync.Diagnostics{
		Cache:          datasync.CacheStatus{Readable: true, AccountCount: 2},
		Store:          models.StoreDiagnostics{Accessible: false, Error: "connection refused"},
		CircuitBreaker: "open",
		Timestamp:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.run("diagnose"))

	out := s.stdout.String()
	s.Contains(out, "unreachable (connection refused)")
	s.Contains(out, "open")
	s.Contains(out, "2026-03-10T09:00:00Z")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", formatMoney(1234.5, "USD"))
	assert.Equal(t, "$0.00", formatMoney(0, "USD"))
	assert.Equal(t, "$10.01", formatMoney(10.005, "nope"))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("x")))
	assert.Equal(t, ExitUsage, GetExitCode(NewExitError(ExitUsage, "bad")))

	wrapped := WrapExitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
}

func TestWriteYAML_KeepsJSONKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, models.Account{ID: "x", AccountName: "Visa", CreditLimit: 100}))

	out := buf.String()
	assert.Less(t, strings.Index(out, "id: x"), strings.Index(out, "accountName: Visa"))
	assert.Contains(t, out, "creditLimit: 100")
}

func TestFormatUtilization(t *testing.T) {
	assert.Equal(t, "-", formatUtilization(models.Account{}))
	assert.Equal(t, "25%", formatUtilization(models.Account{CreditLimit: 1000, AmountOwed: 250}))
	assert.Equal(t, "150% over", formatUtilization(models.Account{CreditLimit: 100, AmountOwed: 150}))
}

func TestDefaultSyncFactory_LogsToCommandWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	for _, verbose := range []bool{false, true} {
		t.Run(fmt.Sprintf("verbose=%v", verbose), func(t *testing.T) {
			var logs bytes.Buffer
			sync, err := defaultSyncFactory(&RootOptions{
				StoreURL:  "http://127.0.0.1:1",
				CachePath: path,
				Timeout:   time.Second,
				Verbose:   verbose,
				Breaker:   client.CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1},
			}, &logs)
			require.NoError(t, err)

			result := sync.Load(context.Background())
			assert.Equal(t, datasync.SourceNone, result.Source)

			out := logs.String()
			assert.Contains(t, out, "record store circuit breaker opened")
			assert.Contains(t, out, "cache slot is malformed")

			require.NoError(t, sync.ClearCache(context.Background()))
			assert.Equal(t, verbose, strings.Contains(logs.String(), "cache cleared"))
			require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		})
	}
}
