// Package cli is the terminal front end of the tracker. Every command talks to
// the synchronization facade, never to the record store or the cache directly.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"credit-tracker/internal/cache"
	"credit-tracker/internal/client"
	"credit-tracker/internal/config"
	"credit-tracker/internal/datasync"
)

// ValidFormats defines the allowed output formats
var ValidFormats = []string{"text", "json", "yaml"}

// RootOptions holds global flags for all commands
type RootOptions struct {
	Format    string
	Verbose   bool
	Currency  string
	StoreURL  string
	CachePath string
	NoCache   bool
	Timeout   time.Duration
	Breaker   client.CircuitBreakerConfig

	// now is overridden in tests
	now  func() time.Time
	sync datasync.AccountSyncInterface
}

// SyncFactory builds the facade once the global flags are parsed
type SyncFactory func(opts *RootOptions, logs io.Writer) (datasync.AccountSyncInterface, error)

// NewRootCommand creates the cardctl root command wired to the real record
// store and file cache
func NewRootCommand() *cobra.Command {
	return newRootCommand(config.Load(), defaultSyncFactory)
}

func newRootCommand(cfg *config.Config, factory SyncFactory) *cobra.Command {
	opts := &RootOptions{
		now: time.Now,
		Breaker: client.CircuitBreakerConfig{
			MaxFailures:     cfg.Store.BreakerMaxFailures,
			ResetTimeout:    cfg.Store.BreakerResetTimeout,
			HalfOpenMaxSucc: 1,
		},
	}

	cmd := &cobra.Command{
		Use:   "cardctl",
		Short: "Track credit card balances, limits and payments",
		Long: `cardctl keeps a list of credit accounts in a record store service and
mirrors it to a local cache so the list stays readable while the store is down.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			sync, err := factory(opts, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to start", err)
			}
			opts.sync = sync
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitUsage, "invalid flags", err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Format, "format", cfg.Output, "output format (text|json|yaml)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log sync activity to stderr")
	flags.StringVar(&opts.Currency, "currency", "USD", "ISO 4217 currency used to display amounts")
	flags.StringVar(&opts.StoreURL, "store-url", cfg.Store.BaseURL, "record store base URL")
	flags.StringVar(&opts.CachePath, "cache", cfg.Cache.Path, "cache file (defaults to the user cache directory)")
	flags.BoolVar(&opts.NoCache, "no-cache", cfg.Cache.Disabled, "keep the cache in memory only")
	flags.DurationVar(&opts.Timeout, "timeout", cfg.Store.Timeout, "record store request timeout")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newEditCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	cmd.AddCommand(newPayCommand(opts))
	cmd.AddCommand(newMoveCommand(opts))
	cmd.AddCommand(newSummaryCommand(opts))
	cmd.AddCommand(newUpcomingCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newDiagnoseCommand(opts))
	cmd.AddCommand(newCacheCommand(opts))

	return cmd
}

func defaultSyncFactory(opts *RootOptions, logs io.Writer) (datasync.AccountSyncInterface, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: level}))

	store := client.New(client.Config{
		BaseURL: opts.StoreURL,
		Timeout: opts.Timeout,
		Breaker: opts.Breaker,
		Logger:  logger,
	})

	var slot cache.Store
	switch {
	case opts.NoCache:
		slot = cache.NewMemoryStore()
	case opts.CachePath != "":
		slot = cache.NewFileStore(opts.CachePath, logger)
	default:
		slot = cache.NewFileStore(cache.DefaultPath(), logger)
	}

	return datasync.NewAccountSync(store, slot, logger), nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Currency:  o.Currency,
	}
}
