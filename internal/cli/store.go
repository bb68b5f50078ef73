package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"credit-tracker/internal/datasync"
	"credit-tracker/internal/dto"
)

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Replace the record store contents with the cached accounts",
		Long: `Copy the locally cached accounts into the record store.

Everything the record store currently holds is replaced. Use this once to seed a
fresh store from a cache written while the store was unreachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitUsage, "migrate replaces every account in the record store; rerun with --yes to confirm")
			}

			count, err := opts.sync.MigrateFromCache(cmd.Context())
			if errors.Is(err, datasync.ErrNothingToMigrate) {
				return WrapExitError(ExitFailure, "nothing to migrate", err)
			}
			if err != nil {
				return storeError("failed to migrate accounts", err)
			}

			result := dto.MigrateResponse{Success: true, Count: count}
			return opts.formatter(cmd).Render(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Migrated %d accounts to the record store\n", count)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm replacing the record store contents")
	return cmd
}

func newCacheCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local account cache",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newCacheClearCommand(opts))
	return cmd
}

func newCacheClearCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the locally cached accounts",
		Long: `Remove the local cache file. The record store is not touched; the cache is
written again on the next successful read.

Accounts that only exist in the cache are lost, so run migrate first if the
record store has never seen them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitUsage, "clear deletes every cached account; rerun with --yes to confirm")
			}
			if err := opts.sync.ClearCache(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "failed to clear cache", err)
			}

			result := dto.MessageResponse{Message: "Cache cleared"}
			return opts.formatter(cmd).Render(result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "Cache cleared")
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deleting the cache")
	return cmd
}

func newDiagnoseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check the record store and the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diag := opts.sync.Diagnose(cmd.Context())
			return opts.formatter(cmd).Render(diag, func(w io.Writer) error {
				return writeDiagnostics(w, diag)
			})
		},
	}
}

func writeDiagnostics(w io.Writer, d datasync.Diagnostics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	store := "reachable"
	if !d.Store.Accessible {
		store = "unreachable"
		if d.Store.Error != "" {
			store += " (" + d.Store.Error + ")"
		}
	}
	fmt.Fprintf(tw, "Record store:\t%s\n", store)
	if d.Store.Accessible {
		fmt.Fprintf(tw, "Stored accounts:\t%d\n", d.Store.AccountCount)
	}
	fmt.Fprintf(tw, "Circuit breaker:\t%s\n", d.CircuitBreaker)

	cache := "readable"
	if !d.Cache.Readable {
		cache = "unreadable (" + d.Cache.Error + ")"
	}
	fmt.Fprintf(tw, "Cache:\t%s\n", cache)
	fmt.Fprintf(tw, "Cached accounts:\t%d\n", d.Cache.AccountCount)
	if d.Cache.Readable && d.Cache.AccountCount > 0 {
		order := "dense"
		if !d.Cache.Dense {
			order = "has gaps (renumbered on read)"
		}
		fmt.Fprintf(tw, "Cache order:\t%s\n", order)
	}
	fmt.Fprintf(tw, "Checked at:\t%s\n", d.Timestamp.Format(time.RFC3339))
	return tw.Flush()
}
