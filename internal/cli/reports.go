package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"credit-tracker/internal/export"
	"credit-tracker/internal/metrics"
	"credit-tracker/internal/models"
)

func newSummaryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals across all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)
			result := opts.sync.Load(cmd.Context())
			warnIfStale(f, result)

			totals := metrics.Totals(result.Accounts)
			return f.Render(totals, func(w io.Writer) error {
				return writeSummary(w, totals, f.Currency)
			})
		},
	}
}

func writeSummary(w io.Writer, t models.SummaryTotals, currency string) error {
	used := "-"
	if t.UtilizationPercent != nil {
		used = fmt.Sprintf("%d%%", *t.UtilizationPercent)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Accounts:\t%d\n", t.AccountCount)
	fmt.Fprintf(tw, "Credit limit:\t%s\n", formatMoney(t.CreditLimit, currency))
	fmt.Fprintf(tw, "Amount owed:\t%s\n", formatMoney(t.AmountOwed, currency))
	fmt.Fprintf(tw, "Available:\t%s\n", formatMoney(t.AmountAvailable, currency))
	fmt.Fprintf(tw, "Utilization:\t%s\n", used)
	fmt.Fprintf(tw, "Minimum payments:\t%s\n", formatMoney(t.MinimumMonthlyPayment, currency))
	return tw.Flush()
}

func newUpcomingCommand(opts *RootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List minimum payments due soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return NewExitError(ExitUsage, "--days must be positive")
			}

			f := opts.formatter(cmd)
			result := opts.sync.Load(cmd.Context())
			warnIfStale(f, result)

			payments := metrics.UpcomingPayments(result.Accounts, opts.now(), time.Duration(days)*24*time.Hour)
			return f.Render(payments, func(w io.Writer) error {
				return writeUpcoming(w, payments, days, f.Currency)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", int(metrics.DefaultUpcomingWindow/(24*time.Hour)), "lookahead window in days")
	return cmd
}

func writeUpcoming(w io.Writer, payments []models.UpcomingPayment, days int, currency string) error {
	if len(payments) == 0 {
		_, err := fmt.Fprintf(w, "No payments due in the next %d days\n", days)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DUE\tIN\tACCOUNT\tMINIMUM")
	for _, p := range payments {
		in := fmt.Sprintf("%d days", p.DaysUntilDue)
		switch p.DaysUntilDue {
		case 0:
			in = "today"
		case 1:
			in = "1 day"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.FormattedDate, in, p.AccountName, formatMoney(p.Amount, currency))
	}
	return tw.Flush()
}

func newExportCommand(opts *RootOptions) *cobra.Command {
	var (
		output    string
		sortField string
		desc      bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the accounts as CSV",
		Long:  "Write the accounts as CSV, in list order or sorted by --sort. Without -o the CSV goes to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := metrics.ParseSortField(sortField)
			if err != nil {
				return WrapExitError(ExitUsage, "invalid --sort", err)
			}
			state := metrics.SortState{Field: field, Direction: metrics.Ascending}
			if desc {
				state.Direction = metrics.Descending
			}

			f := opts.formatter(cmd)
			result := opts.sync.Load(cmd.Context())
			warnIfStale(f, result)
			accounts := metrics.Sort(result.Accounts, state)

			if output == "" || output == "-" {
				return export.WriteCSV(cmd.OutOrStdout(), accounts)
			}

			file, err := os.Create(output)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to create export file", err)
			}
			if err := export.WriteCSV(file, accounts); err != nil {
				file.Close()
				return WrapExitError(ExitFailure, "failed to write export file", err)
			}
			if err := file.Close(); err != nil {
				return WrapExitError(ExitFailure, "failed to write export file", err)
			}
			fmt.Fprintf(f.ErrWriter, "Exported %d accounts to %s\n", len(accounts), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default "+export.FileName+" on stdout)")
	cmd.Flags().StringVar(&sortField, "sort", "", "column to sort by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}
