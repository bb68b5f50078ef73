package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"credit-tracker/internal/datasync"
	"credit-tracker/internal/dto"
	"credit-tracker/internal/metrics"
	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
	"credit-tracker/internal/validation"
)

// accountList is the list output: the table rows plus where they came from
type accountList struct {
	Source   datasync.Source      `json:"source"`
	Sort     metrics.SortState    `json:"sort"`
	Accounts []models.Account     `json:"accounts"`
	Totals   models.SummaryTotals `json:"totals"`
}

func newListCommand(opts *RootOptions) *cobra.Command {
	var (
		sortField string
		desc      bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show every account with totals",
		Args:    cobra.NoArgs,
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

			list := accountList{
				Source:   result.Source,
				Sort:     state,
				Accounts: metrics.Sort(result.Accounts, state),
				Totals:   metrics.Totals(result.Accounts),
			}
			return f.Render(list, func(w io.Writer) error {
				return writeAccountTable(w, list, f.Currency)
			})
		},
	}

	cmd.Flags().StringVar(&sortField, "sort", "", "column to sort by (accountName, creditLimit, amountOwed, ...)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func warnIfStale(f *OutputFormatter, result datasync.LoadResult) {
	switch {
	case result.Source == datasync.SourceCache:
		f.Warn("record store unavailable, showing cached accounts")
	case result.RemoteErr != nil:
		f.Warn("record store unavailable and nothing is cached")
	}
}

func writeAccountTable(w io.Writer, list accountList, currency string) error {
	if len(list.Accounts) == 0 {
		_, err := fmt.Fprintln(w, "No accounts yet. Add one with: cardctl add --name NAME --limit AMOUNT")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tNUMBER\tLIMIT\tOWED\tAVAILABLE\tUSED\tMIN PAYMENT\tAPR\tRATE EXPIRES\tREWARDS\tLAST USED\tCYCLE DAY\tID")
	for _, a := range list.Accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Position+1,
			a.AccountName,
			orDash(a.AccountNumber),
			formatMoney(a.CreditLimit, currency),
			formatMoney(a.AmountOwed, currency),
			formatMoney(metrics.AmountAvailable(a), currency),
			formatUtilization(a),
			formatMoney(a.MinimumMonthlyPayment, currency),
			formatRate(a.InterestRate),
			orDash(a.RateExpiration),
			formatMoney(a.Rewards, currency),
			formatOptionalInt(a.LastUsed),
			formatOptionalInt(a.StatementCycleDay),
			a.ID,
		)
	}

	t := list.Totals
	used := "-"
	if t.UtilizationPercent != nil {
		used = fmt.Sprintf("%d%%", *t.UtilizationPercent)
	}
	fmt.Fprintf(tw, "\tTOTAL (%d)\t\t%s\t%s\t%s\t%s\t%s\t\t\t\t\t\t\n",
		t.AccountCount,
		formatMoney(t.CreditLimit, currency),
		formatMoney(t.AmountOwed, currency),
		formatMoney(t.AmountAvailable, currency),
		used,
		formatMoney(t.MinimumMonthlyPayment, currency),
	)
	return tw.Flush()
}

func writeAccount(w io.Writer, verb string, a *models.Account, currency string) error {
	_, err := fmt.Fprintf(w, "%s %q (%s): limit %s, owed %s, available %s\n",
		verb, a.AccountName, a.ID,
		formatMoney(a.CreditLimit, currency),
		formatMoney(a.AmountOwed, currency),
		formatMoney(metrics.AmountAvailable(*a), currency),
	)
	return err
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	form := &accountForm{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account at the end of the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := form.createRequest(cmd.Flags())
			if err := validation.GetValidator().Struct(req); err != nil {
				return formError(err)
			}

			account, err := opts.sync.Create(cmd.Context(), req.ToPatch())
			if err != nil {
				return storeError("failed to add account", err)
			}

			f := opts.formatter(cmd)
			return f.Render(account, func(w io.Writer) error {
				return writeAccount(w, "Added", account, f.Currency)
			})
		},
	}

	form.bind(cmd.Flags())
	requireFlags(cmd, "name", "limit")
	return cmd
}

func newEditCommand(opts *RootOptions) *cobra.Command {
	form := &accountForm{}
	var cleared []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change some fields of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := form.updateRequest(cmd.Flags())
			fields, err := clearFields(cmd.Flags(), cleared)
			if err != nil {
				return NewExitError(ExitUsage, err.Error())
			}
			req.Clear = fields

			patch := req.ToPatch()
			if patch.IsEmpty() {
				return NewExitError(ExitUsage, "nothing to change: pass at least one field flag")
			}
			if err := validation.GetValidator().Struct(req); err != nil {
				return formError(err)
			}

			account, err := opts.sync.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return storeError("failed to update account", err)
			}

			f := opts.formatter(cmd)
			return f.Render(account, func(w io.Writer) error {
				return writeAccount(w, "Updated", account, f.Currency)
			})
		},
	}

	form.bind(cmd.Flags())
	cmd.Flags().StringSliceVar(&cleared, "clear", nil, "blank optional fields: "+clearableFlagNames())
	return cmd
}

func newDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.sync.Delete(cmd.Context(), args[0]); err != nil {
				return storeError("failed to delete account", err)
			}

			result := dto.MessageResponse{Message: "Account deleted successfully"}
			return opts.formatter(cmd).Render(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Deleted %s\n", args[0])
				return err
			})
		},
	}
}

func newPayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id> <amount>",
		Short: "Record a payment, lowering the amount owed (never below zero)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid amount %q", args[1]))
			}
			req := dto.PaymentRequest{Amount: amount}
			if err := validation.GetValidator().Struct(req); err != nil {
				return formError(err)
			}

			account, err := opts.sync.MakePayment(cmd.Context(), args[0], req.Amount)
			if err != nil {
				return storeError("failed to record payment", err)
			}

			f := opts.formatter(cmd)
			return f.Render(account, func(w io.Writer) error {
				return writeAccount(w, "Paid "+formatMoney(req.Amount, f.Currency)+" on", account, f.Currency)
			})
		},
	}
}

func newMoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "move <id> up|down",
		Short:     "Move an account one place up or down the list",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(ordering.Up), string(ordering.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ordering.ParseDirection(args[1])
			if err != nil {
				return WrapExitError(ExitUsage, "invalid direction", err)
			}

			accounts, err := opts.sync.Move(cmd.Context(), args[0], dir)
			if err != nil {
				return storeError("failed to move account", err)
			}

			f := opts.formatter(cmd)
			list := accountList{
				Source:   datasync.SourceRemote,
				Accounts: accounts,
				Totals:   metrics.Totals(accounts),
			}
			return f.Render(list, func(w io.Writer) error {
				return writeAccountTable(w, list, f.Currency)
			})
		},
	}
}
