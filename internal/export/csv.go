// Package export renders the account table for download.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"credit-tracker/internal/metrics"
	"credit-tracker/internal/models"
)

// ContentType is the MIME type of WriteCSV output
const ContentType = "text/csv; charset=utf-8"

// FileName is the suggested download name
const FileName = "accounts.csv"

var csvHeaders = []string{
	"Account Name",
	"Account Number",
	"Credit Limit",
	"Amount Owed",
	"Amount Available",
	"Minimum Monthly Payment",
	"Interest Rate",
	"Rate Expiration",
	"Rewards",
	"Last Used",
}

// WriteCSV writes one header line and one line per account, in the order given.
// Text columns are always quoted; absent optional values are written as blanks
// or zeros. Lines are separated by "\n" with no trailing newline.
func WriteCSV(w io.Writer, accounts []models.Account) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(csvHeaders, ",")); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, a := range accounts {
		lastUsed := ""
		if a.LastUsed != nil {
			lastUsed = strconv.Itoa(*a.LastUsed)
		}

		row := []string{
			quote(a.AccountName),
			quote(a.AccountNumber),
			number(a.CreditLimit),
			number(a.AmountOwed),
			number(metrics.AmountAvailable(a)),
			number(a.MinimumMonthlyPayment),
			number(a.InterestRate),
			a.RateExpiration,
			number(a.Rewards),
			lastUsed,
		}

		if _, err := bw.WriteString("\n" + strings.Join(row, ",")); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
