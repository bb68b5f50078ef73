package metrics

import (
	"sort"
	"time"

	"credit-tracker/internal/models"
)

// DefaultUpcomingWindow is how far ahead payments are listed
const DefaultUpcomingWindow = 30 * 24 * time.Hour

const upcomingDateLayout = "Jan 2"

// UpcomingPayments lists the minimum payments falling due within window of now.
// The due date is the next statement cycle day on or after today, clamped to the
// last day of shorter months. Accounts without a cycle day or a minimum payment
// are skipped. Results are ordered by due date, then account name.
func UpcomingPayments(accounts []models.Account, now time.Time, window time.Duration) []models.UpcomingPayment {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := today.Add(window)

	payments := make([]models.UpcomingPayment, 0)
	for _, a := range accounts {
		if a.StatementCycleDay == nil || a.MinimumMonthlyPayment <= 0 {
			continue
		}

		due := nextDueDate(today, *a.StatementCycleDay)
		if due.After(limit) {
			continue
		}

		payments = append(payments, models.UpcomingPayment{
			AccountID:     a.ID,
			AccountName:   a.AccountName,
			Amount:        a.MinimumMonthlyPayment,
			DueDate:       due,
			FormattedDate: due.Format(upcomingDateLayout),
			DaysUntilDue:  daysBetween(today, due),
		})
	}

	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].DueDate.Equal(payments[j].DueDate) {
			return payments[i].DueDate.Before(payments[j].DueDate)
		}
		return payments[i].AccountName < payments[j].AccountName
	})

	return payments
}

func nextDueDate(today time.Time, cycleDay int) time.Time {
	due := dayInMonth(today.Year(), today.Month(), cycleDay, today.Location())
	if due.Before(today) {
		due = dayInMonth(today.Year(), today.Month()+1, cycleDay, today.Location())
	}
	return due
}

func dayInMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	// day 0 of the following month is the last day of this one
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}
