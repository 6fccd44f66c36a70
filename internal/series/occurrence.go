// Package series implements the budget series engine: occurrence
// calculation, idempotent materialization of budget rows and the
// mutation handling for edits of single instances of a recurring
// series.
package series

import (
	"time"

	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
)

// Occurrences computes the ordered occurrence dates of a series from
// its start date up to and including the horizon date.
//
// skipped is the number of skip exceptions recorded for the series.
// Skipped occurrences still consume a slot of the series count, so the
// effective count limit is series count plus skipped.
//
// Monthly occurrences are spaced by calendar months computed from the
// start date, clamping to the last day of shorter months while
// preserving the start day (a series starting on the 31st falls on
// Feb 29 and is back on the 31st in March). Weekly occurrences are
// spaced by flat 7 day periods.
//
// The function is pure: no clock access, no I/O.
func Occurrences(s models.BudgetSeries, skipped int, horizon types.Date) ([]types.Date, error) {
	if !s.Frequency.Valid() {
		return nil, models.ErrSeriesFrequencyInvalid
	}

	end := horizon
	if s.Until != nil {
		end = types.Min(*s.Until, horizon)
	}

	limit := -1
	if s.Count != nil {
		limit = int(*s.Count) + skipped
	}

	var occurrences []types.Date
	for k := 0; limit < 0 || k < limit; k++ {
		date := occurrenceAt(s, k)
		if date.After(end) {
			break
		}

		occurrences = append(occurrences, date)
	}

	return occurrences, nil
}

// occurrenceAt returns the k-th (0-indexed) occurrence of a series.
// Every occurrence is computed from the start date so that month-end
// clamping never accumulates.
func occurrenceAt(s models.BudgetSeries, k int) types.Date {
	if s.Frequency == models.FrequencyMonthly {
		return s.StartDate.AddMonths(k * int(s.Interval))
	}

	return s.StartDate.AddDays(7 * k * int(s.Interval))
}

// previousOccurrence returns the date one full period before the given
// date, using the series frequency and interval. It is the stop
// boundary when a series has to end because one of its instances was
// edited: the edited instance is excluded from the old series while
// everything strictly before it remains valid history.
func previousOccurrence(s models.BudgetSeries, date types.Date) types.Date {
	if s.Frequency == models.FrequencyMonthly {
		return date.AddMonths(-int(s.Interval))
	}

	return date.AddDays(-7 * int(s.Interval))
}

// occurrencesBefore counts the occurrences of a series dated strictly
// before the given date. When a split ends a series, this is the
// number of count slots the old series keeps.
func occurrencesBefore(s models.BudgetSeries, date types.Date) int {
	n := 0
	for occurrenceAt(s, n).Before(date) {
		n++
	}

	return n
}

// matchesPattern reports whether a date falls on an occurrence of the
// series rule, ignoring the count and until stop conditions.
func matchesPattern(s models.BudgetSeries, date types.Date) bool {
	if date.Before(s.StartDate) {
		return false
	}

	if s.Frequency == models.FrequencyWeekly {
		days := daysBetween(s.StartDate, date)
		return days%(7*int(s.Interval)) == 0
	}

	months := monthsBetween(s.StartDate, date)
	if months%int(s.Interval) != 0 {
		return false
	}

	return s.StartDate.AddMonths(months).Equal(date)
}

func daysBetween(from, to types.Date) int {
	return int(time.Time(to).Sub(time.Time(from)).Hours() / 24)
}

func monthsBetween(from, to types.Date) int {
	fromYear, fromMonth, _ := time.Time(from).Date()
	toYear, toMonth, _ := time.Time(to).Date()

	return (toYear-fromYear)*12 + int(toMonth) - int(fromMonth)
}
