package domain

import (
	"time"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

// Filter names a date-window rule for collection queries.
type Filter string

// Date filters. FilterCustom is the default when the caller omits the filter.
const (
	FilterPastWeek    Filter = "pastWeek"
	FilterPastMonth   Filter = "pastMonth"
	FilterLast3Months Filter = "last3Months"
	FilterCustom      Filter = "custom"
)

// DateWindow is a resolved half-open interval [Start, End). It is always
// non-empty: Start < End.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the instant falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ResolveDateWindow translates a named filter or explicit bounds into a
// concrete half-open instant interval.
//
// Relative filters are anchored to now (always the Clock's instant, never
// caller input) and cover full past days up to but excluding today:
//
//	pastWeek:    [startOfDay(today - 7 days), startOfDay(today))
//	pastMonth:   [startOfDay(today - 1 calendar month), startOfDay(today))
//	last3Months: [startOfDay(today - 3 calendar months), startOfDay(today))
//
// Month subtraction is calendar arithmetic with end-of-month clamping, so the
// window length varies between 28 and 31 days: March 31 minus one month is
// February 28 (or 29), never March 3.
//
// FilterCustom requires both bounds and covers every instant of the end date:
// [startOfDay(start), startOfDay(end) + 1 day). An empty filter defaults to
// FilterCustom. Missing custom bounds or an unknown filter name return
// ErrInvalidInput.
func ResolveDateWindow(filter Filter, startDate, endDate *time.Time, now time.Time) (DateWindow, error) {
	if filter == "" {
		filter = FilterCustom
	}

	today := startOfDay(now)

	switch filter {
	case FilterPastWeek:
		return DateWindow{Start: today.AddDate(0, 0, -7), End: today}, nil

	case FilterPastMonth:
		return DateWindow{Start: minusCalendarMonths(today, 1), End: today}, nil

	case FilterLast3Months:
		return DateWindow{Start: minusCalendarMonths(today, 3), End: today}, nil

	case FilterCustom:
		if startDate == nil || endDate == nil {
			return DateWindow{}, apperrors.Wrap(apperrors.ErrInvalidInput,
				"custom filter requires both start_date and end_date")
		}
		start := startOfDay(*startDate)
		end := startOfDay(*endDate).AddDate(0, 0, 1)
		if !start.Before(end) {
			return DateWindow{}, apperrors.Wrap(apperrors.ErrInvalidInput,
				"start_date must not be after end_date")
		}
		return DateWindow{Start: start, End: end}, nil

	default:
		return DateWindow{}, apperrors.Wrap(apperrors.ErrInvalidInput,
			"unknown filter: valid values are pastWeek, pastMonth, last3Months, custom")
	}
}

// startOfDay truncates an instant to midnight of its calendar date.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// minusCalendarMonths subtracts whole calendar months, clamping the day to the
// last day of the target month instead of letting it normalize forward.
func minusCalendarMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	m := int(month) - months
	y := year
	for m < 1 {
		m += 12
		y--
	}

	if last := daysInMonth(y, time.Month(m)); day > last {
		day = last
	}

	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
