// Package period computes the calendar windows that stats queries and
// limit evaluation sum over.
//
// All dates are calendar days represented as time.Time at UTC midnight. The
// wall-clock date of the reference time is kept as-is: a reference of
// 2024-04-07T23:30 in Europe/Warsaw is the day 2024-04-07, regardless of the
// equivalent UTC instant.
//
// Weeks start on Sunday and end on Saturday, the numbering time.Weekday
// uses.
package period

import (
	"fmt"
	"time"

	"github.com/mmynk/costtracker/internal/models"
)

// Range is a closed interval of calendar days [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day d falls within the range, both ends
// inclusive.
func (r Range) Contains(d time.Time) bool {
	day := Date(d)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days returns the number of calendar days covered by the range.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(models.DateLayout), r.End.Format(models.DateLayout))
}

// Date truncates t to its calendar day at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar day of now.
func Today(now time.Time) time.Time {
	return Date(now)
}

// Window returns the calendar period of the given kind that contains ref.
func Window(ref time.Time, kind models.PeriodKind) (Range, error) {
	if ref.IsZero() {
		return Range{}, fmt.Errorf("%w: reference date is required", models.ErrInvalidArgument)
	}
	day := Date(ref)
	y, m, _ := day.Date()

	switch kind {
	case models.PeriodDaily:
		return Range{Start: day, End: day}, nil
	case models.PeriodWeekly:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case models.PeriodMonthly:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case models.PeriodQuarterly:
		first := time.Month((int(m)-1)/3*3 + 1)
		start := time.Date(y, first, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(0, 3, -1)}, nil
	case models.PeriodYearly:
		return Range{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, nil
	default:
		return Range{}, fmt.Errorf("%w: unknown period %q", models.ErrInvalidArgument, kind)
	}
}

// Trailing returns the range of days ending on the calendar day of ref and
// reaching back the given number of days before it.
func Trailing(ref time.Time, days int) Range {
	end := Date(ref)
	return Range{Start: end.AddDate(0, 0, -days), End: end}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", models.ErrInvalidArgument)
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", models.ErrInvalidArgument, s)
	}
	return d, nil
}
