// Package schedule holds the pure planning logic behind the day view: the
// Monday-first week strip around a selected date and the grouping of a day's
// activities into display sections. Everything here is side-effect free and
// safe to call from any caller.
package schedule

import "time"

// WeekDay pairs a calendar date with its native weekday so callers can look
// up locale labels without re-deriving them.
type WeekDay struct {
	Date    time.Time
	Weekday time.Weekday
}

// WeekStrip is the seven-day Monday-through-Sunday run containing a
// reference date. The sequence is always Monday first regardless of which
// day was selected.
type WeekStrip [7]WeekDay

// StartOfWeek returns midnight on the Monday on or before ref, in ref's
// location. Sunday counts as the last day of the prior week.
func StartOfWeek(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	back := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		back = 6
	}
	return day.AddDate(0, 0, -back)
}

// ComputeWeekStrip returns the week strip containing ref. The reference date
// is always an explicit input; nothing here caches "today".
func ComputeWeekStrip(ref time.Time) WeekStrip {
	monday := StartOfWeek(ref)
	var strip WeekStrip
	for i := range strip {
		d := monday.AddDate(0, 0, i)
		strip[i] = WeekDay{Date: d, Weekday: d.Weekday()}
	}
	return strip
}

// Contains reports whether the strip covers the calendar day of d.
func (ws WeekStrip) Contains(d time.Time) bool {
	for _, wd := range ws {
		if wd.Date.Year() == d.Year() && wd.Date.YearDay() == d.YearDay() {
			return true
		}
	}
	return false
}
