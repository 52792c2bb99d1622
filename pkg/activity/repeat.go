package activity

import "time"

// RepeatConfig selects the weekdays an activity repeats on. Keys match the
// stored form (sun..sat).
type RepeatConfig struct {
	Sun bool `json:"sun,omitempty"`
	Mon bool `json:"mon,omitempty"`
	Tue bool `json:"tue,omitempty"`
	Wed bool `json:"wed,omitempty"`
	Thu bool `json:"thu,omitempty"`
	Fri bool `json:"fri,omitempty"`
	Sat bool `json:"sat,omitempty"`
}

// On reports whether the config includes the given weekday.
func (r *RepeatConfig) On(d time.Weekday) bool {
	if r == nil {
		return false
	}
	switch d {
	case time.Sunday:
		return r.Sun
	case time.Monday:
		return r.Mon
	case time.Tuesday:
		return r.Tue
	case time.Wednesday:
		return r.Wed
	case time.Thursday:
		return r.Thu
	case time.Friday:
		return r.Fri
	case time.Saturday:
		return r.Sat
	}
	return false
}

// Set flips the given weekday on or off.
func (r *RepeatConfig) Set(d time.Weekday, on bool) {
	switch d {
	case time.Sunday:
		r.Sun = on
	case time.Monday:
		r.Mon = on
	case time.Tuesday:
		r.Tue = on
	case time.Wednesday:
		r.Wed = on
	case time.Thursday:
		r.Thu = on
	case time.Friday:
		r.Fri = on
	case time.Saturday:
		r.Sat = on
	}
}

// Empty reports whether no weekday is selected.
func (r *RepeatConfig) Empty() bool {
	if r == nil {
		return true
	}
	return !(r.Sun || r.Mon || r.Tue || r.Wed || r.Thu || r.Fri || r.Sat)
}

// Days lists the selected weekdays in Sunday-first order.
func (r *RepeatConfig) Days() []time.Weekday {
	if r == nil {
		return nil
	}
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if r.On(d) {
			days = append(days, d)
		}
	}
	return days
}
