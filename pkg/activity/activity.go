package activity

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for activity dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for activity clock times.
	ClockLayout = "15:04"
)

// New returns an activity for the given day with the default status.
func New(date, title string) *Activity {
	return &Activity{
		Date:   date,
		Title:  title,
		Status: StatusNormal,
	}
}

// Activity is the domain model for a single scheduled activity. Field names
// on the wire follow the backing schema: all_day, remind_offset_min, and so
// on.
type Activity struct {
	ID              string        `json:"id,omitempty"`
	Date            string        `json:"date"`
	AllDay          bool          `json:"all_day"`
	Time            string        `json:"time,omitempty"`
	Title           string        `json:"title"`
	Category        string        `json:"category,omitempty"`
	Status          Status        `json:"status,omitempty"`
	Remind          bool          `json:"remind,omitempty"`
	RemindOffsetMin int           `json:"remind_offset_min,omitempty"`
	Subtasks        []Subtask     `json:"subtasks,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Repeat          *RepeatConfig `json:"repeat_config,omitempty"`
	Created         Timestamp     `json:"created,omitempty"`
	Updated         Timestamp     `json:"updated,omitempty"`
}

// Subtask is a small checklist item attached to an activity. The core never
// interprets it; it rides along through the store.
type Subtask struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// NextSubtaskID returns an id one past the highest one in use, so deleted
// subtasks never get their id reissued.
func NextSubtaskID(subs []Subtask) int64 {
	var max int64
	for _, s := range subs {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// Hour reports the hour component of Time. ok is false when the activity is
// all-day, the time is absent, or the string does not start with a valid
// 0-23 hour. Malformed input is never an error; callers treat it the same
// as an absent time.
func (a Activity) Hour() (int, bool) {
	if a.AllDay || a.Time == "" {
		return 0, false
	}
	h, _, found := strings.Cut(a.Time, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// TimePill is the short time label shown next to an activity.
func (a Activity) TimePill() string {
	if a.AllDay {
		return "all day"
	}
	if a.Time == "" {
		return "-"
	}
	if len(a.Time) > len(ClockLayout) {
		return a.Time[:len(ClockLayout)]
	}
	return a.Time
}

// Day parses the activity date. The zero time is returned for an
// unparsable date.
func (a Activity) Day() time.Time {
	t, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDate parses a wire-format calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock parses a wire-format clock time, with or without seconds.
// Unlike Hour, this checks every component, so "09:99" fails here.
func ParseClock(s string) (time.Time, error) {
	if t, err := time.Parse(ClockLayout+":05", s); err == nil {
		return t, nil
	}
	return time.Parse(ClockLayout, s)
}

// FormatDate renders t as a wire-format calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
