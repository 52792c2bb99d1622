package schedule

import "tableflip.dev/dayplan/pkg/activity"

// SectionKey identifies a display bucket in the day view.
type SectionKey string

const (
	Morning   SectionKey = "morning"
	Afternoon SectionKey = "afternoon"
	Evening   SectionKey = "evening"
	Night     SectionKey = "night"
	AllDay    SectionKey = "allDay"
	Completed SectionKey = "completed"
	Expired   SectionKey = "expired"
)

// SectionOrder is the fixed emission order for the day view. Populated
// sections always appear as a subsequence of this list.
var SectionOrder = [...]SectionKey{Morning, Afternoon, Evening, Night, AllDay, Completed, Expired}

// Title is the section heading shown to the user.
func (k SectionKey) Title() string {
	switch k {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	case Night:
		return "Night"
	case AllDay:
		return "All day"
	case Completed:
		return "Completed"
	case Expired:
		return "Expired"
	}
	return string(k)
}

// Section is a named, ordered bucket of activities. Sections are recomputed
// from scratch on every input change and hold no state of their own.
type Section struct {
	Key   SectionKey
	Title string
	Items []activity.Activity
}

// Classify places one activity into its section. First match wins:
// completed and expired trump the time buckets, all-day and timeless
// activities land in the all-day bucket, and only then does the hour decide.
// An unknown status never short-circuits the cascade; it routes by time like
// a normal activity.
func Classify(a activity.Activity) SectionKey {
	switch a.Status {
	case activity.StatusSuccess:
		return Completed
	case activity.StatusDanger:
		return Expired
	}
	hour, ok := a.Hour()
	if !ok {
		return AllDay
	}
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// SectionActivities partitions a day's activities into ordered sections,
// dropping the empty ones. Every input item lands in exactly one section,
// and the input order is preserved within each section.
func SectionActivities(items []activity.Activity) []Section {
	buckets := make(map[SectionKey][]activity.Activity, len(SectionOrder))
	for _, a := range items {
		key := Classify(a)
		buckets[key] = append(buckets[key], a)
	}

	out := make([]Section, 0, len(buckets))
	for _, key := range SectionOrder {
		if len(buckets[key]) == 0 {
			continue
		}
		out = append(out, Section{Key: key, Title: key.Title(), Items: buckets[key]})
	}
	return out
}
