package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/schedule"
)

// PrettyPrint renders day views and single activities for the terminal.
type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

	// indexed by time.Weekday (Sunday == 0), like the day-chip labels.
	dayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
)

const headingLayout = "Monday, January 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// DayHeading prints the long-form date heading for a selected day.
func (pp *PrettyPrint) DayHeading(date time.Time) {
	pp.Title(date.Format(headingLayout))
}

// WeekStrip prints the seven day chips Monday through Sunday, highlighting
// the selected date.
func (pp *PrettyPrint) WeekStrip(strip schedule.WeekStrip, selected string) {
	plain := color.New(color.Faint)
	chosen := color.New(color.Bold, color.FgHiMagenta)

	if pp.ShowID {
		fmt.Print(spacing)
	}
	cells := make([]string, 0, len(strip))
	for _, wd := range strip {
		label := fmt.Sprintf("%s %2d", dayLabels[wd.Weekday], wd.Date.Day())
		if activity.FormatDate(wd.Date) == selected {
			cells = append(cells, chosen.Sprint(label))
		} else {
			cells = append(cells, plain.Sprint(label))
		}
	}
	_, _ = fmt.Fprintln(color.Output, strings.Join(cells, "  "))
	fmt.Println("")
}

// Section prints one section heading and its activities.
func (pp *PrettyPrint) Section(s schedule.Section) {
	h := color.New(color.Bold)
	if pp.ShowID {
		_, _ = h.Print(spacing)
	}
	_, _ = h.Println(s.Title)
	pp.Activities(s.Items...)
}

// Activities prints activity rows: optional id, time pill, title, badge.
func (pp *PrettyPrint) Activities(items ...activity.Activity) {
	if len(items) == 0 {
		pp.Empty()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range items {
		title := a.Title
		if title == "" {
			title = "(untitled)"
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(a.ID), a.TimePill(), title, pp.badge(a.Status))
		} else {
			tbl.AddRow(a.TimePill(), title, pp.badge(a.Status))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Empty prints the no-activities placeholder line.
func (pp *PrettyPrint) Empty() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" no activities yet\n\n")
}

// Detail prints the full record for one activity.
func (pp *PrettyPrint) Detail(a activity.Activity) {
	pp.Title(a.Title)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("id", a.ID)
	tbl.AddRow("date", a.Date)
	tbl.AddRow("time", a.TimePill())
	if a.Category != "" {
		tbl.AddRow("category", a.Category)
	}
	tbl.AddRow("status", pp.badge(a.Status))
	if a.Remind {
		tbl.AddRow("remind", fmt.Sprintf("%d min before", a.RemindOffsetMin))
	}
	if a.Repeat != nil {
		labels := make([]string, 0, 7)
		for _, d := range a.Repeat.Days() {
			labels = append(labels, dayLabels[d])
		}
		tbl.AddRow("repeat", strings.Join(labels, " "))
	}
	if a.Notes != "" {
		tbl.AddRow("notes", a.Notes)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(a.Subtasks) > 0 {
		sub := uitable.New()
		sub.Separator = " "
		for _, st := range a.Subtasks {
			box := "☐"
			if st.Completed {
				box = "☑"
			}
			// The id is what edit's --toggle-subtask and --rm-subtask take.
			sub.AddRow(box, fmt.Sprintf("[%d]", st.ID), st.Text)
		}
		_, _ = fmt.Fprintln(color.Output, sub)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) badge(s activity.Status) string {
	var c *color.Color
	switch s {
	case activity.StatusSuccess:
		c = color.New(color.FgGreen)
	case activity.StatusDanger:
		c = color.New(color.FgRed)
	case activity.StatusWarning:
		c = color.New(color.FgYellow)
	default:
		// Unknown tags read like normal ones; only the label differs.
		c = color.New(color.Faint)
	}
	return c.Sprint(s.Badge())
}
