package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/schedule"
)

// dayLabels is indexed by time.Weekday (Sunday == 0).
var dayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

const headingLayout = "Monday, January 2, 2006"

// dayModel holds the day screen: selected date, its week strip, and the
// sectioned activities. Strip and sections are derived state, recomputed
// whenever the date or the loaded items change.
type dayModel struct {
	selected string
	strip    schedule.WeekStrip
	sections []schedule.Section

	cursor  int // index into the flattened item list
	total   int // flattened item count
	loading bool
	status  string
}

func newDayModel(date string) dayModel {
	d := dayModel{loading: true}
	d.jumpTo(date)
	return d
}

// jumpTo moves the selection to the given ISO date and re-derives the strip.
func (d *dayModel) jumpTo(date string) {
	d.selected = date
	ref, err := activity.ParseDate(date)
	if err != nil {
		ref = time.Now()
		d.selected = activity.FormatDate(ref)
	}
	d.strip = schedule.ComputeWeekStrip(ref)
}

// shift moves the selection by days, crossing week boundaries freely.
func (d *dayModel) shift(days int) {
	ref, err := activity.ParseDate(d.selected)
	if err != nil {
		ref = time.Now()
	}
	d.jumpTo(activity.FormatDate(ref.AddDate(0, 0, days)))
}

func (d *dayModel) setItems(items []activity.Activity) {
	d.sections = schedule.SectionActivities(items)
	d.total = 0
	for _, s := range d.sections {
		d.total += len(s.Items)
	}
	if d.cursor >= d.total {
		d.cursor = d.total - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
	d.loading = false
}

// current returns the activity under the cursor.
func (d *dayModel) current() (activity.Activity, bool) {
	i := 0
	for _, s := range d.sections {
		for _, a := range s.Items {
			if i == d.cursor {
				return a, true
			}
			i++
		}
	}
	return activity.Activity{}, false
}

func (m Model) updateDay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		// A slow fetch for a day we already navigated away from is stale;
		// keep what is on screen.
		if msg.date != m.day.selected {
			return m, nil
		}
		m.day.setItems(msg.items)
		m.day.status = ""
		return m, nil

	case dayLoadFailedMsg:
		if msg.date != m.day.selected {
			return m, nil
		}
		// Keep the prior list; just surface the failure.
		m.day.loading = false
		m.day.status = "load failed: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.day.shift(-1)
			m.day.loading = true
			return m, loadDay(m.persistence, m.day.selected)
		case "right", "l":
			m.day.shift(1)
			m.day.loading = true
			return m, loadDay(m.persistence, m.day.selected)
		case "shift+left", "H":
			m.day.shift(-7)
			m.day.loading = true
			return m, loadDay(m.persistence, m.day.selected)
		case "shift+right", "L":
			m.day.shift(7)
			m.day.loading = true
			return m, loadDay(m.persistence, m.day.selected)
		case "t":
			m.day.jumpTo(activity.FormatDate(time.Now()))
			m.day.loading = true
			return m, loadDay(m.persistence, m.day.selected)
		case "up", "k":
			if m.day.cursor > 0 {
				m.day.cursor--
			}
			return m, nil
		case "down", "j":
			if m.day.cursor < m.day.total-1 {
				m.day.cursor++
			}
			return m, nil
		case "r":
			m.day.loading = true
			return m, loadDay(m.persistence, m.day.selected)
		case "a":
			m.form = newFormModel(m.day.selected)
			m.screen = screenForm
			return m, nil
		case "enter", "e":
			if a, ok := m.day.current(); ok {
				m.form = editFormModel(a)
				m.screen = screenForm
			}
			return m, nil
		case "c":
			if a, ok := m.day.current(); ok {
				return m, m.markCmd(a, activity.StatusSuccess)
			}
			return m, nil
		case "x":
			if a, ok := m.day.current(); ok {
				return m, m.markCmd(a, activity.StatusDanger)
			}
			return m, nil
		case "d":
			if a, ok := m.day.current(); ok {
				return m, m.deleteCmd(a)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) markCmd(a activity.Activity, status activity.Status) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		a.Status = status
		updated, err := p.Update(context.Background(), a.ID, a)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{date: updated.Date}
	}
}

func (m Model) deleteCmd(a activity.Activity) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		if err := p.Delete(context.Background(), a.ID); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{date: a.Date}
	}
}

func (d dayModel) view() string {
	var b strings.Builder

	today := activity.FormatDate(time.Now())
	chips := make([]string, 0, len(d.strip))
	for _, wd := range d.strip {
		date := activity.FormatDate(wd.Date)
		label := fmt.Sprintf("%s %2d", dayLabels[wd.Weekday], wd.Date.Day())
		switch {
		case date == d.selected:
			chips = append(chips, chipSelectedStyle.Render(label))
		case date == today:
			chips = append(chips, chipTodayStyle.Render(label))
		default:
			chips = append(chips, chipStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n\n")

	if ref, err := activity.ParseDate(d.selected); err == nil {
		b.WriteString(headingStyle.Render(ref.Format(headingLayout)))
		b.WriteString("\n\n")
	}

	switch {
	case d.loading:
		b.WriteString(mutedStyle.Render("loading..."))
		b.WriteString("\n")
	case d.total == 0:
		b.WriteString(mutedStyle.Render("no activities yet"))
		b.WriteString("\n")
	default:
		i := 0
		for _, s := range d.sections {
			b.WriteString(sectionStyle.Render(s.Title))
			b.WriteString("\n")
			for _, a := range s.Items {
				line := fmt.Sprintf("%-8s %s  %s",
					pillStyle.Render(a.TimePill()), a.Title, statusBadge(a.Status))
				if i == d.cursor {
					b.WriteString(selectedStyle.Render("> " + line))
				} else {
					b.WriteString("  " + line)
				}
				b.WriteString("\n")
				i++
			}
			b.WriteString("\n")
		}
	}

	if d.status != "" {
		b.WriteString(errorStyle.Render(d.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ day · shift+←/→ week · t today · a add · enter edit · c complete · x expire · d delete · r reload · q quit"))
	return b.String()
}

func statusBadge(s activity.Status) string {
	switch s {
	case activity.StatusSuccess:
		return successStyle.Render(s.Badge())
	case activity.StatusDanger:
		return dangerStyle.Render(s.Badge())
	case activity.StatusWarning:
		return warningStyle.Render(s.Badge())
	default:
		return mutedStyle.Render(s.Badge())
	}
}
