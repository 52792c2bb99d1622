package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dayplan/pkg/activity"
)

// Focus positions on the form, top to bottom.
const (
	fieldTitle = iota
	fieldCategory
	fieldDate
	fieldTime
	fieldNotes
	fieldAllDay
	fieldRemind
	fieldRepeat
	fieldCount
)

// formModel is the create/edit screen for a single activity. An empty id
// means a create; otherwise the save updates in place.
type formModel struct {
	id     string
	status activity.Status

	title    textinput.Model
	category textinput.Model
	date     textinput.Model
	clock    textinput.Model
	notes    textinput.Model

	allDay bool
	remind bool
	repeat activity.RepeatConfig

	// The form has no subtask rows yet; carry the checklist through so a
	// save never wipes it.
	subtasks []activity.Subtask

	focus        int
	repeatCursor time.Weekday

	errMsg string
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// newFormModel opens a blank form for the given day. The time defaults to
// the current clock, matching what the create screen has always done.
func newFormModel(date string) formModel {
	f := baseForm()
	f.status = activity.StatusNormal
	f.date.SetValue(date)
	f.clock.SetValue(time.Now().Format(activity.ClockLayout))
	f.title.Focus()
	return f
}

// editFormModel opens the form pre-filled from a stored activity.
func editFormModel(a activity.Activity) formModel {
	f := baseForm()
	f.id = a.ID
	f.status = a.Status
	f.title.SetValue(a.Title)
	f.category.SetValue(a.Category)
	f.date.SetValue(a.Date)
	if a.Time != "" {
		f.clock.SetValue(a.TimePill())
	} else {
		f.clock.SetValue(time.Now().Format(activity.ClockLayout))
	}
	f.notes.SetValue(a.Notes)
	f.allDay = a.AllDay
	f.remind = a.Remind
	if a.Repeat != nil {
		f.repeat = *a.Repeat
	}
	f.subtasks = a.Subtasks
	f.title.Focus()
	return f
}

func baseForm() formModel {
	return formModel{
		title:    newInput("What needs doing?", 200),
		category: newInput("study, gym, work...", 30),
		date:     newInput(activity.DateLayout, len(activity.DateLayout)),
		clock:    newInput(activity.ClockLayout, len(activity.ClockLayout)),
		notes:    newInput("notes or details...", 2000),
		focus:    fieldTitle,
	}
}

func (f *formModel) inputs() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.category, &f.date, &f.clock, &f.notes}
}

func (f *formModel) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	// Skip the time row while all-day is on.
	if f.focus == fieldTime && f.allDay {
		if i > fieldTime {
			f.focus = fieldNotes
		} else {
			f.focus = fieldDate
		}
	}
	for idx, in := range f.inputs() {
		if idx == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// payload builds the activity the save will write; all-day clears the time.
func (f *formModel) payload() activity.Activity {
	a := activity.Activity{
		ID:       f.id,
		Title:    strings.TrimSpace(f.title.Value()),
		Category: strings.TrimSpace(f.category.Value()),
		Date:     strings.TrimSpace(f.date.Value()),
		AllDay:   f.allDay,
		Remind:   f.remind,
		Subtasks: f.subtasks,
		Notes:    strings.TrimSpace(f.notes.Value()),
		Status:   f.status,
	}
	if !a.AllDay {
		a.Time = strings.TrimSpace(f.clock.Value())
	}
	if !f.repeat.Empty() {
		r := f.repeat
		a.Repeat = &r
	}
	return a
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.screen = screenDay
			return m, nil
		case "tab", "down":
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.form.setFocus(m.form.focus - 1)
			return m, nil
		case "enter":
			return m, m.saveCmd(m.form.payload())
		case " ":
			switch m.form.focus {
			case fieldAllDay:
				m.form.allDay = !m.form.allDay
				return m, nil
			case fieldRemind:
				m.form.remind = !m.form.remind
				return m, nil
			case fieldRepeat:
				d := m.form.repeatCursor
				m.form.repeat.Set(d, !m.form.repeat.On(d))
				return m, nil
			}
		case "left":
			if m.form.focus == fieldRepeat {
				m.form.repeatCursor = (m.form.repeatCursor + 6) % 7
				return m, nil
			}
		case "right":
			if m.form.focus == fieldRepeat {
				m.form.repeatCursor = (m.form.repeatCursor + 1) % 7
				return m, nil
			}
		}
	}

	// Route everything else to the focused text input.
	if m.form.focus < fieldAllDay {
		var cmd tea.Cmd
		in := m.form.inputs()[m.form.focus]
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) saveCmd(a activity.Activity) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		var (
			saved activity.Activity
			err   error
		)
		if a.ID == "" {
			saved, err = p.Create(context.Background(), a)
		} else {
			saved, err = p.Update(context.Background(), a.ID, a)
		}
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{date: saved.Date}
	}
}

func (f formModel) view() string {
	var b strings.Builder

	heading := "New activity"
	if f.id != "" {
		heading = "Edit activity"
	}
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n\n")

	row := func(idx int, label, value string) {
		marker := "  "
		if f.focus == idx {
			marker = selectedStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row(fieldTitle, "title", f.title.View())
	row(fieldCategory, "category", f.category.View())
	row(fieldDate, "date", f.date.View())
	if f.allDay {
		row(fieldTime, "time", mutedStyle.Render("all day"))
	} else {
		row(fieldTime, "time", f.clock.View())
	}
	row(fieldNotes, "notes", f.notes.View())
	row(fieldAllDay, "all day", checkbox(f.allDay))
	row(fieldRemind, "remind", checkbox(f.remind)+remindHint(f.remind))

	cells := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		cell := dayLabels[d]
		if f.repeat.On(d) {
			cell = successStyle.Render(cell)
		} else {
			cell = mutedStyle.Render(cell)
		}
		if f.focus == fieldRepeat && d == f.repeatCursor {
			cell = selectedStyle.Render(dayLabels[d])
		}
		cells = append(cells, cell)
	}
	row(fieldRepeat, "repeat", strings.Join(cells, " "))

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓ move · space toggle · enter save · esc cancel"))
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "☑"
	}
	return "☐"
}

func remindHint(on bool) string {
	if !on {
		return ""
	}
	return mutedStyle.Render("  5 min before")
}
