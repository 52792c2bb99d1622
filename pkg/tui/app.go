// Package tui is the full-screen planner: a day view with a week strip and
// sectioned activity list, and a create/edit form for a single activity.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/store"
)

type screen int

const (
	screenDay screen = iota
	screenForm
)

// Model is the root bubbletea model; it owns the two screens and routes
// messages between them.
type Model struct {
	persistence store.Persistence

	// events streams store changes for live refresh; nil when no watcher
	// could be started.
	events <-chan store.Event

	screen screen
	day    dayModel
	form   formModel

	width  int
	height int
}

// New builds the planner opened on the given ISO date.
func New(p store.Persistence, date string) Model {
	return Model{
		persistence: p,
		screen:      screenDay,
		day:         newDayModel(date),
	}
}

// Run starts the planner and blocks until the user quits. Store changes
// made outside the planner (another terminal, another process) refresh the
// open day; live refresh is best effort and the planner still works when
// no watcher could be started.
func Run(p store.Persistence, date string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(p, date)
	if events, err := p.Watch(ctx); err == nil {
		m.events = events
	}

	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// dayLoadedMsg delivers one day's activities. The date rides along so a
// fetch that raced a navigation can be recognized and dropped.
type dayLoadedMsg struct {
	date  string
	items []activity.Activity
}

type dayLoadFailedMsg struct {
	date string
	err  error
}

// mutationDoneMsg reports a completed create/update/delete; date names the
// day that should be refreshed.
type mutationDoneMsg struct {
	date string
}

type mutationFailedMsg struct {
	err error
}

// storeChangedMsg carries one watcher event into the update loop.
type storeChangedMsg struct {
	event store.Event
}

// waitForChange blocks on the watcher channel and resolves to the next
// store change. Re-armed after every delivery.
func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{event: ev}
	}
}

func loadDay(p store.Persistence, date string) tea.Cmd {
	return func() tea.Msg {
		items, err := p.List(context.Background(), date)
		if err != nil {
			return dayLoadFailedMsg{date: date, err: err}
		}
		return dayLoadedMsg{date: date, items: items}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadDay(m.persistence, m.day.selected), m.waitForChange())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case mutationDoneMsg:
		m.screen = screenDay
		if msg.date != "" && msg.date != m.day.selected {
			m.day.jumpTo(msg.date)
		}
		return m, loadDay(m.persistence, m.day.selected)
	case mutationFailedMsg:
		if m.screen == screenForm {
			m.form.errMsg = msg.err.Error()
		} else {
			m.day.status = msg.err.Error()
		}
		return m, nil
	case storeChangedMsg:
		// Refresh only when the change touches the day on screen; the
		// prior list stays up until the reload lands.
		cmds := []tea.Cmd{m.waitForChange()}
		if msg.event.Type == store.EventStoreInvalidated || msg.event.Date == m.day.selected {
			cmds = append(cmds, loadDay(m.persistence, m.day.selected))
		}
		return m, tea.Batch(cmds...)
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	default:
		return m.updateDay(msg)
	}
}

func (m Model) View() string {
	switch m.screen {
	case screenForm:
		return m.form.view()
	default:
		return m.day.view()
	}
}
