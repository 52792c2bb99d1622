package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/store"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	got, ok := m.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", m)
	}
	return got
}

func TestDayNavigation(t *testing.T) {
	m := New(store.NewInMemory(), "2024-06-12")

	next, _ := m.Update(keyMsg("right"))
	m = asModel(t, next)
	if m.day.selected != "2024-06-13" {
		t.Fatalf("right: expected 2024-06-13, got %s", m.day.selected)
	}

	next, _ = m.Update(keyMsg("L"))
	m = asModel(t, next)
	if m.day.selected != "2024-06-20" {
		t.Fatalf("jump forward: expected 2024-06-20, got %s", m.day.selected)
	}

	next, _ = m.Update(keyMsg("left"))
	m = asModel(t, next)
	if m.day.selected != "2024-06-19" {
		t.Fatalf("left: expected 2024-06-19, got %s", m.day.selected)
	}

	next, _ = m.Update(keyMsg("t"))
	m = asModel(t, next)
	if m.day.selected != activity.FormatDate(time.Now()) {
		t.Fatalf("today: expected today, got %s", m.day.selected)
	}
}

func TestStaleLoadDropped(t *testing.T) {
	m := New(store.NewInMemory(), "2024-06-12")

	// A fetch for a day the user already navigated away from must not
	// overwrite the current screen.
	next, _ := m.Update(dayLoadedMsg{
		date:  "2024-06-11",
		items: []activity.Activity{{ID: "a", Date: "2024-06-11", Title: "stale"}},
	})
	m = asModel(t, next)
	if m.day.total != 0 {
		t.Fatalf("stale load leaked %d items into the view", m.day.total)
	}

	next, _ = m.Update(dayLoadedMsg{
		date:  "2024-06-12",
		items: []activity.Activity{{ID: "b", Date: "2024-06-12", Title: "fresh"}},
	})
	m = asModel(t, next)
	if m.day.total != 1 {
		t.Fatalf("expected the fresh load to land, got %d items", m.day.total)
	}
}

func TestLoadFailureKeepsPriorList(t *testing.T) {
	m := New(store.NewInMemory(), "2024-06-12")

	next, _ := m.Update(dayLoadedMsg{
		date:  "2024-06-12",
		items: []activity.Activity{{ID: "a", Date: "2024-06-12", Title: "standup"}},
	})
	m = asModel(t, next)

	next, _ = m.Update(dayLoadFailedMsg{date: "2024-06-12", err: errors.New("boom")})
	m = asModel(t, next)
	if m.day.total != 1 {
		t.Fatalf("load failure dropped the prior list, got %d items", m.day.total)
	}
	if m.day.status == "" {
		t.Fatal("expected a failure notice in the status line")
	}
}

func TestOpenFormAndCancel(t *testing.T) {
	m := New(store.NewInMemory(), "2024-06-12")

	next, _ := m.Update(keyMsg("a"))
	m = asModel(t, next)
	if m.screen != screenForm {
		t.Fatal("expected the add key to open the form")
	}
	if m.form.id != "" {
		t.Fatal("add should open a blank form")
	}
	if m.form.date.Value() != "2024-06-12" {
		t.Fatalf("form date: got %q", m.form.date.Value())
	}

	next, _ = m.Update(keyMsg("esc"))
	m = asModel(t, next)
	if m.screen != screenDay {
		t.Fatal("expected esc to return to the day view")
	}
}

func TestFormPayloadAllDayClearsTime(t *testing.T) {
	f := newFormModel("2024-06-12")
	f.title.SetValue("laundry")
	f.allDay = true

	a := f.payload()
	if !a.AllDay {
		t.Fatal("expected all-day payload")
	}
	if a.Time != "" {
		t.Fatalf("all-day payload kept a time: %q", a.Time)
	}
	if a.Title != "laundry" || a.Date != "2024-06-12" {
		t.Fatalf("unexpected payload: %+v", a)
	}
}

func TestFormPayloadRepeat(t *testing.T) {
	f := newFormModel("2024-06-12")
	f.title.SetValue("gym")

	a := f.payload()
	if a.Repeat != nil {
		t.Fatal("untouched repeat should stay nil")
	}

	f.repeat.Set(time.Monday, true)
	a = f.payload()
	if a.Repeat == nil || !a.Repeat.On(time.Monday) {
		t.Fatalf("expected monday repeat, got %+v", a.Repeat)
	}
}

func TestFormSkipsTimeRowWhenAllDay(t *testing.T) {
	f := newFormModel("2024-06-12")
	f.allDay = true
	f.setFocus(fieldDate)
	f.setFocus(f.focus + 1)
	if f.focus == fieldTime {
		t.Fatal("focus landed on the time row of an all-day form")
	}
}

func TestMutationDoneRefreshesDay(t *testing.T) {
	p := store.NewInMemory()
	m := New(p, "2024-06-12")
	m.screen = screenForm

	next, cmd := m.Update(mutationDoneMsg{date: "2024-06-14"})
	m = asModel(t, next)
	if m.screen != screenDay {
		t.Fatal("expected a finished mutation to return to the day view")
	}
	if m.day.selected != "2024-06-14" {
		t.Fatalf("expected the view to follow the saved day, got %s", m.day.selected)
	}
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	if _, ok := cmd().(dayLoadedMsg); !ok {
		t.Fatal("expected the reload to produce a day load")
	}
}

func TestWaitForChangeDeliversEvents(t *testing.T) {
	ch := make(chan store.Event, 1)
	ch <- store.Event{Type: store.EventDayChanged, Date: "2024-06-12"}

	m := New(store.NewInMemory(), "2024-06-12")
	m.events = ch

	cmd := m.waitForChange()
	if cmd == nil {
		t.Fatal("expected a watch command once events are wired")
	}
	raw := cmd()
	msg, ok := raw.(storeChangedMsg)
	if !ok {
		t.Fatalf("expected a store change, got %T", raw)
	}
	if msg.event.Date != "2024-06-12" {
		t.Fatalf("unexpected event: %+v", msg.event)
	}

	if New(store.NewInMemory(), "2024-06-12").waitForChange() != nil {
		t.Fatal("no watcher means no watch command")
	}
}

func TestStoreChangeRefreshesSelectedDay(t *testing.T) {
	p := store.NewInMemory()
	m := New(p, "2024-06-12")

	// A change on another day is ignored.
	next, cmd := m.Update(storeChangedMsg{event: store.Event{Type: store.EventDayChanged, Date: "2024-06-11"}})
	m = asModel(t, next)
	if cmd != nil {
		t.Fatal("change on another day must not trigger a reload")
	}

	next, cmd = m.Update(storeChangedMsg{event: store.Event{Type: store.EventDayChanged, Date: "2024-06-12"}})
	m = asModel(t, next)
	if cmd == nil {
		t.Fatal("change on the selected day must trigger a reload")
	}
	loaded, ok := cmd().(dayLoadedMsg)
	if !ok || loaded.date != "2024-06-12" {
		t.Fatalf("expected a reload of the selected day, got %T", cmd())
	}

	_, cmd = m.Update(storeChangedMsg{event: store.Event{Type: store.EventStoreInvalidated}})
	if cmd == nil {
		t.Fatal("a store invalidation must trigger a reload")
	}
}

func TestEditFormKeepsSubtasks(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{
		Date:  "2024-06-12",
		Time:  "09:30",
		Title: "pack for the trip",
		Subtasks: []activity.Subtask{
			{ID: 1, Text: "passport", Completed: true},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f := editFormModel(created)
	f.title.SetValue("pack everything")
	saved, err := p.Update(ctx, created.ID, f.payload())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(saved.Subtasks) != 1 {
		t.Fatalf("form save wiped the subtasks: got %d, want 1", len(saved.Subtasks))
	}
	if saved.Subtasks[0].Text != "passport" || !saved.Subtasks[0].Completed {
		t.Fatalf("subtask changed: %+v", saved.Subtasks[0])
	}
	if saved.Title != "pack everything" {
		t.Fatalf("title edit lost: %q", saved.Title)
	}
}

func TestEditFormPrefills(t *testing.T) {
	a := activity.Activity{
		ID:       "id-1",
		Date:     "2024-06-12",
		Time:     "09:30",
		Title:    "standup",
		Category: "work",
		Status:   activity.StatusSuccess,
	}
	f := editFormModel(a)
	if f.id != "id-1" {
		t.Fatalf("expected the stored id, got %q", f.id)
	}
	if f.title.Value() != "standup" || f.clock.Value() != "09:30" {
		t.Fatalf("prefill mismatch: title %q time %q", f.title.Value(), f.clock.Value())
	}
	if f.status != activity.StatusSuccess {
		t.Fatalf("expected status preserved, got %q", f.status)
	}
}
