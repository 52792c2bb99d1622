package edit

import (
	"context"
	"testing"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/store"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestEditChangesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{
		Date:     "2024-06-12",
		Time:     "09:30",
		Title:    "standup",
		Category: "work",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	e := &Edit{
		ID:          created.ID,
		Title:       strPtr("team standup"),
		Persistence: p,
	}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "team standup" {
		t.Fatalf("expected new title, got %q", got.Title)
	}
	if got.Time != "09:30" || got.Category != "work" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestEditAllDayDropsTime(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{Date: "2024-06-12", Time: "09:30", Title: "standup"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	e := &Edit{ID: created.ID, AllDay: boolPtr(true), Persistence: p}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	got, _ := p.Get(ctx, created.ID)
	if !got.AllDay || got.Time != "" {
		t.Fatalf("expected all-day with no time, got %+v", got)
	}
}

func TestEditSubtasks(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{
		Date:   "2024-06-12",
		Title:  "trip prep",
		AllDay: true,
		Subtasks: []activity.Subtask{
			{ID: 1, Text: "passport"},
			{ID: 2, Text: "book taxi"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	e := &Edit{
		ID:             created.ID,
		AddSubtasks:    []string{"pack bag"},
		ToggleSubtasks: []int64{1},
		RemoveSubtasks: []int64{2},
		Persistence:    p,
	}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	got, _ := p.Get(ctx, created.ID)
	if len(got.Subtasks) != 2 {
		t.Fatalf("expected two subtasks, got %+v", got.Subtasks)
	}
	if got.Subtasks[0].ID != 1 || !got.Subtasks[0].Completed {
		t.Fatalf("toggle missed: %+v", got.Subtasks[0])
	}
	// New ids never reuse a deleted one.
	if got.Subtasks[1].ID != 3 || got.Subtasks[1].Text != "pack bag" {
		t.Fatalf("append went wrong: %+v", got.Subtasks[1])
	}
}

func TestEditToggleUnknownSubtask(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{Date: "2024-06-12", Title: "trip prep", AllDay: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	e := &Edit{ID: created.ID, ToggleSubtasks: []int64{9}, Persistence: p}
	if err := e.Do(ctx); err == nil {
		t.Fatal("expected an error toggling a subtask that does not exist")
	}
}

func TestEditClearRepeat(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{
		Date:   "2024-06-12",
		Title:  "gym",
		AllDay: true,
		Repeat: &activity.RepeatConfig{Mon: true, Wed: true},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	e := &Edit{ID: created.ID, ClearRepeat: true, Persistence: p}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	got, _ := p.Get(ctx, created.ID)
	if got.Repeat != nil {
		t.Fatalf("expected repeat cleared, got %+v", got.Repeat)
	}
}
