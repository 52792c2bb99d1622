package add

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/store"
)

func TestAddTimed(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()

	add := &Add{
		Title:       "standup",
		Date:        "2024-06-12",
		Time:        "09:30",
		Category:    "work",
		Persistence: p,
	}
	if err := add.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	items, err := p.List(ctx, "2024-06-12")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one activity, got %d", len(items))
	}
	got := items[0]
	if got.Title != "standup" || got.Time != "09:30" || got.Category != "work" {
		t.Fatalf("unexpected activity: %+v", got)
	}
}

func TestAddDefaultsDateAndTime(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()

	add := &Add{Title: "standup", Persistence: p}
	if err := add.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	today := activity.FormatDate(time.Now())
	items, err := p.List(ctx, today)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the activity on today, got %d", len(items))
	}
	if items[0].Time == "" {
		t.Fatal("timed activity should default to the current clock")
	}
}

func TestAddAllDay(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()

	add := &Add{
		Title:       "laundry",
		Date:        "2024-06-12",
		AllDay:      true,
		Persistence: p,
	}
	if err := add.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	items, _ := p.List(ctx, "2024-06-12")
	if len(items) != 1 {
		t.Fatalf("expected one activity, got %d", len(items))
	}
	if !items[0].AllDay || items[0].Time != "" {
		t.Fatalf("expected all-day with no time, got %+v", items[0])
	}
}

func TestAddWithSubtasks(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()

	add := &Add{
		Title:       "trip prep",
		Date:        "2024-06-12",
		AllDay:      true,
		Subtasks:    []string{"passport", "book taxi"},
		Persistence: p,
	}
	if err := add.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	items, _ := p.List(ctx, "2024-06-12")
	if len(items) != 1 {
		t.Fatalf("expected one activity, got %d", len(items))
	}
	subs := items[0].Subtasks
	if len(subs) != 2 {
		t.Fatalf("expected two subtasks, got %d", len(subs))
	}
	if subs[0].ID != 1 || subs[0].Text != "passport" || subs[0].Completed {
		t.Fatalf("unexpected first subtask: %+v", subs[0])
	}
	if subs[1].ID != 2 || subs[1].Text != "book taxi" {
		t.Fatalf("unexpected second subtask: %+v", subs[1])
	}
}

func TestAddWithoutPersistence(t *testing.T) {
	add := &Add{Title: "standup"}
	if err := add.Do(context.Background()); err == nil {
		t.Fatal("expected an error with no persistence")
	}
}
