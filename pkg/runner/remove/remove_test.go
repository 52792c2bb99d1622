package remove

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/store"
)

func TestRemove(t *testing.T) {
	ctx := context.Background()
	p := store.NewInMemory()
	created, err := p.Create(ctx, activity.Activity{Date: "2024-06-12", Title: "standup"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	r := &Remove{ID: created.ID, Persistence: p}
	if err := r.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	if _, err := p.Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestRemoveUnknownID(t *testing.T) {
	r := &Remove{ID: "nope", Persistence: store.NewInMemory()}
	if err := r.Do(context.Background()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
