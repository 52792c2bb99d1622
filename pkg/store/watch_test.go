package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/activity"
)

func TestWatchSeesWrites(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := load(t)
	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if _, err := p.Create(ctx, activity.Activity{Date: "2024-06-12", Title: "standup"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	select {
	case _, ok := <-events:
		if !ok {
			t.Fatal("event channel closed before any event")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change event")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := load(t)
	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the event channel to close")
		}
	}
}

func TestInMemoryWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewInMemory()
	events, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if _, err := m.Create(ctx, activity.Activity{Date: "2024-06-12", Title: "standup"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Type != EventDayChanged || ev.Date != "2024-06-12" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a change event")
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	var mu sync.Mutex
	var got []Event
	send := func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	}

	for i := 0; i < 10; i++ {
		throttle.Enqueue(Event{Type: EventDayChanged, Date: "2024-06-12"}, send)
	}
	throttle.Enqueue(Event{Type: EventDayChanged, Date: "2024-06-13"}, send)

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("expected one event per day, got %d: %+v", len(got), got)
	}
	dates := map[string]bool{}
	for _, ev := range got {
		if ev.Type != EventDayChanged {
			t.Fatalf("unexpected event type: %+v", ev)
		}
		dates[ev.Date] = true
	}
	if !dates["2024-06-12"] || !dates["2024-06-13"] {
		t.Fatalf("missing a day: %+v", got)
	}
}
