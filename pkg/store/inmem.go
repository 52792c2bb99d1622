package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tableflip.dev/dayplan/pkg/activity"
)

// NewInMemory returns a Persistence that lives entirely in process memory.
// It backs tests and demo runs where no database path is wanted; semantics
// (validation, defaults, ordering) match the diskv store.
func NewInMemory(seed ...activity.Activity) Persistence {
	m := &memory{byID: make(map[string]activity.Activity)}
	for _, a := range seed {
		if a.ID == "" {
			a.ID = m.nextID()
		}
		m.byID[a.ID] = a
	}
	return m
}

type memory struct {
	mu      sync.Mutex
	counter int
	byID    map[string]activity.Activity

	watchers []chan Event
}

func (m *memory) nextID() string {
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

func (m *memory) List(ctx context.Context, date string) ([]activity.Activity, error) {
	if _, err := activity.ParseDate(date); err != nil {
		return nil, &ValidationError{Field: "date", Reason: err.Error()}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]activity.Activity, 0)
	for _, a := range m.byID {
		if a.Date == date {
			all = append(all, a)
		}
	}
	sortActivities(all)
	return all, nil
}

func (m *memory) Get(ctx context.Context, id string) (activity.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return activity.Activity{}, ErrNotFound
	}
	return a, nil
}

func (m *memory) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	normalize(&a)
	if err := validate(a); err != nil {
		return activity.Activity{}, err
	}
	if a.RemindOffsetMin == 0 {
		a.RemindOffsetMin = 5
	}
	a.Created = activity.Timestamp{Time: time.Now()}
	a.Updated = activity.Timestamp{}

	m.mu.Lock()
	a.ID = m.nextID()
	m.byID[a.ID] = a
	m.mu.Unlock()

	m.notify(Event{Type: EventDayChanged, Date: a.Date})
	return a, nil
}

func (m *memory) Update(ctx context.Context, id string, a activity.Activity) (activity.Activity, error) {
	normalize(&a)
	if err := validate(a); err != nil {
		return activity.Activity{}, err
	}

	m.mu.Lock()
	prior, ok := m.byID[id]
	if !ok {
		m.mu.Unlock()
		return activity.Activity{}, ErrNotFound
	}
	a.ID = prior.ID
	a.Created = prior.Created
	a.Updated = activity.Timestamp{Time: time.Now()}
	if a.RemindOffsetMin == 0 {
		a.RemindOffsetMin = prior.RemindOffsetMin
	}
	m.byID[id] = a
	m.mu.Unlock()

	m.notify(Event{Type: EventDayChanged, Date: a.Date})
	return a, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	a, ok := m.byID[id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.byID, id)
	m.mu.Unlock()

	m.notify(Event{Type: EventDayChanged, Date: a.Date})
	return nil
}

func (m *memory) Dates(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]struct{})
	for _, a := range m.byID {
		seen[a.Date] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (m *memory) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}
