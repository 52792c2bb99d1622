package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dayplan/pkg/activity"
)

// Persistence is the data-access contract the views consume: list a day,
// fetch one activity, and the create/update/delete mutations. Any transport
// or storage problem surfaces as a wrapped error; callers show a failure
// notice and keep their prior state.
type Persistence interface {
	List(ctx context.Context, date string) ([]activity.Activity, error)
	Get(ctx context.Context, id string) (activity.Activity, error)
	Create(ctx context.Context, a activity.Activity) (activity.Activity, error)
	Update(ctx context.Context, id string, a activity.Activity) (activity.Activity, error)
	Delete(ctx context.Context, id string) error
	Dates(ctx context.Context) ([]string, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (activity.Activity, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("store: read %s: %w", key, err)
	}
	var a activity.Activity
	if err := json.Unmarshal(val, &a); err != nil {
		return activity.Activity{}, fmt.Errorf("store: decode %s: %w", key, err)
	}
	pk := keyToPathTransform(key)
	a.ID = pk.FileName
	if a.Status == "" {
		a.Status = activity.StatusNormal
	}
	return a, nil
}

func (p *persistence) List(ctx context.Context, date string) ([]activity.Activity, error) {
	if _, err := activity.ParseDate(date); err != nil {
		return nil, &ValidationError{Field: "date", Reason: err.Error()}
	}
	prefix := date + "-"
	all := make([]activity.Activity, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		a, err := p.read(key)
		if err != nil {
			return nil, err
		}
		all = append(all, a)
	}
	sortActivities(all)
	return all, nil
}

func (p *persistence) Get(ctx context.Context, id string) (activity.Activity, error) {
	key, err := p.keyForID(ctx, id)
	if err != nil {
		return activity.Activity{}, err
	}
	return p.read(key)
}

func (p *persistence) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	normalize(&a)
	if err := validate(a); err != nil {
		return activity.Activity{}, err
	}
	if a.RemindOffsetMin == 0 {
		a.RemindOffsetMin = 5
	}
	a.ID = ""
	a.Created = activity.Timestamp{Time: time.Now()}
	a.Updated = activity.Timestamp{}
	if err := p.write(&a); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

func (p *persistence) Update(ctx context.Context, id string, a activity.Activity) (activity.Activity, error) {
	oldKey, err := p.keyForID(ctx, id)
	if err != nil {
		return activity.Activity{}, err
	}
	prior, err := p.read(oldKey)
	if err != nil {
		return activity.Activity{}, err
	}

	normalize(&a)
	if err := validate(a); err != nil {
		return activity.Activity{}, err
	}

	a.ID = prior.ID
	a.Created = prior.Created
	a.Updated = activity.Timestamp{Time: time.Now()}
	if a.RemindOffsetMin == 0 {
		a.RemindOffsetMin = prior.RemindOffsetMin
	}

	// The key embeds the date, so a moved activity gets a fresh location.
	if a.Date != prior.Date {
		if err := p.d.Erase(oldKey); err != nil {
			return activity.Activity{}, fmt.Errorf("store: erase %s: %w", oldKey, err)
		}
	}
	if err := p.write(&a); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

func (p *persistence) Delete(ctx context.Context, id string) error {
	key, err := p.keyForID(ctx, id)
	if err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// Dates lists the days that have at least one activity, ascending.
func (p *persistence) Dates(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		if date, ok := dateOfKey(key); ok {
			seen[date] = struct{}{}
		}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

func (p *persistence) write(a *activity.Activity) error {
	key := toKey(a)
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) keyForID(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrNotFound
	}
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.FileName == id {
			return key, nil
		}
	}
	return "", ErrNotFound
}

// normalize applies the write-side defaults: all-day activities carry no
// clock time, and a blank status means normal.
func normalize(a *activity.Activity) {
	a.Title = strings.TrimSpace(a.Title)
	if a.AllDay {
		a.Time = ""
	}
	if a.Status == "" {
		a.Status = activity.StatusNormal
	}
	if a.Repeat != nil && a.Repeat.Empty() {
		a.Repeat = nil
	}
}

func validate(a activity.Activity) error {
	if a.Title == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if len(a.Title) > 200 {
		return &ValidationError{Field: "title", Reason: "longer than 200 characters"}
	}
	if _, err := activity.ParseDate(a.Date); err != nil {
		return &ValidationError{Field: "date", Reason: err.Error()}
	}
	if !a.AllDay && a.Time != "" {
		if _, err := activity.ParseClock(a.Time); err != nil {
			return &ValidationError{Field: "time", Reason: "not a clock time"}
		}
	}
	return nil
}

// sortActivities orders a day the way the views expect: all-day entries
// first, then ascending clock time, created time and id as tie breakers.
func sortActivities(all []activity.Activity) {
	sort.SliceStable(all, func(i, j int) bool {
		left := all[i]
		right := all[j]
		if left.AllDay != right.AllDay {
			return left.AllDay
		}
		if left.Time != right.Time {
			if left.Time == "" {
				return true
			}
			if right.Time == "" {
				return false
			}
			return left.Time < right.Time
		}
		lt := left.Created.Time
		rt := right.Created.Time
		if !lt.Equal(rt) {
			return lt.Before(rt)
		}
		return left.ID < right.ID
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `date-id`; the ISO date splits into year/month/day directories.
func toKey(a *activity.Activity) string {
	if a.ID == "" {
		b, _ := json.Marshal(a)
		sum := md5.Sum(b)
		a.ID = fmt.Sprintf("%x", sum[:8])
	}
	return fmt.Sprintf("%s-%s", a.Date, a.ID)
}

// dateOfKey recovers the ISO date from a `date-id` key.
func dateOfKey(key string) (string, bool) {
	parts := strings.Split(key, "-")
	if len(parts) != 4 {
		return "", false
	}
	date := strings.Join(parts[:3], "-")
	if _, err := activity.ParseDate(date); err != nil {
		return "", false
	}
	return date, true
}
