package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Add creates a new activity and prints the day it landed on.
type Add struct {
	Title           string
	Date            string // ISO date; empty means today
	Time            string // HH:MM; ignored when AllDay
	AllDay          bool
	Category        string
	Remind          bool
	RemindOffsetMin int
	Notes           string
	Subtasks        []string
	Repeat          *activity.RepeatConfig
	ShowID          bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	if n.Date == "" {
		n.Date = activity.FormatDate(time.Now())
	}

	a := activity.New(n.Date, n.Title)
	a.AllDay = n.AllDay
	a.Time = n.Time
	// New timed activities default to the current clock, same as the
	// original create screen.
	if !a.AllDay && a.Time == "" {
		a.Time = time.Now().Format(activity.ClockLayout)
	}
	a.Category = n.Category
	a.Remind = n.Remind
	a.RemindOffsetMin = n.RemindOffsetMin
	a.Notes = n.Notes
	a.Repeat = n.Repeat
	for _, text := range n.Subtasks {
		a.Subtasks = append(a.Subtasks, activity.Subtask{
			ID:   activity.NextSubtaskID(a.Subtasks),
			Text: text,
		})
	}

	created, err := n.Persistence.Create(ctx, *a)
	if err != nil {
		return err
	}

	items, err := n.Persistence.List(ctx, created.Date)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(created.Date)
	pp.Activities(items...)
	return nil
}
