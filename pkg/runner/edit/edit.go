// Package edit provides the runner logic for changing an existing activity.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Edit applies the provided field changes to one activity. Nil fields keep
// their stored values.
type Edit struct {
	ID string

	Title           *string
	Date            *string
	Time            *string
	AllDay          *bool
	Category        *string
	Status          *string
	Remind          *bool
	RemindOffsetMin *int
	Notes           *string
	Repeat          *activity.RepeatConfig
	ClearRepeat     bool

	// Checklist edits: append new subtasks, flip done-ness, drop by id.
	AddSubtasks    []string
	ToggleSubtasks []int64
	RemoveSubtasks []int64

	ShowID bool

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	a, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	if n.Title != nil {
		a.Title = *n.Title
	}
	if n.Date != nil {
		a.Date = *n.Date
	}
	if n.Time != nil {
		a.Time = *n.Time
	}
	if n.AllDay != nil {
		a.AllDay = *n.AllDay
	}
	if n.Category != nil {
		a.Category = *n.Category
	}
	if n.Status != nil {
		a.Status = activity.Status(*n.Status)
	}
	if n.Remind != nil {
		a.Remind = *n.Remind
	}
	if n.RemindOffsetMin != nil {
		a.RemindOffsetMin = *n.RemindOffsetMin
	}
	if n.Notes != nil {
		a.Notes = *n.Notes
	}
	if n.Repeat != nil {
		a.Repeat = n.Repeat
	}
	if n.ClearRepeat {
		a.Repeat = nil
	}
	for _, text := range n.AddSubtasks {
		a.Subtasks = append(a.Subtasks, activity.Subtask{
			ID:   activity.NextSubtaskID(a.Subtasks),
			Text: text,
		})
	}
	for _, id := range n.ToggleSubtasks {
		found := false
		for i := range a.Subtasks {
			if a.Subtasks[i].ID == id {
				a.Subtasks[i].Completed = !a.Subtasks[i].Completed
				found = true
			}
		}
		if !found {
			return fmt.Errorf("no subtask %d on %s", id, n.ID)
		}
	}
	if len(n.RemoveSubtasks) > 0 {
		drop := make(map[int64]bool, len(n.RemoveSubtasks))
		for _, id := range n.RemoveSubtasks {
			drop[id] = true
		}
		kept := a.Subtasks[:0]
		for _, st := range a.Subtasks {
			if !drop[st.ID] {
				kept = append(kept, st)
			}
		}
		a.Subtasks = kept
	}

	updated, err := n.Persistence.Update(ctx, n.ID, a)
	if err != nil {
		return err
	}

	items, err := n.Persistence.List(ctx, updated.Date)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(updated.Date)
	pp.Activities(items...)
	return nil
}
