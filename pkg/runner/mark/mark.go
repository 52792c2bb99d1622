// Package mark provides the runner logic for status changes: completing an
// activity or writing it off as expired.
package mark

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Mark sets the status of one activity and reprints its day.
type Mark struct {
	ID     string
	Status activity.Status
	ShowID bool

	Persistence store.Persistence
}

func (n *Mark) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not mark, no persistence")
	}

	a, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}
	a.Status = n.Status

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
