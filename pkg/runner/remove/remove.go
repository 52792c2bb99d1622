// Package remove provides the runner logic for deleting activities.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Remove deletes one activity and reprints the day it was on.
type Remove struct {
	ID     string
	ShowID bool

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	a, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}
	if err := n.Persistence.Delete(ctx, n.ID); err != nil {
		return err
	}

	items, err := n.Persistence.List(ctx, a.Date)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(a.Date)
	pp.Activities(items...)
	return nil
}
