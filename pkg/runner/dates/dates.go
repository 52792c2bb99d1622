// Package dates provides the runner logic for listing days that have
// activities recorded.
package dates

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Dates prints every day with at least one activity, ascending.
type Dates struct {
	Persistence store.Persistence
}

func (n *Dates) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list dates, no persistence")
	}

	dates, err := n.Persistence.Dates(ctx)
	if err != nil {
		return fmt.Errorf("list dates: %w", err)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Days with activities")
	if len(dates) == 0 {
		pp.Empty()
		return nil
	}
	for _, date := range dates {
		fmt.Println(" " + date)
	}
	fmt.Println("")
	return nil
}
