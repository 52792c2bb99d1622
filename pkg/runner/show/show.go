package show

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Show prints the full record for one activity.
type Show struct {
	ID     string
	ShowID bool

	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}

	a, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Detail(a)
	return nil
}
