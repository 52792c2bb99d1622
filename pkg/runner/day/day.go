// Package day provides the runner logic for the day view: week strip,
// heading, and the sectioned activity list for one date.
package day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/store"
)

// Day renders the activities of a single date grouped into sections.
type Day struct {
	Date        string // ISO date; empty or "today" means the current day
	ShowID      bool
	Persistence store.Persistence
}

func (n *Day) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show day, no persistence")
	}

	ref := time.Now()
	if n.Date != "" && n.Date != "today" {
		var err error
		ref, err = activity.ParseDate(n.Date)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", n.Date, err)
		}
	}
	date := activity.FormatDate(ref)

	items, err := n.Persistence.List(ctx, date)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	strip := schedule.ComputeWeekStrip(ref)
	sections := schedule.SectionActivities(items)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.WeekStrip(strip, date)
	pp.DayHeading(ref)
	if len(sections) == 0 {
		pp.Empty()
		return nil
	}
	for _, s := range sections {
		pp.Section(s)
	}
	return nil
}
