package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/day"
	"tableflip.dev/dayplan/pkg/store"
)

func addDay(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	date := ""

	cmd := &cobra.Command{
		Use:     "day [date]",
		Aliases: []string{"list", "ls"},
		Short:   "Show one day's activities grouped by time of day",
		Example: `
dayplan day
dayplan day tomorrow
dayplan day 2024-06-12 --show-id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one date")
			}
			if len(args) == 1 {
				date = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := options.ResolveDay(date)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Day{
				Date:        activity.FormatDate(d),
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
