package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/mark"
	"tableflip.dev/dayplan/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	addMark(topLevel, "complete", []string{"completed", "done"},
		"Mark an activity completed", activity.StatusSuccess)
}

func addExpire(topLevel *cobra.Command) {
	addMark(topLevel, "expire", []string{"expired", "miss"},
		"Write an activity off as expired", activity.StatusDanger)
}

func addMark(topLevel *cobra.Command, use string, aliases []string, short string, status activity.Status) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     use + " <id>",
		Aliases: aliases,
		Short:   short,
		Example: `
dayplan ` + use + ` <activity id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an activity id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := mark.Mark{
				ID:          io.ID,
				Status:      status,
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
