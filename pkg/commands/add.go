package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/add"
	"tableflip.dev/dayplan/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ao := &options.ActivityOptions{}
	io := &options.IDOptions{}

	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an activity",
		Example: `
dayplan add practice piano --at=17:30
dayplan add laundry --all-day --on=tomorrow
dayplan add gym --at=07:00 --repeat=mon,wed,fri --remind
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := oo.Day()
			if err != nil {
				return output.HandleError(err)
			}
			repeat, err := ao.GetRepeat()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:           title,
				Date:            activity.FormatDate(d),
				Time:            ao.At,
				AllDay:          ao.AllDay,
				Category:        ao.Category,
				Remind:          ao.Remind,
				RemindOffsetMin: ao.RemindOffsetMin,
				Notes:           ao.Notes,
				Subtasks:        ao.Subtasks,
				Repeat:          repeat,
				ShowID:          io.ShowID,
				Persistence:     p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddActivityArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
