package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/edit"
	"tableflip.dev/dayplan/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ao := &options.ActivityOptions{}
	io := &options.IDOptions{}

	title := ""
	clearRepeat := false
	toggleSubtasks := []int64{}
	rmSubtasks := []int64{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an activity",
		Example: `
dayplan edit 171dff69f8b99dca --title="water the plants" --at=18:00
dayplan edit 171dff69f8b99dca --on=tomorrow
dayplan edit 171dff69f8b99dca --status=warning
dayplan edit 171dff69f8b99dca --subtask="book tickets" --toggle-subtask=2
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an activity id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:             io.ID,
				ShowID:         io.ShowID,
				ClearRepeat:    clearRepeat,
				AddSubtasks:    ao.Subtasks,
				ToggleSubtasks: toggleSubtasks,
				RemoveSubtasks: rmSubtasks,
				Persistence:    p,
			}

			// Only fields whose flags were set on the command line are
			// written; everything else keeps its stored value.
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			if cmd.Flags().Changed("on") {
				d, err := oo.Day()
				if err != nil {
					return output.HandleError(err)
				}
				date := activity.FormatDate(d)
				s.Date = &date
			}
			if cmd.Flags().Changed("at") {
				s.Time = &ao.At
			}
			if cmd.Flags().Changed("all-day") {
				s.AllDay = &ao.AllDay
			}
			if cmd.Flags().Changed("category") {
				s.Category = &ao.Category
			}
			if cmd.Flags().Changed("status") {
				s.Status = &ao.Status
			}
			if cmd.Flags().Changed("remind") {
				s.Remind = &ao.Remind
			}
			if cmd.Flags().Changed("remind-offset") {
				s.RemindOffsetMin = &ao.RemindOffsetMin
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = &ao.Notes
			}
			if cmd.Flags().Changed("repeat") {
				repeat, err := ao.GetRepeat()
				if err != nil {
					return output.HandleError(err)
				}
				s.Repeat = repeat
			}

			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Set the activity title.")
	cmd.Flags().BoolVar(&clearRepeat, "no-repeat", false, "Drop any repeat configuration.")
	cmd.Flags().Int64SliceVar(&toggleSubtasks, "toggle-subtask", nil,
		"Flip the checklist item with the given id between open and done.")
	cmd.Flags().Int64SliceVar(&rmSubtasks, "rm-subtask", nil,
		"Delete the checklist item with the given id.")
	options.AddOnArgs(cmd, oo)
	options.AddActivityArgs(cmd, ao)
	options.AddStatusArg(cmd, ao)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
