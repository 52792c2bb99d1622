package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	date := ""
	demo := false

	cmd := &cobra.Command{
		Use:     "ui [date]",
		Aliases: []string{"tui"},
		Short:   "Open the full-screen day planner",
		Example: `
dayplan ui
dayplan ui 2024-06-12
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
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := options.ResolveDay(date)
			if err != nil {
				return err
			}
			var p store.Persistence
			if demo {
				p = store.NewInMemory()
			} else {
				p, err = store.Load(nil)
				if err != nil {
					return err
				}
			}
			return tui.Run(p, activity.FormatDate(d))
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false,
		"Run against a throwaway in-memory store.")

	topLevel.AddCommand(cmd)
}
