package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/dates"
	"tableflip.dev/dayplan/pkg/store"
)

func addDates(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List the days that have activities",
		Example: `
dayplan dates
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := dates.Dates{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
