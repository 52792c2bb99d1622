package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-06-12" or --on=tomorrow.`)
}

// Day resolves the flag value to a calendar day. Empty means today.
func (o *OnOptions) Day() (time.Time, error) {
	return ResolveDay(o.OnString)
}

// ResolveDay maps the date words accepted on the command line ("today",
// "tomorrow", "yesterday", or an ISO date) to a calendar day.
func ResolveDay(s string) (time.Time, error) {
	now := time.Now()
	switch s {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	return activity.ParseDate(s)
}
