package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/activity"
)

// ActivityOptions captures the create/edit form fields as flags.
type ActivityOptions struct {
	At              string
	AllDay          bool
	Category        string
	Remind          bool
	RemindOffsetMin int
	Notes           string
	Subtasks        []string
	RepeatDays      []string
	Status          string
}

// AddActivityArgs wires the shared activity field flags on a command.
func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Specify a clock time, example: --at="09:30".`)
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false,
		"Mark the activity as all-day (drops any clock time).")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Specify a category, example: study, gym, work.")
	cmd.Flags().BoolVar(&o.Remind, "remind", false,
		"Turn on the reminder for this activity.")
	cmd.Flags().IntVar(&o.RemindOffsetMin, "remind-offset", 0,
		"Minutes before the activity to remind (default 5).")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Attach free-form notes.")
	cmd.Flags().StringArrayVar(&o.Subtasks, "subtask", nil,
		`Add a checklist item, repeatable: --subtask="pack bag" --subtask="book taxi".`)
	cmd.Flags().StringSliceVar(&o.RepeatDays, "repeat", nil,
		`Repeat on the given weekdays, example: --repeat=mon,wed,fri.`)
}

// AddStatusArg registers the status flag used by edit.
func AddStatusArg(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Set the status tag: normal, warning, success, or danger.")
}

var repeatAliases = map[string]func(*activity.RepeatConfig){
	"sun": func(r *activity.RepeatConfig) { r.Sun = true },
	"mon": func(r *activity.RepeatConfig) { r.Mon = true },
	"tue": func(r *activity.RepeatConfig) { r.Tue = true },
	"wed": func(r *activity.RepeatConfig) { r.Wed = true },
	"thu": func(r *activity.RepeatConfig) { r.Thu = true },
	"fri": func(r *activity.RepeatConfig) { r.Fri = true },
	"sat": func(r *activity.RepeatConfig) { r.Sat = true },
}

// GetRepeat converts the --repeat flag into a RepeatConfig. A nil result
// means no repetition was requested.
func (o *ActivityOptions) GetRepeat() (*activity.RepeatConfig, error) {
	if len(o.RepeatDays) == 0 {
		return nil, nil
	}
	r := &activity.RepeatConfig{}
	for _, day := range o.RepeatDays {
		set, ok := repeatAliases[strings.ToLower(strings.TrimSpace(day))]
		if !ok {
			return nil, fmt.Errorf("unknown repeat day %q", day)
		}
		set(r)
	}
	return r, nil
}
