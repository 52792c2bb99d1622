package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dayplan/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("Personal day planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false,
		"Report errors as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDay(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addExpire(topLevel)
	addRemove(topLevel)
	addDates(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
