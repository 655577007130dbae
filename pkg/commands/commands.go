package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/ersiver/taskview/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "taskview",
		Short: base.Wrap80("A task list derived live from your tasks and your sort preferences."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addAdd(topLevel)
	addComplete(topLevel)
	addReopen(topLevel)
	addRemove(topLevel)
	addShowCompleted(topLevel)
	addSort(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
