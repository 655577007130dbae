package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/commands/options"
	"github.com/ersiver/taskview/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Print the task list as your preferences shape it.",
		Example: `
taskview get
taskview get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
