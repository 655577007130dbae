package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/commands/options"
	"github.com/ersiver/taskview/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a task.",
		Example: `
taskview remove <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
