package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/commands/options"
	"github.com/ersiver/taskview/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"done", "do"},
		Short:   "Mark a task completed.",
		Example: `
taskview complete <task id>
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
			s := complete.Complete{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addReopen(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "reopen",
		Aliases: []string{"undo"},
		Short:   "Mark a completed task as open again.",
		Example: `
taskview reopen <task id>
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
			s := complete.Complete{
				ID:      io.ID,
				Reopen:  true,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
