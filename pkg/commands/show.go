package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/commands/options"
	"github.com/ersiver/taskview/pkg/runner/toggle"
)

func addShowCompleted(topLevel *cobra.Command) {
	var value bool

	cmd := &cobra.Command{
		Use:   "show-completed on|off",
		Short: "Show or hide completed tasks in the list.",
		Example: `
taskview show-completed on
taskview show-completed off
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires on or off")
			}
			var err error
			value, err = options.ParseOnOff(args[0])
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := toggle.ShowCompleted{
				Value:   value,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
