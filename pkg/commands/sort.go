package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/commands/options"
	"github.com/ersiver/taskview/pkg/runner/toggle"
)

func addSort(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Toggle the two independent sort axes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSortAxis(cmd, toggle.AxisDeadline, "Sort by deadline, latest first.")
	addSortAxis(cmd, toggle.AxisPriority, "Sort by priority, lowest value first.")

	topLevel.AddCommand(cmd)
}

func addSortAxis(topLevel *cobra.Command, axis toggle.Axis, short string) {
	var checked bool

	cmd := &cobra.Command{
		Use:   string(axis) + " on|off",
		Short: short,
		Example: `
taskview sort deadline on
taskview sort priority off
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires on or off")
			}
			var err error
			checked, err = options.ParseOnOff(args[0])
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := toggle.Sort{
				Axis:    axis,
				Checked: checked,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
