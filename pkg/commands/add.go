package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/commands/options"
	"github.com/ersiver/taskview/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task.",
		Example: `
taskview add "water the plants" --due 3d
taskview add "file taxes" --due 2w --priority 1 --note "forms are in the drawer"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:    title,
				Note:     ao.Note,
				Due:      ao.Due,
				Priority: ao.Priority,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
