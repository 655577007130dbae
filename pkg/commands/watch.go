package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the task list live; it re-sorts and re-filters as tasks and preferences change.",
		Example: `
taskview watch
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := watch.Watch{
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
