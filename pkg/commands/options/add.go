package options

import (
	"github.com/spf13/cobra"
)

// AddOptions captures flags for creating a task.
type AddOptions struct {
	Due      string
	Priority int
	Note     string
}

// AddAddArgs wires task creation flags on the provided command.
func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Deadline offset from now, like 3d or 1w2d.")
	cmd.Flags().IntVarP(&o.Priority, "priority", "p", 0,
		"Priority, lower sorts first.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Free-form note attached to the task.")
}
