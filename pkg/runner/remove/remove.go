package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersiver/taskview/pkg/app"
)

// Remove deletes a task.
type Remove struct {
	ID      string
	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := r.Service.Remove(ctx, r.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", r.ID)
	return nil
}
