package complete

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersiver/taskview/pkg/app"
)

// Complete marks a task completed, or reopens it.
type Complete struct {
	ID      string
	Reopen  bool
	Service *app.Service
}

func (c *Complete) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not complete, no service")
	}

	if c.Reopen {
		t, err := c.Service.Reopen(ctx, c.ID)
		if err != nil {
			return err
		}
		fmt.Printf("reopened %s  %s\n", t.ID, t.Title)
		return nil
	}

	t, err := c.Service.Complete(ctx, c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("completed %s  %s\n", t.ID, t.Title)
	return nil
}
