package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/timeutil"
)

// Add creates a new task.
type Add struct {
	Title    string
	Note     string
	Due      string
	Priority int
	Service  *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("can not add, no service")
	}

	var deadline time.Time
	if a.Due != "" {
		offset, err := timeutil.ParseOffset(a.Due)
		if err != nil {
			return fmt.Errorf("invalid --due: %w", err)
		}
		deadline = time.Now().Add(offset)
	}

	t, err := a.Service.Add(ctx, a.Title, a.Note, deadline, a.Priority)
	if err != nil {
		return err
	}
	fmt.Printf("added %s  %s\n", t.ID, t.Title)
	return nil
}
