package get

import (
	"context"
	"errors"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/printers"
)

// Get prints the derived view of the task list under the current
// preferences.
type Get struct {
	ShowID  bool
	Service *app.Service
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get, no service")
	}

	m, err := g.Service.View(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.NewLine()
	pp.View(m)
	return nil
}
