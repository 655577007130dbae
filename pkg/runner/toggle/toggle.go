// Package toggle applies preference intents from the command line. Each
// runner performs the same transactional read-modify-write the live view
// issues through the view model.
package toggle

import (
	"context"
	"errors"

	"github.com/ersiver/taskview/pkg/app"
	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/printers"
)

// Axis names one of the two independent sort toggles.
type Axis string

const (
	AxisDeadline Axis = "deadline"
	AxisPriority Axis = "priority"
)

// ShowCompleted overwrites the stored show-completed flag.
type ShowCompleted struct {
	Value   bool
	Service *app.Service
}

func (s *ShowCompleted) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not toggle, no service")
	}
	err := s.Service.Prefs.Update(ctx, func(p prefs.UserPreferences) prefs.UserPreferences {
		p.ShowCompleted = s.Value
		return p
	})
	if err != nil {
		return err
	}
	return confirm(ctx, s.Service)
}

// Sort sets one sort axis, preserving the other.
type Sort struct {
	Axis    Axis
	Checked bool
	Service *app.Service
}

func (s *Sort) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not toggle, no service")
	}
	err := s.Service.Prefs.Update(ctx, func(p prefs.UserPreferences) prefs.UserPreferences {
		switch s.Axis {
		case AxisDeadline:
			p.SortOrder = p.SortOrder.WithDeadline(s.Checked)
		case AxisPriority:
			p.SortOrder = p.SortOrder.WithPriority(s.Checked)
		}
		return p
	})
	if err != nil {
		return err
	}
	return confirm(ctx, s.Service)
}

func confirm(ctx context.Context, svc *app.Service) error {
	p, err := svc.Preferences(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Preferences(p)
	return nil
}
