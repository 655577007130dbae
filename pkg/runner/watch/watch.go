// Package watch hosts the live Bubble Tea view over the reactive view model.
package watch

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/ersiver/taskview/pkg/app"
)

// Watch renders the derived task list live, re-drawing whenever tasks or
// preferences change on disk.
type Watch struct {
	Service *app.Service
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Service == nil {
		return errors.New("can not watch, no service")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("watch requires a terminal")
	}

	model, err := w.Service.Model()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer model.Close()

	stream, errs, err := model.Subscribe(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newUI(model, stream, errs), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if u, ok := final.(ui); ok && u.err != nil {
		return u.err
	}
	return nil
}
