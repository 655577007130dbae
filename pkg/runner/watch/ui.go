package watch

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ersiver/taskview/pkg/timeutil"
	"github.com/ersiver/taskview/pkg/viewmodel"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	flagStyle  = lipgloss.NewStyle().Faint(true)
	doneStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noteStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type modelMsg viewmodel.UiModel

type errMsg struct{ err error }

type streamClosedMsg struct{}

type ui struct {
	model  *viewmodel.Model
	stream <-chan viewmodel.UiModel
	errs   <-chan error

	current viewmodel.UiModel
	ready   bool
	width   int
	err     error
}

func newUI(model *viewmodel.Model, stream <-chan viewmodel.UiModel, errs <-chan error) ui {
	return ui{model: model, stream: stream, errs: errs, width: 80}
}

func (u ui) Init() tea.Cmd {
	return tea.Batch(u.waitModel(), u.waitErr())
}

func (u ui) waitModel() tea.Cmd {
	return func() tea.Msg {
		m, ok := <-u.stream
		if !ok {
			return streamClosedMsg{}
		}
		return modelMsg(m)
	}
}

func (u ui) waitErr() tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: <-u.errs}
	}
}

func (u ui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		u.width = msg.Width
		return u, nil
	case modelMsg:
		u.current = viewmodel.UiModel(msg)
		u.ready = true
		return u, u.waitModel()
	case errMsg:
		u.err = msg.err
		return u, tea.Quit
	case streamClosedMsg:
		return u, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return u, tea.Quit
		case "c":
			u.model.SetShowCompleted(!u.current.ShowCompleted)
		case "d":
			u.model.EnableSortByDeadline(!u.current.SortOrder.DeadlineOn())
		case "p":
			u.model.EnableSortByPriority(!u.current.SortOrder.PriorityOn())
		}
	}
	return u, nil
}

func (u ui) View() string {
	if !u.ready {
		return flagStyle.Render("loading…")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n")

	completed := "completed hidden"
	if u.current.ShowCompleted {
		completed = "completed shown"
	}
	b.WriteString(flagStyle.Render(fmt.Sprintf("sort: %s · %s", u.current.SortOrder, completed)))
	b.WriteString("\n\n")

	if len(u.current.Tasks) == 0 {
		b.WriteString(flagStyle.Render(" none"))
		b.WriteString("\n")
	}

	now := time.Now()
	for _, t := range u.current.Tasks {
		line := fmt.Sprintf("● %s", t.Title)
		if t.Completed {
			line = doneStyle.Render(fmt.Sprintf("✘ %s", t.Title))
		}
		b.WriteString(line)
		if !t.Deadline.IsZero() {
			due := timeutil.Distance(now, t.Deadline.Time)
			style := dueStyle
			if t.Deadline.Before(now) {
				style = lateStyle
			}
			b.WriteString("  " + style.Render(due))
		}
		b.WriteString("  " + flagStyle.Render(fmt.Sprintf("p%d", t.Priority)))
		b.WriteString("\n")
		if t.Note != "" {
			b.WriteString(noteStyle.Render(wordwrap.String(t.Note, max(20, u.width-8))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c: show/hide completed · d: sort by deadline · p: sort by priority · q: quit"))
	return b.String()
}
