package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/timeutil"
	"github.com/ersiver/taskview/pkg/viewmodel"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Flags prints a faint one-line summary of the preference state that shaped
// the view.
func (pp *PrettyPrint) Flags(m viewmodel.UiModel) {
	f := color.New(color.Faint)
	completed := "completed hidden"
	if m.ShowCompleted {
		completed = "completed shown"
	}
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Printf("sort: %s · %s\n", m.SortOrder, completed)
}

// View prints the derived task list as a table.
func (pp *PrettyPrint) View(m viewmodel.UiModel) {
	pp.Title("Tasks")
	pp.Flags(m)

	if len(m.Tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	now := time.Now()
	tbl := uitable.New()
	tbl.Separator = "  "

	done := color.New(color.Faint, color.CrossedOut)
	open := color.New()
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, t := range m.Tasks {
		mark := "●"
		style := open
		if t.Completed {
			mark = "✘"
			style = done
		}
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, id.Sprint(t.ID))
		}
		row = append(row,
			style.Sprint(mark),
			style.Sprint(t.Title),
			style.Sprint(timeutil.Distance(now, t.Deadline.Time)),
			style.Sprintf("p%d", t.Priority),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Preferences prints the preference snapshot after a toggle.
func (pp *PrettyPrint) Preferences(p prefs.UserPreferences) {
	f := color.New(color.Faint)
	completed := "hidden"
	if p.ShowCompleted {
		completed = "shown"
	}
	_, _ = f.Printf("sort: %s · completed: %s\n", p.SortOrder, completed)
}
