// Package viewmodel derives the display-ready task list from the latest task
// snapshot and the latest user preferences.
package viewmodel

import (
	"sort"

	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/task"
)

// UiModel is the derived combination of the filtered, sorted task list and
// the preference flags that produced it. It is transient: recomputed in full
// on every upstream change and fully replaced by its successor.
type UiModel struct {
	Tasks         []task.Task
	ShowCompleted bool
	SortOrder     prefs.SortOrder
}

// Derive recomputes the UI model from scratch. It is pure: the inputs are
// not mutated and equal inputs produce equal output.
//
// Filtering drops completed tasks unless ShowCompleted is set. Sorting is
// stable per axis: deadline descending (latest first), priority ascending
// (lowest value first), with deadline as the primary key when both axes are
// enabled. With no axis enabled the incoming order is preserved.
func Derive(tasks []task.Task, p prefs.UserPreferences) UiModel {
	kept := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !p.ShowCompleted && t.Completed {
			continue
		}
		kept = append(kept, t)
	}
	sortTasks(kept, p.SortOrder)
	return UiModel{
		Tasks:         kept,
		ShowCompleted: p.ShowCompleted,
		SortOrder:     p.SortOrder,
	}
}

func sortTasks(tasks []task.Task, order prefs.SortOrder) {
	byDeadline := order.DeadlineOn()
	byPriority := order.PriorityOn()
	if !byDeadline && !byPriority {
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if byDeadline {
			di := tasks[i].Deadline.Time
			dj := tasks[j].Deadline.Time
			if !di.Equal(dj) {
				return di.After(dj)
			}
		}
		if byPriority && tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		return false
	})
}
