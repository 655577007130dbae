package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/task"
)

// TaskSource produces full task-list snapshots whenever the underlying task
// set changes.
type TaskSource interface {
	Watch(ctx context.Context) (<-chan []task.Task, error)
}

// PreferenceSource streams preference snapshots and applies transactional
// read-modify-write updates. Implementations substitute the default snapshot
// for storage-read failures; any other failure arrives on the error channel
// and terminates the stream.
type PreferenceSource interface {
	Watch(ctx context.Context) (<-chan prefs.UserPreferences, <-chan error, error)
	Update(ctx context.Context, transform func(prefs.UserPreferences) prefs.UserPreferences) error
}

// Model combines a task source and a preference source into a single stream
// of UiModel values and exposes the preference intents the UI can issue.
type Model struct {
	tasks TaskSource
	prefs PreferenceSource

	mu     sync.Mutex
	cancel context.CancelFunc
	errs   chan error
}

func New(tasks TaskSource, prefs PreferenceSource) *Model {
	return &Model{tasks: tasks, prefs: prefs}
}

// Subscribe starts streaming derived UI models until ctx is cancelled.
//
// Combine-latest semantics: nothing is emitted until both sources have
// produced a value; afterwards every upstream emission yields one derived
// model using the other source's latest value. The output channel is
// conflated so the consumer always observes the latest combined state rather
// than a queue of historical ones.
//
// At most one subscription is active per Model; calling Subscribe again
// cancels the previous one. The output channel closes when the stream ends;
// the error channel stays open and carries terminal stream failures as well
// as asynchronous intent failures.
func (m *Model) Subscribe(ctx context.Context) (<-chan UiModel, <-chan error, error) {
	ctx, cancel := context.WithCancel(ctx)

	taskCh, err := m.tasks.Watch(ctx)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	prefCh, prefErrs, err := m.prefs.Watch(ctx)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	out := make(chan UiModel, 1)
	errs := make(chan error, 1)

	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = cancel
	m.errs = errs
	m.mu.Unlock()

	go func() {
		defer close(out)
		defer m.release(errs)

		var (
			latestTasks []task.Task
			latestPrefs prefs.UserPreferences
			haveTasks   bool
			havePrefs   bool
		)

		emit := func() {
			if haveTasks && havePrefs {
				sendLatest(out, Derive(latestTasks, latestPrefs))
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case tasks, ok := <-taskCh:
				if !ok {
					m.fail(ctx, errs, errors.New("viewmodel: task stream closed"))
					return
				}
				latestTasks, haveTasks = tasks, true
				emit()
			case p, ok := <-prefCh:
				if !ok {
					m.fail(ctx, errs, errors.New("viewmodel: preference stream closed"))
					return
				}
				latestPrefs, havePrefs = p, true
				emit()
			case err, ok := <-prefErrs:
				if !ok {
					m.fail(ctx, errs, errors.New("viewmodel: preference stream closed"))
					return
				}
				m.fail(ctx, errs, err)
				return
			}
		}
	}()

	return out, errs, nil
}

// Close cancels the active subscription, if any.
func (m *Model) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.errs = nil
	}
}

// SetShowCompleted asynchronously overwrites the stored show-completed flag.
// The resulting UiModel arrives on the subscription stream, not as a return
// value.
func (m *Model) SetShowCompleted(value bool) {
	m.update(func(p prefs.UserPreferences) prefs.UserPreferences {
		p.ShowCompleted = value
		return p
	})
}

// EnableSortByDeadline asynchronously sets the deadline sort axis, preserving
// the priority axis.
func (m *Model) EnableSortByDeadline(checked bool) {
	m.update(func(p prefs.UserPreferences) prefs.UserPreferences {
		p.SortOrder = p.SortOrder.WithDeadline(checked)
		return p
	})
}

// EnableSortByPriority asynchronously sets the priority sort axis, preserving
// the deadline axis.
func (m *Model) EnableSortByPriority(checked bool) {
	m.update(func(p prefs.UserPreferences) prefs.UserPreferences {
		p.SortOrder = p.SortOrder.WithPriority(checked)
		return p
	})
}

func (m *Model) update(transform func(prefs.UserPreferences) prefs.UserPreferences) {
	go func() {
		if err := m.prefs.Update(context.Background(), transform); err != nil {
			m.report(err)
		}
	}()
}

// report routes an asynchronous intent failure to the active subscription's
// error channel, or to stderr when nobody is subscribed.
func (m *Model) report(err error) {
	m.mu.Lock()
	errs := m.errs
	m.mu.Unlock()
	if errs == nil {
		fmt.Fprintf(os.Stderr, "viewmodel: update preferences: %v\n", err)
		return
	}
	select {
	case errs <- err:
	default:
	}
}

// fail reports a terminal stream error unless the subscription was cancelled.
func (m *Model) fail(ctx context.Context, errs chan error, err error) {
	if ctx.Err() != nil {
		return
	}
	select {
	case errs <- err:
	default:
	}
}

// release unsets the error sink if it still belongs to this subscription.
func (m *Model) release(errs chan error) {
	m.mu.Lock()
	if m.errs == errs {
		m.errs = nil
		m.cancel = nil
	}
	m.mu.Unlock()
}

// sendLatest delivers v on out, displacing an unconsumed older value so the
// receiver always sees the most recent derived model.
func sendLatest(out chan UiModel, v UiModel) {
	for {
		select {
		case out <- v:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
