package viewmodel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/task"
)

type fakeTasks struct {
	ch chan []task.Task
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{ch: make(chan []task.Task, 8)}
}

func (f *fakeTasks) Watch(ctx context.Context) (<-chan []task.Task, error) {
	return f.ch, nil
}

type fakePrefs struct {
	mu        sync.Mutex
	current   prefs.UserPreferences
	ch        chan prefs.UserPreferences
	errs      chan error
	updateErr error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{
		ch:   make(chan prefs.UserPreferences, 8),
		errs: make(chan error, 1),
	}
}

func (f *fakePrefs) Watch(ctx context.Context) (<-chan prefs.UserPreferences, <-chan error, error) {
	return f.ch, f.errs, nil
}

func (f *fakePrefs) Update(ctx context.Context, transform func(prefs.UserPreferences) prefs.UserPreferences) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	f.current = transform(f.current)
	cur := f.current
	f.mu.Unlock()
	f.ch <- cur
	return nil
}

func awaitModel(t *testing.T, out <-chan UiModel) UiModel {
	t.Helper()
	select {
	case m, ok := <-out:
		if !ok {
			t.Fatal("stream closed while waiting for a model")
		}
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a derived model")
	}
	return UiModel{}
}

func expectSilence(t *testing.T, out <-chan UiModel) {
	t.Helper()
	select {
	case m := <-out:
		t.Fatalf("unexpected emission: %+v", m)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeCombineLatest(t *testing.T) {
	tasks := newFakeTasks()
	preferences := newFakePrefs()
	m := New(tasks, preferences)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, _, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	// Nothing may be emitted until both sources have produced a value.
	tasks.ch <- []task.Task{{ID: "a", Title: "a"}}
	expectSilence(t, out)

	preferences.ch <- prefs.Default()
	got := awaitModel(t, out)
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "a" {
		t.Fatalf("unexpected first model: %+v", got)
	}

	// A task emission re-derives with the latest preferences.
	tasks.ch <- []task.Task{{ID: "a"}, {ID: "b"}}
	got = awaitModel(t, out)
	if len(got.Tasks) != 2 {
		t.Fatalf("expected two tasks, got %+v", got)
	}

	// A preference emission re-derives with the latest tasks.
	preferences.ch <- prefs.UserPreferences{ShowCompleted: true, SortOrder: prefs.ByPriority}
	got = awaitModel(t, out)
	if got.SortOrder != prefs.ByPriority || !got.ShowCompleted {
		t.Fatalf("expected updated preferences, got %+v", got)
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("expected latest tasks retained, got %+v", got)
	}
}

func TestSubscribeConflatesToLatest(t *testing.T) {
	tasks := newFakeTasks()
	preferences := newFakePrefs()
	m := New(tasks, preferences)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, _, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	preferences.ch <- prefs.Default()
	for i := 0; i < 5; i++ {
		tasks.ch <- []task.Task{{ID: "x"}, {ID: "y"}}
	}
	tasks.ch <- []task.Task{{ID: "final"}}

	// Without reading in between, the consumer must still end up observing
	// the newest snapshot, not a queued historical one.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-out:
			if len(got.Tasks) == 1 && got.Tasks[0].ID == "final" {
				return
			}
		case <-deadline:
			t.Fatal("never observed the latest snapshot")
		}
	}
}

func TestToggleIntents(t *testing.T) {
	tasks := newFakeTasks()
	preferences := newFakePrefs()
	m := New(tasks, preferences)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, _, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	tasks.ch <- nil
	preferences.ch <- prefs.Default()
	if got := awaitModel(t, out); got.SortOrder != prefs.None {
		t.Fatalf("expected None to start, got %v", got.SortOrder)
	}

	m.EnableSortByPriority(true)
	if got := awaitModel(t, out); got.SortOrder != prefs.ByPriority {
		t.Fatalf("expected ByPriority, got %v", got.SortOrder)
	}

	m.EnableSortByDeadline(true)
	if got := awaitModel(t, out); got.SortOrder != prefs.ByDeadlineAndPriority {
		t.Fatalf("expected ByDeadlineAndPriority, got %v", got.SortOrder)
	}

	m.EnableSortByPriority(false)
	if got := awaitModel(t, out); got.SortOrder != prefs.ByDeadline {
		t.Fatalf("expected ByDeadline, got %v", got.SortOrder)
	}

	m.SetShowCompleted(true)
	if got := awaitModel(t, out); !got.ShowCompleted {
		t.Fatal("expected show-completed to be set")
	}
}

func TestPreferenceStreamErrorTerminates(t *testing.T) {
	tasks := newFakeTasks()
	preferences := newFakePrefs()
	m := New(tasks, preferences)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, errs, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	boom := errors.New("corrupt preferences")
	preferences.errs <- boom

	select {
	case err := <-errs:
		if !errors.Is(err, boom) {
			t.Fatalf("expected corrupt preferences error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for terminal error")
	}

	select {
	case _, ok := <-out:
		if ok {
			t.Fatal("expected output stream to close after terminal error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream close")
	}
}

func TestUpdateFailureReported(t *testing.T) {
	tasks := newFakeTasks()
	preferences := newFakePrefs()
	preferences.updateErr = errors.New("disk full")
	m := New(tasks, preferences)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, errs, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	m.SetShowCompleted(true)

	select {
	case err := <-errs:
		if !errors.Is(err, preferences.updateErr) {
			t.Fatalf("expected update error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update failure")
	}
}

func TestSecondSubscribeReplacesFirst(t *testing.T) {
	tasks := newFakeTasks()
	preferences := newFakePrefs()
	m := New(tasks, preferences)

	ctx := context.Background()

	first, _, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	second, _, err := m.Subscribe(ctx)
	if err != nil {
		t.Fatalf("second subscribe: %v", err)
	}
	defer m.Close()

	select {
	case _, ok := <-first:
		if ok {
			t.Fatal("expected first subscription to end without values")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first subscription to close")
	}

	tasks.ch <- []task.Task{{ID: "a"}}
	preferences.ch <- prefs.Default()
	if got := awaitModel(t, second); len(got.Tasks) != 1 {
		t.Fatalf("second subscription should be live, got %+v", got)
	}
}
