package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/store"
	"github.com/ersiver/taskview/pkg/task"
	"github.com/ersiver/taskview/pkg/viewmodel"
)

// Service provides high-level task and preference operations.
// It wraps both stores so the CLI and the live view can share logic.
type Service struct {
	Tasks store.TaskPersistence
	Prefs store.PrefPersistence
}

// Load builds a Service from the given config (nil means discover it).
func Load(cfg store.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	tasks, err := store.LoadTasks(cfg)
	if err != nil {
		return nil, err
	}
	preferences, err := store.LoadPrefs(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{Tasks: tasks, Prefs: preferences}, nil
}

// Model builds the reactive view model over the service's stores.
func (s *Service) Model() (*viewmodel.Model, error) {
	if s.Tasks == nil || s.Prefs == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return viewmodel.New(s.Tasks, s.Prefs), nil
}

// View derives the current UI model once, without subscribing.
func (s *Service) View(ctx context.Context) (viewmodel.UiModel, error) {
	if s.Tasks == nil || s.Prefs == nil {
		return viewmodel.UiModel{}, errors.New("app: no persistence configured")
	}
	p, err := s.Prefs.Preferences(ctx)
	if err != nil {
		return viewmodel.UiModel{}, err
	}
	return viewmodel.Derive(s.Tasks.List(ctx), p), nil
}

// Add creates and stores a new task.
func (s *Service) Add(ctx context.Context, title, note string, deadline time.Time, priority int) (*task.Task, error) {
	if s.Tasks == nil {
		return nil, errors.New("app: no persistence configured")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("app: task title required")
	}
	t := task.New(title, deadline, priority)
	t.Note = note
	if err := s.Tasks.Store(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Complete marks the task with the given id as completed.
func (s *Service) Complete(ctx context.Context, id string) (*task.Task, error) {
	return s.setCompleted(ctx, id, true)
}

// Reopen marks the task with the given id as not completed.
func (s *Service) Reopen(ctx context.Context, id string) (*task.Task, error) {
	return s.setCompleted(ctx, id, false)
}

func (s *Service) setCompleted(ctx context.Context, id string, done bool) (*task.Task, error) {
	if s.Tasks == nil {
		return nil, errors.New("app: no persistence configured")
	}
	t, err := s.Tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Completed = done
	if err := s.Tasks.Store(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Remove deletes the task with the given id.
func (s *Service) Remove(ctx context.Context, id string) error {
	if s.Tasks == nil {
		return errors.New("app: no persistence configured")
	}
	if _, err := s.Tasks.Get(ctx, id); err != nil {
		return err
	}
	return s.Tasks.Delete(id)
}

// Preferences returns the current preference snapshot.
func (s *Service) Preferences(ctx context.Context) (prefs.UserPreferences, error) {
	if s.Prefs == nil {
		return prefs.UserPreferences{}, errors.New("app: no persistence configured")
	}
	return s.Prefs.Preferences(ctx)
}
