package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"github.com/ersiver/taskview/pkg/task"
)

// TaskPersistence defines the persistence contract for tasks. Watch streams
// full task-list snapshots: the current snapshot immediately, then a fresh
// one whenever the underlying set changes.
type TaskPersistence interface {
	List(ctx context.Context) []task.Task
	Get(ctx context.Context, id string) (*task.Task, error)
	Store(t *task.Task) error
	Delete(id string) error
	Watch(ctx context.Context) (<-chan []task.Task, error)
}

const tasksDir = "tasks"

// LoadTasks creates a TaskPersistence backed by diskv using the provided
// config. A nil config falls back to LoadConfig.
func LoadTasks(cfg Config) (TaskPersistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := filepath.Join(cfg.BasePath(), tasksDir)
	return &taskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type taskStore struct {
	d        *diskv.Diskv
	basePath string
}

func (s *taskStore) read(key string) (*task.Task, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := &task.Task{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, err
	}
	t.ID = key
	return t, nil
}

// List returns the current snapshot ordered by creation time, then id. This
// is the "incoming order" preserved when no sort axis is enabled.
func (s *taskStore) List(ctx context.Context) []task.Task {
	all := make([]task.Task, 0)
	for key := range s.d.Keys(ctx.Done()) {
		t, err := s.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, *t)
	}
	sortTasks(all)
	return all
}

func (s *taskStore) Get(ctx context.Context, id string) (*task.Task, error) {
	if !s.d.Has(id) {
		return nil, fmt.Errorf("store: task %q not found", id)
	}
	return s.read(id)
}

func (s *taskStore) Store(t *task.Task) error {
	t.EnsureID()
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.d.Write(t.ID, data)
}

func (s *taskStore) Delete(id string) error {
	if id == "" {
		return errors.New("store: task id required")
	}
	return s.d.Erase(id)
}

func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		lt := tasks[i].Created.Time
		rt := tasks[j].Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return tasks[i].ID < tasks[j].ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return tasks[i].ID < tasks[j].ID
			}
			return lt.Before(rt)
		}
	})
}
