package store

import (
	"context"
	"testing"
	"time"

	"github.com/ersiver/taskview/pkg/task"
)

func TestStoreAndListOrder(t *testing.T) {
	s, err := LoadTasks(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	ctx := context.Background()

	now := time.Now()
	second := task.New("second", now.Add(24*time.Hour), 2)
	second.Created = task.Timestamp{Time: now.Add(time.Minute)}
	first := task.New("first", now.Add(48*time.Hour), 1)
	first.Created = task.Timestamp{Time: now}

	if err := s.Store(second); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Store(first); err != nil {
		t.Fatalf("store: %v", err)
	}

	all := s.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}
	if all[0].Title != "first" || all[1].Title != "second" {
		t.Fatalf("expected creation order, got %q then %q", all[0].Title, all[1].Title)
	}
}

func TestGetCompleteRoundTrip(t *testing.T) {
	s, err := LoadTasks(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	ctx := context.Background()

	created := task.New("call the bank", time.Now().Add(24*time.Hour), 1)
	if err := s.Store(created); err != nil {
		t.Fatalf("store: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id to be assigned on store")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Completed = true
	if err := s.Store(got); err != nil {
		t.Fatalf("store update: %v", err)
	}

	back, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if !back.Completed {
		t.Fatal("expected completion to persist")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); err == nil {
		t.Fatal("expected get to fail after delete")
	}
}

func TestTaskWatchEmitsSnapshots(t *testing.T) {
	s, err := LoadTasks(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	select {
	case got := <-ch:
		if len(got) != 0 {
			t.Fatalf("expected empty initial snapshot, got %d tasks", len(got))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	// Allow the watcher goroutine to settle before mutating storage.
	time.Sleep(50 * time.Millisecond)

	if err := s.Store(task.New("hello world", time.Now().Add(time.Hour), 1)); err != nil {
		t.Fatalf("store: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-ch:
			if len(got) == 1 && got[0].Title == "hello world" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot with the new task")
		}
	}
}
