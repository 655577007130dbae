package app

import (
	"context"
	"testing"
	"time"

	"github.com/ersiver/taskview/pkg/prefs"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func loadService(t *testing.T) *Service {
	t.Helper()
	svc, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	return svc
}

func TestAddCompleteView(t *testing.T) {
	svc := loadService(t)
	ctx := context.Background()

	now := time.Now()
	done, err := svc.Add(ctx, "water the plants", "", now.Add(5*time.Hour), 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Complete(ctx, done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	open, err := svc.Add(ctx, "file taxes", "forms in the drawer", now.Add(3*time.Hour), 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	err = svc.Prefs.Update(ctx, func(p prefs.UserPreferences) prefs.UserPreferences {
		p.SortOrder = p.SortOrder.WithDeadline(true)
		return p
	})
	if err != nil {
		t.Fatalf("update prefs: %v", err)
	}

	// With completed hidden and deadline sort on, only the open task remains.
	m, err := svc.View(ctx)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if m.SortOrder != prefs.ByDeadline || m.ShowCompleted {
		t.Fatalf("unexpected preference flags: %+v", m)
	}
	if len(m.Tasks) != 1 || m.Tasks[0].ID != open.ID {
		t.Fatalf("expected only the open task, got %+v", m.Tasks)
	}

	// Showing completed brings both back.
	err = svc.Prefs.Update(ctx, func(p prefs.UserPreferences) prefs.UserPreferences {
		p.ShowCompleted = true
		return p
	})
	if err != nil {
		t.Fatalf("update prefs: %v", err)
	}
	m, err = svc.View(ctx)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(m.Tasks) != 2 {
		t.Fatalf("expected both tasks, got %+v", m.Tasks)
	}
	// Deadline sort still applies: the later deadline comes first.
	if m.Tasks[0].ID != done.ID {
		t.Fatalf("expected latest deadline first, got %+v", m.Tasks)
	}
}

func TestReopenAndRemove(t *testing.T) {
	svc := loadService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "book dentist", "", time.Now().Add(time.Hour), 3)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Complete(ctx, created.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	back, err := svc.Reopen(ctx, created.ID)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if back.Completed {
		t.Fatal("expected task to be open after reopen")
	}

	if err := svc.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, created.ID); err == nil {
		t.Fatal("expected remove of a missing task to fail")
	}
}

func TestAddRequiresTitle(t *testing.T) {
	svc := loadService(t)
	if _, err := svc.Add(context.Background(), "   ", "", time.Time{}, 0); err == nil {
		t.Fatal("expected error for blank title")
	}
}
