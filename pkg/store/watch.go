package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ersiver/taskview/pkg/prefs"
	"github.com/ersiver/taskview/pkg/task"
)

const watchCoalesceDelay = 100 * time.Millisecond

// Watch streams task-list snapshots until ctx is cancelled. The current
// snapshot is emitted immediately; afterwards the watcher re-reads storage
// once per burst of filesystem activity. The channel is conflated: a slow
// consumer observes the latest snapshot, never a backlog of stale ones.
func (s *taskStore) Watch(ctx context.Context) (<-chan []task.Task, error) {
	watcher, err := newDirWatcher(s.basePath)
	if err != nil {
		return nil, err
	}

	out := make(chan []task.Task, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		throttle := newRefreshThrottle(watchCoalesceDelay)
		defer throttle.Stop()

		sendLatest(out, s.List(ctx))

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Re-read on watcher trouble to keep clients in sync even
				// when the change cannot be classified.
				throttle.Enqueue()
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue()
			case <-throttle.C():
				sendLatest(out, s.List(ctx))
			}
		}
	}()

	return out, nil
}

// Watch streams preference snapshots until ctx is cancelled. Storage-read
// failures surface as the default snapshot; decode failures end the stream
// through the error channel.
func (p *prefStore) Watch(ctx context.Context) (<-chan prefs.UserPreferences, <-chan error, error) {
	watcher, err := newDirWatcher(p.basePath)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan prefs.UserPreferences, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		throttle := newRefreshThrottle(watchCoalesceDelay)
		defer throttle.Stop()

		emit := func() bool {
			up, err := p.load()
			if err != nil {
				errs <- err
				return false
			}
			sendLatest(out, up)
			return true
		}

		if !emit() {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue()
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue()
			case <-throttle.C():
				if !emit() {
					return
				}
			}
		}
	}()

	return out, errs, nil
}

func newDirWatcher(dir string) (*fsnotify.Watcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: base path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}
	return watcher, nil
}

// sendLatest delivers v on out, displacing an unconsumed older value so the
// receiver always sees the most recent snapshot.
func sendLatest[T any](out chan T, v T) {
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

// refreshThrottle coalesces rapid change notifications into a single refresh
// signal so watchers re-read storage once per burst of filesystem activity
// instead of on every single write.
type refreshThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	kick  chan struct{}
}

func newRefreshThrottle(delay time.Duration) *refreshThrottle {
	return &refreshThrottle{
		delay: delay,
		kick:  make(chan struct{}, 1),
	}
}

// C signals when an enqueued refresh is due.
func (t *refreshThrottle) C() <-chan struct{} {
	return t.kick
}

func (t *refreshThrottle) Enqueue() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		select {
		case t.kick <- struct{}{}:
		default:
		}
	})
}

func (t *refreshThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
