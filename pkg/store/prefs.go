package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/ersiver/taskview/pkg/prefs"
)

// PrefPersistence is the persisted preference contract. Reads that fail
// because the record is missing or unreadable yield the default snapshot;
// decode failures (corrupt record, unknown sort order) are returned as
// errors because the preference schema is a closed set.
type PrefPersistence interface {
	Preferences(ctx context.Context) (prefs.UserPreferences, error)
	Update(ctx context.Context, transform func(prefs.UserPreferences) prefs.UserPreferences) error
	Watch(ctx context.Context) (<-chan prefs.UserPreferences, <-chan error, error)
}

const (
	prefsDir = "prefs"
	prefsKey = "preferences"
)

// LoadPrefs creates a PrefPersistence backed by diskv using the provided
// config. A nil config falls back to LoadConfig.
func LoadPrefs(cfg Config) (PrefPersistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := filepath.Join(cfg.BasePath(), prefsDir)
	return &prefStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024, // a single small record
	}), basePath: basePath}, nil
}

type prefStore struct {
	d        *diskv.Diskv
	basePath string

	// mu serializes read-modify-write transactions so concurrent updates to
	// different axes compose instead of clobbering each other.
	mu sync.Mutex
}

func (p *prefStore) load() (prefs.UserPreferences, error) {
	data, err := p.d.Read(prefsKey)
	if err != nil {
		// A missing or unreadable record means "no preferences yet".
		return prefs.Default(), nil
	}
	var up prefs.UserPreferences
	if err := json.Unmarshal(data, &up); err != nil {
		return prefs.Default(), fmt.Errorf("store: decode preferences: %w", err)
	}
	return up, nil
}

func (p *prefStore) save(up prefs.UserPreferences) error {
	data, err := json.Marshal(up)
	if err != nil {
		return err
	}
	return p.d.Write(prefsKey, data)
}

func (p *prefStore) Preferences(ctx context.Context) (prefs.UserPreferences, error) {
	return p.load()
}

// Update applies transform to the current snapshot and persists the result as
// one atomic transaction.
func (p *prefStore) Update(ctx context.Context, transform func(prefs.UserPreferences) prefs.UserPreferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	cur, err := p.load()
	if err != nil {
		return err
	}
	return p.save(transform(cur))
}
