// Package jsonfile persists each entity collection as a single JSON
// document on local disk, e.g. {"blogs": [...]}. The store is a demo-grade
// single-process backend: every mutation rewrites the whole document, and a
// per-collection mutex makes the store the sole writer of its file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"alumninexus/internal/domain"
)

// collection owns one entity's on-disk document. key doubles as the
// document's top-level array name and the file's base name.
type collection[T any] struct {
	mu     sync.Mutex
	path   string
	key    string
	logger *slog.Logger
	idOf   func(T) string
	timeOf func(T) time.Time
}

func newCollection[T any](dir, key string, logger *slog.Logger, idOf func(T) string, timeOf func(T) time.Time) *collection[T] {
	return &collection[T]{
		path:   filepath.Join(dir, key+".json"),
		key:    key,
		logger: logger,
		idOf:   idOf,
		timeOf: timeOf,
	}
}

// load reads the document and returns its records. A missing file is
// created with the empty-array shape; a read or parse failure degrades to
// an empty collection; the parse error is logged but never surfaced.
func (c *collection[T]) load() []T {
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		if err := c.save(nil); err != nil {
			c.logger.Error("initialize collection file", "collection", c.key, "err", err)
		}
		return nil
	}
	raw, err := os.ReadFile(c.path)
	if err != nil {
		c.logger.Error("read collection file", "collection", c.key, "err", err)
		return nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.logger.Error("parse collection file", "collection", c.key, "err", err)
		return nil
	}
	var records []T
	if err := json.Unmarshal(doc[c.key], &records); err != nil {
		c.logger.Error("parse collection records", "collection", c.key, "err", err)
		return nil
	}
	return records
}

// save rewrites the whole document. Failures propagate to the caller and
// become request-level errors.
func (c *collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(map[string][]T{c.key: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

// list returns the records sorted descending by creation time, keeping only
// those inside rng. It never fails.
func (c *collection[T]) list(rng domain.DateRange) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.load()
	sort.SliceStable(records, func(i, j int) bool {
		return c.timeOf(records[i]).After(c.timeOf(records[j]))
	})
	if rng.IsZero() {
		return records
	}
	filtered := make([]T, 0, len(records))
	for _, rec := range records {
		if rng.Contains(c.timeOf(rec)) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func (c *collection[T]) getByID(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	for _, rec := range c.load() {
		if c.idOf(rec) == id {
			return rec, nil
		}
	}
	return zero, domain.ErrNotFound
}

// insert adds rec and persists. front selects the on-disk insert position
// (blogs and broadcasts prepend, events append).
func (c *collection[T]) insert(rec T, front bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.load()
	if front {
		records = append([]T{rec}, records...)
	} else {
		records = append(records, rec)
	}
	return c.save(records)
}

// update applies apply to the record with the given id and persists.
func (c *collection[T]) update(id string, apply func(T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records := c.load()
	for _, rec := range records {
		if c.idOf(rec) == id {
			apply(rec)
			if err := c.save(records); err != nil {
				return zero, err
			}
			return rec, nil
		}
	}
	return zero, domain.ErrNotFound
}

func (c *collection[T]) delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.load()
	for i, rec := range records {
		if c.idOf(rec) == id {
			records = append(records[:i], records[i+1:]...)
			return c.save(records)
		}
	}
	return domain.ErrNotFound
}
