// Package keyvalue implements the domain repositories on a kvstore.Store.
//
// Each collection lives under a single key as a JSON array. Every write
// reads the whole array, modifies it and writes it back, which is only
// reasonable because collections stay small.
package keyvalue

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/kvstore"
	"github.com/goccy/go-json"
)

// Collection names, stored under Prefix+name.
const (
	EmployeesKey = "employees"
	RecordsKey   = "records"
	LeavesKey    = "leaves"

	DefaultPrefix = "attendance_"
)

type collection[T any] struct {
	store kvstore.Store
	key   string
	idOf  func(T) string

	// serializes read-modify-write on this key; share one repository per
	// store so every writer goes through the same lock
	mu sync.Mutex
}

func newCollection[T any](store kvstore.Store, prefix, name string, idOf func(T) string) *collection[T] {
	return &collection[T]{
		store: store,
		key:   prefix + name,
		idOf:  idOf,
	}
}

// list never returns a nil slice.
func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	items := make([]T, 0)
	if !found || raw == "" {
		return items, nil
	}

	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c *collection[T]) find(ctx context.Context, match func(T) bool) (*T, error) {
	items, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(items, match)
	if idx < 0 {
		return nil, nil
	}
	return &items[idx], nil
}

func (c *collection[T]) getByID(ctx context.Context, id string) (*T, error) {
	return c.find(ctx, func(item T) bool { return c.idOf(item) == id })
}

// upsert replaces the item with the same id at its position, or appends.
func (c *collection[T]) upsert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.list(ctx)
	if err != nil {
		return err
	}

	id := c.idOf(item)
	return c.write(ctx, c.place(items, slices.IndexFunc(items, func(existing T) bool { return c.idOf(existing) == id }), item))
}

// mutate passes a copy of the first item satisfying match (nil when none) to
// fn and stores what fn returns, all under the write lock. A nil result from
// fn leaves the collection untouched and is returned as nil.
func (c *collection[T]) mutate(ctx context.Context, match func(T) bool, fn func(existing *T) (*T, error)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.list(ctx)
	if err != nil {
		return nil, err
	}

	var existing *T
	idx := slices.IndexFunc(items, match)
	if idx >= 0 {
		current := items[idx]
		existing = &current
	}

	next, err := fn(existing)
	if err != nil || next == nil {
		return nil, err
	}

	if idx < 0 || c.idOf(items[idx]) != c.idOf(*next) {
		id := c.idOf(*next)
		idx = slices.IndexFunc(items, func(item T) bool { return c.idOf(item) == id })
	}
	if err := c.write(ctx, c.place(items, idx, *next)); err != nil {
		return nil, err
	}
	return next, nil
}

// place sets items[idx] to item, or appends when idx is negative.
func (c *collection[T]) place(items []T, idx int, item T) []T {
	if idx >= 0 {
		items[idx] = item
		return items
	}
	return append(items, item)
}

func (c *collection[T]) write(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}
