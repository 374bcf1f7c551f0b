package client

import (
	"context"
	"sync"
	"time"

	"alumninexus/internal/domain"
)

// Feed is an in-memory view over one entity list. Refresh replaces the
// cache; Create and Delete call the server first and touch the cache only
// on success, so there is never a rollback. One date filter and one
// expanded card are active at a time.
type Feed[T any] struct {
	mu       sync.Mutex
	items    []T
	filter   domain.DateRange
	expanded string
	lastErr  string

	idOf   func(T) string
	timeOf func(T) time.Time
	fetch  func(ctx context.Context) ([]T, error)
	remove func(ctx context.Context, id string) error
}

func newFeed[T any](
	idOf func(T) string,
	timeOf func(T) time.Time,
	fetch func(ctx context.Context) ([]T, error),
	remove func(ctx context.Context, id string) error,
) *Feed[T] {
	return &Feed[T]{idOf: idOf, timeOf: timeOf, fetch: fetch, remove: remove}
}

// Refresh replaces the cached list with a full fetch.
func (f *Feed[T]) Refresh(ctx context.Context) error {
	items, err := f.fetch(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.lastErr = err.Error()
		return err
	}
	f.items = items
	f.lastErr = ""
	return nil
}

// add prepends a server-confirmed record to the cache.
func (f *Feed[T]) add(item T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]T{item}, f.items...)
	f.lastErr = ""
}

// Delete removes the record on the server and, on success, drops it from
// the cache. If the deleted card was expanded it collapses.
func (f *Feed[T]) Delete(ctx context.Context, id string) error {
	if err := f.remove(ctx, id); err != nil {
		f.mu.Lock()
		f.lastErr = err.Error()
		f.mu.Unlock()
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.items[:0:0]
	for _, item := range f.items {
		if f.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	f.items = kept
	if f.expanded == id {
		f.expanded = ""
	}
	f.lastErr = ""
	return nil
}

// SetFilter replaces the active date filter. A zero range clears it.
func (f *Feed[T]) SetFilter(rng domain.DateRange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = rng
}

// Items returns the cached records that pass the active filter.
func (f *Feed[T]) Items() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]T, 0, len(f.items))
	for _, item := range f.items {
		if f.filter.Contains(f.timeOf(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Toggle expands the card with the given id, collapsing any other; toggling
// the already-expanded card collapses it.
func (f *Feed[T]) Toggle(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.expanded == id {
		f.expanded = ""
		return
	}
	f.expanded = id
}

// Expanded returns the id of the expanded card, or "" when none is.
func (f *Feed[T]) Expanded() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expanded
}

// Err returns the message of the last failed operation, cleared by the next
// successful one.
func (f *Feed[T]) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// BlogFeed couples a Feed with the blog endpoints.
type BlogFeed struct {
	*Feed[*domain.BlogPost]
	client *Client
}

// NewBlogFeed returns a feed over the blog list.
func NewBlogFeed(c *Client) *BlogFeed {
	return &BlogFeed{
		Feed: newFeed(
			func(p *domain.BlogPost) string { return p.ID },
			func(p *domain.BlogPost) time.Time { return p.DateTime },
			func(ctx context.Context) ([]*domain.BlogPost, error) { return c.ListBlogs(ctx, domain.DateRange{}) },
			c.DeleteBlog,
		),
		client: c,
	}
}

// Create posts the new blog and prepends the server's copy on success.
func (f *BlogFeed) Create(ctx context.Context, in BlogCreate) (*domain.BlogPost, error) {
	created, err := f.client.CreateBlog(ctx, in)
	if err != nil {
		f.mu.Lock()
		f.lastErr = err.Error()
		f.mu.Unlock()
		return nil, err
	}
	f.add(created)
	return created, nil
}

// BroadcastFeed couples a Feed with the broadcast endpoints.
type BroadcastFeed struct {
	*Feed[*domain.Broadcast]
	client *Client
}

// NewBroadcastFeed returns a feed over the broadcast list.
func NewBroadcastFeed(c *Client) *BroadcastFeed {
	return &BroadcastFeed{
		Feed: newFeed(
			func(b *domain.Broadcast) string { return b.ID },
			func(b *domain.Broadcast) time.Time { return b.DateTime },
			func(ctx context.Context) ([]*domain.Broadcast, error) { return c.ListBroadcasts(ctx, domain.DateRange{}) },
			c.DeleteBroadcast,
		),
		client: c,
	}
}

// Create posts the new broadcast and prepends the server's copy on success.
func (f *BroadcastFeed) Create(ctx context.Context, in BroadcastCreate) (*domain.Broadcast, error) {
	created, err := f.client.CreateBroadcast(ctx, in)
	if err != nil {
		f.mu.Lock()
		f.lastErr = err.Error()
		f.mu.Unlock()
		return nil, err
	}
	f.add(created)
	return created, nil
}

// EventFeed couples a Feed with the event endpoints.
type EventFeed struct {
	*Feed[*domain.Event]
	client *Client
}

// NewEventFeed returns a feed over the event list.
func NewEventFeed(c *Client) *EventFeed {
	return &EventFeed{
		Feed: newFeed(
			func(e *domain.Event) string { return e.ID },
			func(e *domain.Event) time.Time { return e.DateTime },
			c.ListEvents,
			c.DeleteEvent,
		),
		client: c,
	}
}

// Create posts the new event and prepends the server's copy on success.
func (f *EventFeed) Create(ctx context.Context, in EventCreate) (*domain.Event, error) {
	created, err := f.client.CreateEvent(ctx, in)
	if err != nil {
		f.mu.Lock()
		f.lastErr = err.Error()
		f.mu.Unlock()
		return nil, err
	}
	f.add(created)
	return created, nil
}
