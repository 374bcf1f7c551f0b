package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"alumninexus/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []*domain.Event
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			patch.Apply(e)
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestEventService_CreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, time.Second)

	e, err := svc.CreateEvent(ctx, domain.NewEvent("Homecoming", domain.EventTypeGathering,
		"2025-10-10", "Quad", "All cohorts welcome", 0, nil))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(e.ID, "event_"))
	assert.Equal(t, 0, e.RSVP)
	assert.Equal(t, domain.DefaultEventCapacity, e.Capacity)
	assert.NotNil(t, e.AlumniList)
	assert.False(t, e.DateTime.IsZero())
}

func TestEventService_CreateKeepsExplicitCapacity(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(&fakeEventRepo{}, time.Second)

	e, err := svc.CreateEvent(ctx, domain.NewEvent("Guidance night", domain.EventTypeGuidance,
		"2025-11-01", "Hall B", "Career guidance", 40, []string{"J. Mentor"}))
	require.NoError(t, err)
	assert.Equal(t, 40, e.Capacity)
}

func TestEventService_UpdatePreservesUnpatchedFields(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, time.Second)

	created, err := svc.CreateEvent(ctx, domain.NewEvent("Guidance night", domain.EventTypeGuidance,
		"2025-11-01", "Hall B", "Career guidance", 40, []string{"J. Mentor"}))
	require.NoError(t, err)

	venue := "Hall C"
	updated, err := svc.UpdateEvent(ctx, created.ID, domain.EventPatch{Venue: &venue})
	require.NoError(t, err)
	assert.Equal(t, "Hall C", updated.Venue)
	assert.Equal(t, "Guidance night", updated.Title)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.DateTime, updated.DateTime)
}

func TestEventService_NotFoundPassthrough(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(&fakeEventRepo{}, time.Second)

	_, err := svc.GetEvent(ctx, "event_missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, svc.DeleteEvent(ctx, "event_missing"), domain.ErrNotFound)
}
