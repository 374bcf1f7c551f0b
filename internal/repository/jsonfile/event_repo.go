package jsonfile

import (
	"context"
	"log/slog"
	"time"

	"alumninexus/internal/domain"
)

type eventRepository struct {
	col *collection[*domain.Event]
}

// NewEventRepository returns an EventRepository backed by <dir>/events.json.
func NewEventRepository(dir string, logger *slog.Logger) domain.EventRepository {
	return &eventRepository{
		col: newCollection(dir, "events", logger,
			func(e *domain.Event) string { return e.ID },
			func(e *domain.Event) time.Time { return e.DateTime },
		),
	}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.col.list(domain.DateRange{}), nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.col.getByID(id)
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.col.insert(e, false)
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	return r.col.update(id, func(e *domain.Event) { patch.Apply(e) })
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(id)
}
