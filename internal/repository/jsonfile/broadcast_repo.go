package jsonfile

import (
	"context"
	"log/slog"
	"time"

	"alumninexus/internal/domain"
)

type broadcastRepository struct {
	col *collection[*domain.Broadcast]
}

// NewBroadcastRepository returns a BroadcastRepository backed by <dir>/broadcasts.json.
func NewBroadcastRepository(dir string, logger *slog.Logger) domain.BroadcastRepository {
	return &broadcastRepository{
		col: newCollection(dir, "broadcasts", logger,
			func(b *domain.Broadcast) string { return b.ID },
			func(b *domain.Broadcast) time.Time { return b.DateTime },
		),
	}
}

func (r *broadcastRepository) List(ctx context.Context, rng domain.DateRange) ([]*domain.Broadcast, error) {
	return r.col.list(rng), nil
}

func (r *broadcastRepository) GetByID(ctx context.Context, id string) (*domain.Broadcast, error) {
	return r.col.getByID(id)
}

func (r *broadcastRepository) Create(ctx context.Context, b *domain.Broadcast) error {
	return r.col.insert(b, true)
}

func (r *broadcastRepository) Update(ctx context.Context, id string, patch domain.BroadcastPatch) (*domain.Broadcast, error) {
	return r.col.update(id, func(b *domain.Broadcast) { patch.Apply(b) })
}

func (r *broadcastRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(id)
}
