package jsonfile

import (
	"context"
	"log/slog"
	"time"

	"alumninexus/internal/domain"
)

type blogRepository struct {
	col *collection[*domain.BlogPost]
}

// NewBlogRepository returns a BlogRepository backed by <dir>/blogs.json.
func NewBlogRepository(dir string, logger *slog.Logger) domain.BlogRepository {
	return &blogRepository{
		col: newCollection(dir, "blogs", logger,
			func(p *domain.BlogPost) string { return p.ID },
			func(p *domain.BlogPost) time.Time { return p.DateTime },
		),
	}
}

func (r *blogRepository) List(ctx context.Context, rng domain.DateRange) ([]*domain.BlogPost, error) {
	return r.col.list(rng), nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.col.getByID(id)
}

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	return r.col.insert(post, true)
}

func (r *blogRepository) Update(ctx context.Context, id string, patch domain.BlogPatch) (*domain.BlogPost, error) {
	return r.col.update(id, func(p *domain.BlogPost) { patch.Apply(p) })
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(id)
}
