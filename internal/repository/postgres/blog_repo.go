// Package postgres implements the entity repositories over database/sql for
// deployments that outgrow the JSON-file demo store. Semantics match the
// jsonfile backend: descending dateTime order, inclusive date bounds,
// merge-style updates, ErrNotFound on missing ids.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"alumninexus/internal/domain"
)

type blogRepository struct {
	DB *sql.DB
}

func NewBlogRepository(db *sql.DB) domain.BlogRepository {
	return &blogRepository{
		DB: db,
	}
}

func (r *blogRepository) List(ctx context.Context, rng domain.DateRange) ([]*domain.BlogPost, error) {
	query := `
		SELECT id, title, body, date_time, from_year, to_year, author
		FROM blogs
	`
	var args []any
	query, args = appendDateBounds(query, "date_time", rng)
	query += ` ORDER BY date_time DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		p := &domain.BlogPost{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.DateTime, &p.FromYear, &p.ToYear, &p.Author); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	query := `
		SELECT id, title, body, date_time, from_year, to_year, author
		FROM blogs
		WHERE id = $1
	`
	p := &domain.BlogPost{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Body, &p.DateTime, &p.FromYear, &p.ToYear, &p.Author,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	query := `
		INSERT INTO blogs (id, title, body, date_time, from_year, to_year, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		post.ID, post.Title, post.Body, post.DateTime, post.FromYear, post.ToYear, post.Author)
	return err
}

func (r *blogRepository) Update(ctx context.Context, id string, patch domain.BlogPatch) (*domain.BlogPost, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(post)
	query := `
		UPDATE blogs
		SET title = $2, body = $3, from_year = $4, to_year = $5, author = $6
		WHERE id = $1
	`
	if _, err := r.DB.ExecContext(ctx, query,
		id, post.Title, post.Body, post.FromYear, post.ToYear, post.Author); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// appendDateBounds adds inclusive WHERE clauses for the optional range.
func appendDateBounds(query, column string, rng domain.DateRange) (string, []any) {
	var args []any
	if rng.From != nil {
		args = append(args, *rng.From)
		query += ` WHERE ` + column + ` >= $1`
	}
	if rng.To != nil {
		args = append(args, *rng.To)
		if len(args) == 1 {
			query += ` WHERE ` + column + ` <= $1`
		} else {
			query += ` AND ` + column + ` <= $2`
		}
	}
	return query, args
}
