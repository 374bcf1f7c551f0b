package postgres

import (
	"context"
	"database/sql"
	"errors"

	"alumninexus/internal/domain"
)

type broadcastRepository struct {
	DB *sql.DB
}

func NewBroadcastRepository(db *sql.DB) domain.BroadcastRepository {
	return &broadcastRepository{
		DB: db,
	}
}

func (r *broadcastRepository) List(ctx context.Context, rng domain.DateRange) ([]*domain.Broadcast, error) {
	query := `
		SELECT id, title, body, date_time, from_year, to_year
		FROM broadcasts
	`
	var args []any
	query, args = appendDateBounds(query, "date_time", rng)
	query += ` ORDER BY date_time DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	broadcasts := make([]*domain.Broadcast, 0)
	for rows.Next() {
		b := &domain.Broadcast{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Body, &b.DateTime, &b.FromYear, &b.ToYear); err != nil {
			return nil, err
		}
		broadcasts = append(broadcasts, b)
	}
	return broadcasts, rows.Err()
}

func (r *broadcastRepository) GetByID(ctx context.Context, id string) (*domain.Broadcast, error) {
	query := `
		SELECT id, title, body, date_time, from_year, to_year
		FROM broadcasts
		WHERE id = $1
	`
	b := &domain.Broadcast{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Body, &b.DateTime, &b.FromYear, &b.ToYear,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *broadcastRepository) Create(ctx context.Context, b *domain.Broadcast) error {
	query := `
		INSERT INTO broadcasts (id, title, body, date_time, from_year, to_year)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		b.ID, b.Title, b.Body, b.DateTime, b.FromYear, b.ToYear)
	return err
}

func (r *broadcastRepository) Update(ctx context.Context, id string, patch domain.BroadcastPatch) (*domain.Broadcast, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(b)
	query := `
		UPDATE broadcasts
		SET title = $2, body = $3, from_year = $4, to_year = $5
		WHERE id = $1
	`
	if _, err := r.DB.ExecContext(ctx, query,
		id, b.Title, b.Body, b.FromYear, b.ToYear); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *broadcastRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM broadcasts WHERE id = $1`, id)
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
