package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"alumninexus/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, type, date, venue, capacity, rsvp, description, alumni_list, date_time, from_year, to_year`

func scanEvent(scan func(...any) error) (*domain.Event, error) {
	e := &domain.Event{}
	var fromYear, toYear sql.NullInt64
	err := scan(
		&e.ID, &e.Title, &e.Type, &e.Date, &e.Venue, &e.Capacity, &e.RSVP,
		&e.Description, pq.Array(&e.AlumniList), &e.DateTime, &fromYear, &toYear,
	)
	if err != nil {
		return nil, err
	}
	if fromYear.Valid {
		v := int(fromYear.Int64)
		e.FromYear = &v
	}
	if toYear.Valid {
		v := int(toYear.Int64)
		e.ToYear = &v
	}
	if e.AlumniList == nil {
		e.AlumniList = []string{}
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY date_time DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Type, e.Date, e.Venue, e.Capacity, e.RSVP,
		e.Description, pq.Array(e.AlumniList), e.DateTime, nullableInt(e.FromYear), nullableInt(e.ToYear))
	return err
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(e)
	query := `
		UPDATE events
		SET title = $2, type = $3, date = $4, venue = $5, capacity = $6, rsvp = $7,
		    description = $8, alumni_list = $9, from_year = $10, to_year = $11
		WHERE id = $1
	`
	if _, err := r.DB.ExecContext(ctx, query,
		id, e.Title, e.Type, e.Date, e.Venue, e.Capacity, e.RSVP,
		e.Description, pq.Array(e.AlumniList), nullableInt(e.FromYear), nullableInt(e.ToYear)); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
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

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
