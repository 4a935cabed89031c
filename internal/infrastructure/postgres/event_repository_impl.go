package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventsnow/booking-api/internal/domain/entity"
	"github.com/eventsnow/booking-api/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (name, image_url, price, event_date, info, event_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, e.Name, e.ImageURL, e.Price, e.Date, e.Info, e.Type)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, image_url, price, event_date, info, event_type, created_at, updated_at
		FROM events
		WHERE id = $1
	`, id))
}

func (r *EventRepository) GetByName(ctx context.Context, name string) (*entity.Event, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, image_url, price, event_date, info, event_type, created_at, updated_at
		FROM events
		WHERE name = $1
	`, name))
}

func (r *EventRepository) ListByType(ctx context.Context, eventType string) ([]entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, image_url, price, event_date, info, event_type, created_at, updated_at
		FROM events
		WHERE event_type = $1
		ORDER BY created_at DESC
	`, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]entity.Event, 0)
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.ImageURL, &e.Price, &e.Date,
			&e.Info, &e.Type, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) scanOne(row pgx.Row) (*entity.Event, error) {
	e := &entity.Event{}
	if err := row.Scan(&e.ID, &e.Name, &e.ImageURL, &e.Price, &e.Date,
		&e.Info, &e.Type, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
