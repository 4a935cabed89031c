package repository

import (
	"context"

	"github.com/eventsnow/booking-api/internal/domain/entity"
)

// EventRepository is the catalog store. Name uniqueness is an
// application-level check via GetByName, not a storage constraint.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetByName(ctx context.Context, name string) (*entity.Event, error)
	ListByType(ctx context.Context, eventType string) ([]entity.Event, error)
}
