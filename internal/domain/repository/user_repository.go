package repository

import (
	"context"
	"errors"

	"github.com/eventsnow/booking-api/internal/domain/entity"
)

// Sentinel errors shared by all store implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository is the credential store: create-on-register plus lookups
// for login and self retrieval. Records are never updated or deleted.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
