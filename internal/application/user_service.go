package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/eventsnow/booking-api/internal/domain/entity"
	repo "github.com/eventsnow/booking-api/internal/domain/repository"
	"github.com/eventsnow/booking-api/pkg/helpers"
	"github.com/eventsnow/booking-api/pkg/mailer"
	"github.com/eventsnow/booking-api/pkg/mailer/templates"
)

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService orchestrates the credential store, password hashing and token
// issuance. It holds no per-request state.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Pub: pub, Logger: logger}
}

// Register creates a user with a bcrypt-hashed password and a gravatar URL
// derived from the email. A welcome email is enqueued best effort.
func (s *UserService) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return ErrDuplicateUser
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}

	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		AvatarURL: helpers.GravatarURL(email),
		IsAdmin:   true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// The existence check above is not transactional; the unique index
		// catches registrations that raced past it.
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrDuplicateUser
		}
		return err
	}

	s.enqueueWelcome(ctx, u)
	return nil
}

// Login verifies credentials and issues a signed token embedding {id, name}.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return s.JWT.Sign(helpers.Identity{ID: u.ID, Name: u.Name})
}

// GetSelf loads the authenticated user's record. The password hash stays in
// the entity; handlers must not serialize it.
func (s *UserService) GetSelf(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("enqueue welcome email failed")
	}
}
