package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/eventsnow/booking-api/internal/application"
	"github.com/eventsnow/booking-api/internal/domain/entity"
	"github.com/eventsnow/booking-api/internal/domain/repository"
	handlers "github.com/eventsnow/booking-api/internal/interface/http"
	"github.com/eventsnow/booking-api/internal/router/modules"
	"github.com/eventsnow/booking-api/pkg/helpers"
	"github.com/eventsnow/booking-api/pkg/response"
	"github.com/eventsnow/booking-api/pkg/validation"
)

// In-memory stores backing the handler tests.

type memUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memEventRepo struct {
	events map[string]*entity.Event
	seq    int
}

func newMemEventRepo() *memEventRepo { return &memEventRepo{events: map[string]*entity.Event{}} }

func (r *memEventRepo) Create(_ context.Context, e *entity.Event) error {
	r.seq++
	e.ID = "event-" + strconv.Itoa(r.seq)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) GetByID(_ context.Context, id string) (*entity.Event, error) {
	if e, ok := r.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memEventRepo) GetByName(_ context.Context, name string) (*entity.Event, error) {
	for _, e := range r.events {
		if e.Name == name {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memEventRepo) ListByType(_ context.Context, eventType string) ([]entity.Event, error) {
	out := make([]entity.Event, 0)
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, *e)
		}
	}
	return out, nil
}

// testServer wires the user and event modules against in-memory stores.
type testServer struct {
	engine    *gin.Engine
	userRepo  *memUserRepo
	eventRepo *memEventRepo
	jwt       *helpers.JWTManager
	logger    *logrus.Logger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	jwt := helpers.NewJWTManager("test-secret")
	userRepo := newMemUserRepo()
	eventRepo := newMemEventRepo()

	userSvc := application.NewUserService(userRepo, jwt, nil, logger)
	eventSvc := application.NewEventService(eventRepo, nil, nil, "", time.Minute, logger)

	engine := gin.New()
	root := &engine.RouterGroup
	modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt).Register(root)
	modules.NewEventModule(handlers.NewEventHandler(eventSvc, logger), jwt).Register(root)

	return &testServer{engine: engine, userRepo: userRepo, eventRepo: eventRepo, jwt: jwt, logger: logger}
}

// withUpload registers the image upload module on top of the base routes.
func (s *testServer) withUpload(gcs *storage.Client, bucket string) *testServer {
	m := modules.NewUploadModule(handlers.NewUploadHandler(gcs, bucket, s.logger), s.jwt)
	m.Register(&s.engine.RouterGroup)
	return s
}

func (s *testServer) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Auth-Token", token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorMessages(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msgs := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

func (s *testServer) register(t *testing.T, name, email, password string) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/users/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/users/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response has no token")
	return token
}
