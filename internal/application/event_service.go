package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/eventsnow/booking-api/internal/domain/entity"
	repo "github.com/eventsnow/booking-api/internal/domain/repository"
	"github.com/eventsnow/booking-api/pkg/helpers"
)

var (
	ErrDuplicateEvent = errors.New("event already exists")
	ErrEventNotFound  = errors.New("event not found")
)

// EventService orchestrates the catalog store plus the optional search index
// and listing cache. Redis and Elasticsearch may be nil; every path degrades.
type EventService struct {
	Repo     repo.EventRepository
	Redis    *redis.Client
	ES       *elasticsearch.Client
	ESIndex  string
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewEventService(repo repo.EventRepository, rdb *redis.Client, es *elasticsearch.Client, esIndex string, cacheTTL time.Duration, logger *logrus.Logger) *EventService {
	return &EventService{Repo: repo, Redis: rdb, ES: es, ESIndex: esIndex, CacheTTL: cacheTTL, Logger: logger}
}

// UploadEventInput carries the six required upload fields.
type UploadEventInput struct {
	Name  string
	Image string
	Price float64
	Date  string
	Info  string
	Type  string
}

func cacheKey(eventType string) string {
	return "events:type:" + eventType
}

// Upload persists a new event after the duplicate-name check, invalidates
// the category cache and indexes the record for search.
func (s *EventService) Upload(ctx context.Context, in UploadEventInput) (*entity.Event, error) {
	if _, err := s.Repo.GetByName(ctx, in.Name); err == nil {
		return nil, ErrDuplicateEvent
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	e := &entity.Event{
		Name:     in.Name,
		ImageURL: in.Image,
		Price:    in.Price,
		Date:     in.Date,
		Info:     in.Info,
		Type:     in.Type,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, cacheKey(e.Type)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", cacheKey(e.Type)).Warn("cache invalidation failed")
		}
	}
	_ = s.indexEvent(ctx, e)
	return e, nil
}

// ListByType returns all events of the given category, newest first. An
// empty category is a valid result, not an error. Reads go through the
// Redis cache when available.
func (s *EventService) ListByType(ctx context.Context, eventType string) ([]entity.Event, error) {
	if s.Redis != nil {
		var cached []entity.Event
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, cacheKey(eventType), &cached); err == nil && ok {
			return cached, nil
		}
	}

	events, err := s.Repo.ListByType(ctx, eventType)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, cacheKey(eventType), events, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", cacheKey(eventType)).Warn("cache write failed")
		}
	}
	return events, nil
}

// GetByID looks the event up by identifier.
func (s *EventService) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *EventService) indexEvent(ctx context.Context, e *entity.Event) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         e.ID,
		"name":       e.Name,
		"image":      e.ImageURL,
		"price":      e.Price,
		"date":       e.Date,
		"info":       e.Info,
		"type":       e.Type,
		"created_at": e.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: e.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("event_id", e.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("event_id", e.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over event names and descriptions.
// Returns empty results when the search index is not configured.
func (s *EventService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "info"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
