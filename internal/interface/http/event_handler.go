package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eventsnow/booking-api/internal/application"
	"github.com/eventsnow/booking-api/internal/domain/entity"
	"github.com/eventsnow/booking-api/pkg/response"
	"github.com/eventsnow/booking-api/pkg/validation"
)

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type uploadEventRequest struct {
	Name  string   `json:"name" binding:"required"`
	Image string   `json:"image" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Date  string   `json:"date" binding:"required"`
	Info  string   `json:"info" binding:"required"`
	Type  string   `json:"type" binding:"required,oneof=FREE PRO"`
}

// Upload POST /events/upload (token required)
func (h *EventHandler) Upload(c *gin.Context) {
	var req uploadEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToMessages(err)...)
		return
	}

	_, err := h.Svc.Upload(c.Request.Context(), application.UploadEventInput{
		Name:  req.Name,
		Image: req.Image,
		Price: *req.Price,
		Date:  req.Date,
		Info:  req.Info,
		Type:  req.Type,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicateEvent) {
			response.Fail(c, http.StatusBadRequest, "event already exists")
			return
		}
		h.Logger.WithError(err).Error("event upload failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"message": "upload event successful"})
}

// Free GET /events/free
func (h *EventHandler) Free(c *gin.Context) {
	h.listByType(c, entity.EventTypeFree)
}

// Pro GET /events/pro
func (h *EventHandler) Pro(c *gin.Context) {
	h.listByType(c, entity.EventTypePro)
}

func (h *EventHandler) listByType(c *gin.Context, eventType string) {
	events, err := h.Svc.ListByType(c.Request.Context(), eventType)
	if err != nil {
		h.Logger.WithError(err).WithField("type", eventType).Error("list events failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	out := make([]gin.H, 0, len(events))
	for i := range events {
		out = append(out, eventJSON(&events[i]))
	}
	response.OK(c, gin.H{"events": out})
}

// GetByID GET /events/:eventId
func (h *EventHandler) GetByID(c *gin.Context) {
	eventID := c.Param("eventId")
	e, err := h.Svc.GetByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, application.ErrEventNotFound) {
			response.Fail(c, http.StatusNotFound, "no event found")
			return
		}
		h.Logger.WithError(err).WithField("event_id", eventID).Error("get event failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"event": eventJSON(e)})
}

// Search GET /events/search?q=...
func (h *EventHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "q is required")
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Error("event search failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"events": hits})
}

func eventJSON(e *entity.Event) gin.H {
	return gin.H{
		"id":        e.ID,
		"name":      e.Name,
		"image":     e.ImageURL,
		"price":     e.Price,
		"date":      e.Date,
		"info":      e.Info,
		"type":      e.Type,
		"createdAt": e.CreatedAt,
		"updatedAt": e.UpdatedAt,
	}
}
