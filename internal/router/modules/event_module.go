package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/eventsnow/booking-api/internal/interface/http"
	"github.com/eventsnow/booking-api/internal/interface/middleware"
	"github.com/eventsnow/booking-api/pkg/helpers"
)

// EventModule wires catalog HTTP handlers into routes.
// Public: GET /events/free, GET /events/pro, GET /events/search,
// GET /events/:eventId
// Protected: POST /events/upload
type EventModule struct {
	Handler *handlers.EventHandler
	JWT     *helpers.JWTManager
}

func NewEventModule(h *handlers.EventHandler, jwt *helpers.JWTManager) *EventModule {
	return &EventModule{Handler: h, JWT: jwt}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	events.GET("/free", m.Handler.Free)
	events.GET("/pro", m.Handler.Pro)
	events.GET("/search", m.Handler.Search)
	events.GET("/:eventId", m.Handler.GetByID)

	protected := events.Group("/")
	protected.Use(middleware.Auth(m.JWT))
	{
		protected.POST("/upload", m.Handler.Upload)
	}
}
