package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/eventsnow/booking-api/internal/interface/http"
	"github.com/eventsnow/booking-api/internal/interface/middleware"
	"github.com/eventsnow/booking-api/pkg/helpers"
)

// UploadModule exposes the authenticated image upload endpoint.
type UploadModule struct {
	Handler *handlers.UploadHandler
	JWT     *helpers.JWTManager
}

func NewUploadModule(h *handlers.UploadHandler, jwt *helpers.JWTManager) *UploadModule {
	return &UploadModule{Handler: h, JWT: jwt}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.Auth(m.JWT))
	{
		uploads.POST("/image", m.Handler.Image)
	}
}
