package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/eventsnow/booking-api/internal/interface/http"
	"github.com/eventsnow/booking-api/internal/interface/middleware"
	"github.com/eventsnow/booking-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and the auth gate into routes.
// Public: POST /users/register, POST /users/login
// Protected: GET /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("/register", m.Handler.Register)
	users.POST("/login", m.Handler.Login)

	protected := users.Group("/")
	protected.Use(middleware.Auth(m.JWT))
	{
		protected.GET("/me", m.Handler.Me)
	}
}
