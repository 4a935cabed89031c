package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eventsnow/booking-api/internal/application"
	"github.com/eventsnow/booking-api/internal/domain/entity"
	"github.com/eventsnow/booking-api/internal/interface/middleware"
	"github.com/eventsnow/booking-api/pkg/response"
	"github.com/eventsnow/booking-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToMessages(err)...)
		return
	}

	if err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, application.ErrDuplicateUser) {
			response.Fail(c, http.StatusBadRequest, "user exists already")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"message": "registration successful"})
}

// Login POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToMessages(err)...)
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"msg": "login successful", "token": token})
}

// Me GET /users/me (token required)
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "no token provided, access denied")
		return
	}

	u, err := h.Svc.GetSelf(c.Request.Context(), id.ID)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "user data not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", id.ID).Error("get self failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"user": userJSON(u)})
}

// userJSON serializes a user record without the password hash.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"avatar":    u.AvatarURL,
		"isAdmin":   u.IsAdmin,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}
