package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventsnow/booking-api/pkg/helpers"
	"github.com/eventsnow/booking-api/pkg/response"
)

// TokenHeader is the request header carrying the raw signed token.
const TokenHeader = "X-Auth-Token"

const ctxIdentityKey = "authIdentity"

// Auth verifies the X-Auth-Token header and attaches the decoded identity to
// the request context. A missing or invalid token rejects the request with
// 401 before any downstream call.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "no token provided, access denied")
			return
		}
		id, err := jwt.Verify(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(ctxIdentityKey, *id)
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity set by Auth.
func IdentityFrom(c *gin.Context) (helpers.Identity, bool) {
	v, ok := c.Get(ctxIdentityKey)
	if !ok {
		return helpers.Identity{}, false
	}
	id, ok := v.(helpers.Identity)
	return id, ok
}
