package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorItem is one entry of the error envelope. Every failure response has
// the shape {"errors":[{"message": "..."}]}; success responses carry
// positive-shaped payloads instead.
type ErrorItem struct {
	Message string `json:"message"`
}

type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}

// Fail writes the error envelope with one item per message.
func Fail(c *gin.Context, status int, messages ...string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	items := make([]ErrorItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, ErrorItem{Message: m})
	}
	c.JSON(status, ErrorBody{Errors: items})
}

// AbortFail is Fail for middleware: it also stops the handler chain.
func AbortFail(c *gin.Context, status int, messages ...string) {
	Fail(c, status, messages...)
	c.Abort()
}

// OK writes a success payload as-is.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}
