package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents a handler error with an HTTP status
type Error struct {
	Code    int
	Message string
}

// NewError creates a new handler error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("handler error %d: %s", e.Code, e.Message)
}

// NotFound renders the themed 404 page. Registered as the NoRoute
// handler and reused for unknown slugs, usernames and post ids.
func (r *Router) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"path": c.Request.URL.Path,
	})
}

func (r *Router) serverError(c *gin.Context, err error) {
	r.logger.Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, "server error")
	c.Abort()
}
