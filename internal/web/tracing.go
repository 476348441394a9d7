package web

import (
	"github.com/gin-gonic/gin"

	"github.com/quillworks/quill/pkg/telemetry"
)

// traceRequests wraps each request in a span named after the matched
// route, so the handlers and everything below them show up in the
// trace pipeline.
func traceRequests(c *gin.Context) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	ctx, span := telemetry.StartSpan(c.Request.Context(), "web."+c.Request.Method+" "+route)
	defer span.End()

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
