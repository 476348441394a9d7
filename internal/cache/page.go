package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PageStore is the slice of the cache the page middleware needs. A
// nil store turns the middleware into a pass-through, matching a
// deployment without Redis.
type PageStore interface {
	GetBytes(key string) ([]byte, bool)
	SetBytes(key string, value []byte, ttl time.Duration)
	Invalidate(key string)
}

// PageKey derives the cache key for a rendered page from its request
// URI. The query string is part of the key so each page number caches
// separately.
func PageKey(uri string) string {
	return "page:" + HashKey(uri)
}

// InvalidatePage drops the cached rendering of a page. Administrative
// and test use only; normal operation relies on TTL expiry.
func InvalidatePage(store PageStore, uri string) {
	if store == nil {
		return
	}
	store.Invalidate(PageKey(uri))
}

// PageCache serves successful GET responses from the store for ttl
// before recomputing. Entries are immutable for their lifetime;
// writes landing inside the window stay invisible until expiry.
func PageCache(store PageStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := PageKey(c.Request.URL.RequestURI())
		if body, ok := store.GetBytes(key); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture
		c.Next()

		if capture.Status() == http.StatusOK {
			store.SetBytes(key, capture.body.Bytes(), ttl)
		}
	}
}

// bodyCapture tees the response body so it can be stored after the
// handler ran.
type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
