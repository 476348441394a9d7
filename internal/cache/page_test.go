package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// memStore is an in-process PageStore with real expiry for tests.
type memStore struct {
	entries map[string]memEntry
}

type memEntry struct {
	value   []byte
	expires time.Time
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]memEntry)}
}

func (s *memStore) GetBytes(key string) ([]byte, bool) {
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (s *memStore) SetBytes(key string, value []byte, ttl time.Duration) {
	s.entries[key] = memEntry{value: value, expires: time.Now().Add(ttl)}
}

func (s *memStore) Invalidate(key string) {
	delete(s.entries, key)
}

func newCountedEngine(store PageStore, ttl time.Duration) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	hits := 0
	engine := gin.New()
	engine.GET("/", PageCache(store, ttl), func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, fmt.Sprintf("render %d", hits))
	})
	return engine, &hits
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestPageCacheServesIdenticalBytesWithinTTL(t *testing.T) {
	store := newMemStore()
	engine, hits := newCountedEngine(store, time.Minute)

	first := get(engine, "/")
	second := get(engine, "/")

	if first.Body.String() != second.Body.String() {
		t.Errorf("Cached responses differ: %q vs %q", first.Body.String(), second.Body.String())
	}
	if *hits != 1 {
		t.Errorf("Handler ran %d times, want 1", *hits)
	}
}

func TestPageCacheRecomputesAfterInvalidation(t *testing.T) {
	store := newMemStore()
	engine, hits := newCountedEngine(store, time.Minute)

	first := get(engine, "/")
	InvalidatePage(store, "/")
	second := get(engine, "/")

	if first.Body.String() == second.Body.String() {
		t.Error("Response after invalidation should be recomputed")
	}
	if *hits != 2 {
		t.Errorf("Handler ran %d times, want 2", *hits)
	}
}

func TestPageCacheKeysIncludeQuery(t *testing.T) {
	store := newMemStore()
	engine, hits := newCountedEngine(store, time.Minute)

	get(engine, "/")
	get(engine, "/?page=2")

	if *hits != 2 {
		t.Errorf("Distinct pages should render separately, handler ran %d times", *hits)
	}
}

func TestPageCacheNilStorePassesThrough(t *testing.T) {
	engine, hits := newCountedEngine(nil, time.Minute)

	get(engine, "/")
	get(engine, "/")

	if *hits != 2 {
		t.Errorf("Nil store should disable caching, handler ran %d times", *hits)
	}
}
