package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_Take(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	record := limitKey{route: "POST /api/v1/transactions", client: "10.0.0.1"}

	first := rl.take(record)
	assert.True(t, first.allowed)
	assert.Equal(t, 1, first.remaining)
	assert.True(t, rl.take(record).allowed)

	now = now.Add(20 * time.Second)
	refused := rl.take(record)
	assert.False(t, refused.allowed)
	assert.Equal(t, 0, refused.remaining)
	assert.Equal(t, 40*time.Second, refused.retryAfter)

	assert.True(t, rl.take(limitKey{route: record.route, client: "10.0.0.2"}).allowed, "other clients have their own window")
	assert.True(t, rl.take(limitKey{route: "POST /api/v1/other", client: "10.0.0.1"}).allowed, "other routes have their own window")

	now = now.Add(40 * time.Second)
	assert.True(t, rl.take(record).allowed, "window resets at expiry")

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	rl.mu.Lock()
	tracked := len(rl.windows)
	rl.mu.Unlock()
	assert.Zero(t, tracked)
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Setenv("E2E_MODE", "")
	rl := NewRateLimiter(1, time.Minute)

	r := gin.New()
	created := func(c *gin.Context) { c.Status(http.StatusCreated) }
	r.POST("/transactions", rl.Middleware(), created)
	r.POST("/imports", rl.Middleware(), created)

	post := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		return w
	}

	first := post("/transactions")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "1", first.Header().Get(HeaderRateLimit))
	assert.Equal(t, "0", first.Header().Get(HeaderRateRemaining))

	second := post("/transactions")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "RATE-010001")
	assert.Equal(t, "60", second.Header().Get(HeaderRetryAfter))

	assert.Equal(t, http.StatusCreated, post("/imports").Code, "routes are limited separately")

	rl.Reset()
	assert.Equal(t, http.StatusCreated, post("/transactions").Code)

	t.Run("bypassed in the BDD suite", func(t *testing.T) {
		t.Setenv("E2E_MODE", "true")
		assert.Equal(t, http.StatusCreated, post("/transactions").Code)
		assert.Equal(t, http.StatusCreated, post("/transactions").Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})
}
