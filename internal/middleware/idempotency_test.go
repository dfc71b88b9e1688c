package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func setupIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, redisMock := redismock.NewClientMock()
	handlerCalled := false

	r := gin.New()
	r.POST("/nominas",
		func(c *gin.Context) {
			c.Set("user_id_validated", "user-1")
			c.Next()
		},
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			handlerCalled = true
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

	return r, redisMock, &handlerCalled
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	r, _, handlerCalled := setupIdempotencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/nominas", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, *handlerCalled)
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	r, redisMock, handlerCalled := setupIdempotencyRouter(t)

	cacheKey := "idemp:/nominas:user-1:abc-123"
	redisMock.ExpectGet(cacheKey).SetVal(`{"id":"cached"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/nominas", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cached"`)
	assert.False(t, *handlerCalled)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateRejected(t *testing.T) {
	r, redisMock, handlerCalled := setupIdempotencyRouter(t)

	cacheKey := "idemp:/nominas:user-1:abc-123"
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/nominas", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.False(t, *handlerCalled)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestAcquiresLock(t *testing.T) {
	r, redisMock, handlerCalled := setupIdempotencyRouter(t)

	cacheKey := "idemp:/nominas:user-1:abc-123"
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/nominas", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, *handlerCalled)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
