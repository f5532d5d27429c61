package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schedboard-service/internal/app/config"
	"schedboard-service/internal/pkg/constvars"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequestIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	m := newTestMiddlewares()

	var seenRequestID interface{}
	var seenClientFlag interface{}
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
		seenClientFlag = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/grid/week", nil))

	requestID, ok := seenRequestID.(string)
	require.True(t, ok)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, false, seenClientFlag)
	assert.Equal(t, requestID, rec.Header().Get(constvars.HeaderXRequestID))
}

func TestRequestIDMiddleware_EchoesClientID(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "client-supplied-id", r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY))
		assert.Equal(t, true, r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY))
	}))

	req := httptest.NewRequest(http.MethodGet, "/grid/week", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(constvars.HeaderXRequestID))
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/drafts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "false")
}

func TestRateLimiter_BlocksAfterBudget(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, time.Minute)

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		req.RemoteAddr = "10.0.0.1:51234"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
	// Once blocked, the client stays blocked even if tokens refill.
	assert.Equal(t, http.StatusTooManyRequests, statuses[3])
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, time.Minute)

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	first.RemoteAddr = "10.0.0.1:51234"
	second := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	second.RemoteAddr = "10.0.0.2:51234"

	recFirst := httptest.NewRecorder()
	handler.ServeHTTP(recFirst, first)
	recSecond := httptest.NewRecorder()
	handler.ServeHTTP(recSecond, second)

	assert.Equal(t, http.StatusOK, recFirst.Code)
	assert.Equal(t, http.StatusOK, recSecond.Code)
}
