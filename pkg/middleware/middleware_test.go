package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"farmbook/pkg/logger"
	"farmbook/pkg/metrics"
	"farmbook/pkg/response"
)

const secret = "kiem-tra"

func serve(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuth(t *testing.T) {
	e := echo.New()
	e.Use(BearerAuth(secret, true, "/api/v1/auth/", "/health"))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, Subject(c)) }
	e.GET("/api/v1/crop-cycles", ok)
	e.GET("/api/v1/auth/whoami", ok)
	e.GET("/health", ok)

	assert.Equal(t, http.StatusUnauthorized, serve(e, "/api/v1/crop-cycles", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/api/v1/crop-cycles", "rac").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/api/v1/auth/whoami", "").Code)

	tok, err := IssueToken(secret, "nong-dan-01", time.Hour)
	require.NoError(t, err)
	rec := serve(e, "/api/v1/crop-cycles", tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nong-dan-01", rec.Body.String())

	other, err := IssueToken("khac", "x", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/api/v1/crop-cycles", other).Code)

	expired, err := IssueToken(secret, "x", -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/api/v1/crop-cycles", expired).Code)
}

func TestBearerAuthDisabled(t *testing.T) {
	e := echo.New()
	e.Use(BearerAuth(secret, false))
	e.GET("/api/v1/seasons", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	assert.Equal(t, http.StatusOK, serve(e, "/api/v1/seasons", "").Code)
}

func TestRateLimitMemoryStore(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(NewMemoryStore(3)))
	e.GET("/r", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(e, "/r", "").Code, "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(e, "/r", "").Code)
}

func TestRedisStoreFailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	s := NewRedisStore(rdb, 1, logger.Nop())
	for i := 0; i < 3; i++ {
		ok, err := s.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRequestLoggerSeesHandlerError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	m := metrics.New()

	e := echo.New()
	e.HTTPErrorHandler = response.ErrorHandler(logger.Nop())
	e.Use(Metrics(m), RequestLogger(log))
	e.GET("/boom", func(echo.Context) error { return errors.New("disk full") })

	rec := serve(e, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
	assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var recorded bool
	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/boom" && labels["status"] == "500" {
				recorded = metric.GetCounter().GetValue() == 1
			}
		}
	}
	assert.True(t, recorded, "500 on /boom not counted")
}
