package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/internal/api"
	"github.com/pageza/munchai/backend/internal/middleware"
	"github.com/pageza/munchai/backend/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okChecker struct{}

func (okChecker) HealthCheck(context.Context) error { return nil }

func setupRouter(t *testing.T, chat *mocks.MockChatService, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	return setupRouterWithProxies(t, chat, limiter, nil)
}

func setupRouterWithProxies(t *testing.T, chat *mocks.MockChatService, limiter *middleware.RateLimiter, proxies []string) *gin.Engine {
	t.Helper()
	log := zap.NewNop()
	router, err := SetupRouter(Options{
		ChatHandler:        api.NewChatHandler(chat, log),
		HealthHandler:      api.NewHealthHandler(okChecker{}, log),
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		TrustedProxies:     proxies,
		RateLimiter:        limiter,
	}, log)
	require.NoError(t, err)
	return router
}

func newRateLimiter(t *testing.T, limit int) *middleware.RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     limit,
		KeyPrefix: "munchai:chat",
	}, zap.NewNop())
}

func postChatFrom(router http.Handler, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"pasta"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.RemoteAddr = "10.0.0.1:40000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	chat := new(mocks.MockChatService)
	chat.On("Chat", mock.Anything, "pasta").Return("Carbonara", nil)
	router := setupRouter(t, chat, nil)

	home := serve(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "MunchAI")
	assert.NotEmpty(t, home.Header().Get(middleware.RequestIDHeader))

	health := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, health.Body.String())

	resp := serve(router, http.MethodPost, "/chat", `{"message":"pasta"}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true,"response":"Carbonara"}`, resp.Body.String())

	metrics := serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "munchai_chat_requests_total")

	missing := serve(router, http.MethodGet, "/recipes", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestSetupRouter_RecoversFromPanics(t *testing.T) {
	chat := new(mocks.MockChatService)
	chat.On("Chat", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Return("", nil)
	router := setupRouter(t, chat, nil)

	w := serve(router, http.MethodPost, "/chat", `{"message":"pasta"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"`+middleware.InternalServerError+`"}`, w.Body.String())
}

func TestSetupRouter_RateLimitsChat(t *testing.T) {
	limiter := newRateLimiter(t, 2)

	chat := new(mocks.MockChatService)
	chat.On("Chat", mock.Anything, "pasta").Return("Carbonara", nil)
	router := setupRouter(t, chat, limiter)

	for i := 0; i < 2; i++ {
		w := serve(router, http.MethodPost, "/chat", `{"message":"pasta"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(router, http.MethodPost, "/chat", `{"message":"pasta"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	chat.AssertNumberOfCalls(t, "Chat", 2)

	// other routes are not limited
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health", "").Code)
}

func TestSetupRouter_IgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	chat := new(mocks.MockChatService)
	chat.On("Chat", mock.Anything, "pasta").Return("Carbonara", nil)
	router := setupRouter(t, chat, newRateLimiter(t, 1))

	require.Equal(t, http.StatusOK, postChatFrom(router, "203.0.113.9:40000", "1.2.3.0").Code)
	for i := 1; i < 5; i++ {
		w := postChatFrom(router, "203.0.113.9:40000", "1.2.3."+strconv.Itoa(i))
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "X-Forwarded-For 1.2.3.%d", i)
	}
	chat.AssertNumberOfCalls(t, "Chat", 1)
}

func TestSetupRouter_TrustedProxyForwardsClientIP(t *testing.T) {
	chat := new(mocks.MockChatService)
	chat.On("Chat", mock.Anything, "pasta").Return("Carbonara", nil)
	router := setupRouterWithProxies(t, chat, newRateLimiter(t, 1), []string{"10.0.0.0/8"})

	// distinct clients behind the proxy get their own windows
	assert.Equal(t, http.StatusOK, postChatFrom(router, "10.1.1.1:40000", "198.51.100.1").Code)
	assert.Equal(t, http.StatusOK, postChatFrom(router, "10.1.1.1:40000", "198.51.100.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, postChatFrom(router, "10.1.1.1:40000", "198.51.100.1").Code)
}

func TestSetupRouter_InvalidTrustedProxy(t *testing.T) {
	log := zap.NewNop()
	_, err := SetupRouter(Options{
		ChatHandler:    api.NewChatHandler(new(mocks.MockChatService), log),
		HealthHandler:  api.NewHealthHandler(okChecker{}, log),
		TrustedProxies: []string{"not-an-ip"},
	}, log)
	assert.Error(t, err)
}
