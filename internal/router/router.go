package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/internal/api"
	"github.com/pageza/munchai/backend/internal/middleware"
)

// Options configures the application routes
type Options struct {
	ChatHandler   *api.ChatHandler
	HealthHandler *api.HealthHandler
	// CORSAllowedOrigins disables CORS handling when empty
	CORSAllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. When empty the client IP,
	// and with it the rate limit key, is the connection's remote address.
	TrustedProxies []string
	// RateLimiter guards POST /chat when set
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(opts Options, log *zap.Logger) (*gin.Engine, error) {
	router := gin.New()

	// gin trusts every proxy unless told otherwise
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))

	router.GET("/", api.Home)
	router.GET("/health", opts.HealthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var chatMiddleware []gin.HandlerFunc
	if opts.RateLimiter != nil {
		chatMiddleware = append(chatMiddleware, opts.RateLimiter.RateLimitMiddleware())
	}
	opts.ChatHandler.RegisterRoutes(router, chatMiddleware...)

	return router, nil
}
