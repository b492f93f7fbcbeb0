package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/config"
	"github.com/pageza/munchai/backend/internal/api"
	"github.com/pageza/munchai/backend/internal/database"
	"github.com/pageza/munchai/backend/internal/logger"
	"github.com/pageza/munchai/backend/internal/middleware"
	"github.com/pageza/munchai/backend/internal/router"
	"github.com/pageza/munchai/backend/internal/server"
	"github.com/pageza/munchai/backend/internal/service"
)

func main() {
	env := config.GetEnvironment()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Must("info", env).Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.Must(cfg.LogLevel, env)
	defer log.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize services
	recipeService := service.NewRecipeService(db.DB)
	llmService, err := service.NewLLMService(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, log)
	if err != nil {
		log.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	chatService := service.NewChatService(recipeService, llmService, log)

	opts := router.Options{
		ChatHandler:        api.NewChatHandler(chatService, log),
		HealthHandler:      api.NewHealthHandler(db, log),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
	}

	if cfg.RateLimitEnabled() {
		redisClient, err := database.NewRedisClient(context.Background(), cfg.RedisURL, log)
		if err != nil {
			log.Warn("Rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			opts.RateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window:    time.Minute,
				Limit:     cfg.RateLimitPerMinute,
				KeyPrefix: "munchai:chat",
			}, log)
		}
	}

	r, err := router.SetupRouter(opts, log)
	if err != nil {
		log.Fatal("Failed to set up router", zap.Error(err))
	}
	srv := server.New(cfg, r, log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Error("Server error", zap.Error(err))
			return
		}
	case sig := <-quit:
		log.Info("Received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
		return
	}
	log.Info("Server stopped")
}
