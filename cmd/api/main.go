package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/todo-backend/internal/auth"
	"github.com/yourusername/todo-backend/internal/config"
	"github.com/yourusername/todo-backend/internal/database"
	"github.com/yourusername/todo-backend/internal/handlers"
	"github.com/yourusername/todo-backend/internal/logger"
	"github.com/yourusername/todo-backend/internal/middleware"
	redisclient "github.com/yourusername/todo-backend/internal/redis"
	"github.com/yourusername/todo-backend/internal/storage"
)

func main() {
	log := logger.New("api")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	var users storage.UserStore
	var todos storage.TodoStore

	switch cfg.Database.Backend {
	case "memory":
		log.Warn("Using in-memory storage, data will not survive a restart")
		users = storage.NewMemoryUserStorage()
		todos = storage.NewMemoryTodoStorage()
	default:
		pool, err := database.Connect(ctx, database.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		})
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := storage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal("Failed to ensure schema: %v", err)
		}

		users = storage.NewPostgresUserStorage(pool)
		todos = storage.NewPostgresTodoStorage(pool)
	}

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)

	var limiter *middleware.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redisclient.NewClient(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		limiter = middleware.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	} else {
		log.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	authH := handlers.NewAuthHandler(users, tokens)
	todoH := handlers.NewTodoHandler(todos)
	authMW := middleware.NewAuthMiddleware(tokens, users)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.Routes(authH, todoH, authMW, limiter),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("Listening on :%s (%s)", cfg.Server.Port, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
