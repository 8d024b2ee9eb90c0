// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"go-lists-api/config"
	"go-lists-api/db"
	"go-lists-api/handler"
	"go-lists-api/logger"
	"go-lists-api/repository"
	"go-lists-api/router"
	"go-lists-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// App is the fully wired HTTP application.
type App struct {
	DB     *sql.DB
	Router http.Handler
	Tokens *service.TokenService
}

// New wires repositories, services and handlers. cache may be nil, in
// which case list reads always hit the database.
func New(cfg config.Config, database *sql.DB, cache service.ICacheClient) *App {
	userRepo := repository.NewUserRepository(database)
	listRepo := repository.NewListRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	bookmarkRepo := repository.NewBookmarkRepository(database)

	tokens := service.NewTokenService([]byte(cfg.JWT.SecretKey), cfg.JWT.ExpiresIn)
	authService := service.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	userService := service.NewUserService(userRepo)
	listService := service.NewListService(database, listRepo, commentRepo, userRepo, cache, cfg.Redis.TTL)
	commentService := service.NewCommentService(database, listRepo, commentRepo, userRepo)
	bookmarkService := service.NewBookmarkService(userRepo, listRepo, bookmarkRepo)

	r := router.NewRouter(router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Users:     handler.NewUserHandler(authService, userService),
		Lists:     handler.NewListHandler(listService),
		Comments:  handler.NewCommentHandler(commentService),
		Bookmarks: handler.NewBookmarkHandler(bookmarkService),
		Require:   handler.NewAuthMiddleware(tokens, cfg.JWT.Header),
	}, router.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		TokenHeader: cfg.JWT.Header,
		StaticDir:   cfg.Static.Dir,
	})

	return &App{DB: database, Router: r, Tokens: tokens}
}

func Run() {
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(cfg.Database.MigrationsPath, db.ConnString(cfg)); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	var cache service.ICacheClient
	if cfg.Redis.Enabled {
		rdb, err := db.ConnectRedis(context.Background(), cfg)
		if err != nil {
			logger.Log.WithError(err).Warn("Continuing without list cache")
		} else {
			defer rdb.Close()
			cache = rdb
		}
	}

	application := New(cfg, database, cache)

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
