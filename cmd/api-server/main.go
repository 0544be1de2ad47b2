package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mediashelf/database"
	"mediashelf/internal/cache"
	"mediashelf/internal/config"
	"mediashelf/internal/covers"
	"mediashelf/internal/httpapi/handler"
	"mediashelf/internal/httpapi/middleware"
	"mediashelf/internal/httpapi/repository"
	"mediashelf/internal/httpapi/service"
	"mediashelf/internal/suggest"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	unread, err := cache.NewUnreadCounter(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		logger.Warn("redis unavailable, unread counts fall back to the database", "error", err)
	}
	defer unread.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	notifier := service.NewNotifier(notificationRepo, unread, logger)
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	mediaSvc := service.NewMediaService(mediaRepo, collectionRepo, notifier, logger)
	collectionSvc := service.NewCollectionService(collectionRepo, mediaRepo)
	friendshipSvc := service.NewFriendshipService(friendshipRepo, userRepo, notifier)
	notificationSvc := service.NewNotificationService(notificationRepo, unread)
	userSvc := service.NewUserService(userRepo, collectionRepo)
	reviewSvc := service.NewReviewService(reviewRepo, mediaRepo)
	commentSvc := service.NewCommentService(commentRepo, mediaRepo)
	suggestSvc := suggest.NewService(
		suggest.NewClient(cfg.HuggingFaceToken, cfg.HuggingFaceModel),
		mediaRepo,
		covers.NewFetcher(cfg.RawgAPIKey),
	)

	// Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	handler.NewAuthHandler(authSvc, cfg.AccessTokenTTL).RegisterRoutes(api.Group("/auth"))

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authSvc))

	mediaGroup := authed.Group("/media")
	handler.NewMediaHandler(mediaSvc).RegisterRoutes(mediaGroup)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(mediaGroup)
	handler.NewCommentHandler(commentSvc).RegisterRoutes(mediaGroup)

	handler.NewUserHandler(userSvc).RegisterRoutes(authed.Group("/users"))
	handler.NewCollectionHandler(collectionSvc).RegisterRoutes(authed.Group("/collection"))
	handler.NewFriendsHandler(friendshipSvc).RegisterRoutes(authed.Group("/friends"))
	handler.NewNotificationHandler(notificationSvc).RegisterRoutes(authed.Group("/notifications"))
	handler.NewSuggestHandler(suggestSvc).RegisterRoutes(authed.Group(""))

	adminGroup := authed.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin())
	handler.NewAdminHandler(mediaSvc, userSvc).RegisterRoutes(adminGroup)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
