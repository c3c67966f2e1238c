package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"boardy/internal/config"
	"boardy/internal/handler"
	"boardy/internal/middleware"
	"boardy/internal/notify"
	"boardy/internal/repository"
)

type Server struct {
	Engine *gin.Engine
	Hub    *notify.Hub
	Redis  *redis.Client
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid gin mode %q", cfg.GinMode)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})

	// Notification fan-out
	hub := notify.NewHub(32)
	notifiers := notify.Multi{hub}
	var rc *redis.Client
	if cfg.RedisAddr != "" {
		rc = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rc.Ping(ctx).Err(); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		notifiers = append(notifiers, notify.NewRedisPublisher(rc, cfg.RedisChannel))
		log.WithField("channel", cfg.RedisChannel).Info("Publishing notices to redis")
	}

	// Session state
	store, err := repository.NewSeededStore(notifiers)
	if err != nil {
		return nil, fmt.Errorf("failed to seed board: %w", err)
	}

	// Setup Gin
	gin.SetMode(cfg.GinMode)
	handler.RegisterValidators()
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log.StandardLogger()))

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(store)
	taskRepo := repository.NewTaskRepository(store)
	labelRepo := repository.NewLabelRepository(store)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardRepo)
	columnHandler := handler.NewColumnHandler(boardRepo)
	taskHandler := handler.NewTaskHandler(taskRepo)
	labelHandler := handler.NewLabelHandler(labelRepo)
	eventHandler := handler.NewEventHandler(hub, 30*time.Second)

	// Board routes
	r.GET("/board", boardHandler.Get)
	r.POST("/drag-end", boardHandler.DragEnd)
	r.GET("/columns", columnHandler.GetAll)

	// Task routes
	r.POST("/columns/:id/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/tasks/:id/labels/:label_id", taskHandler.AddLabel)

	// Label routes
	r.POST("/labels", labelHandler.Create)
	r.GET("/labels", labelHandler.GetAll)
	r.GET("/labels/:id", labelHandler.GetByID)

	r.GET("/events", eventHandler.Stream)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return &Server{
		Engine: r,
		Hub:    hub,
		Redis:  rc,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.WithField("port", s.Config.ServerPort).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %s", err)
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.WithError(err).Warn("Failed to close redis client")
		}
	}

	log.Info("Server exited properly")
}
