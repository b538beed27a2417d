package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/database"
	"quickdesk/internal/infrastructure/notification"
	"quickdesk/internal/infrastructure/persistence"
	"quickdesk/internal/infrastructure/state"
	httpRouter "quickdesk/internal/interfaces/http"
	"quickdesk/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the QuickDesk HTTP server with the configured snapshot backend.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	snapshotter, err := buildSnapshotter(cfg)
	if err != nil {
		return err
	}

	store := state.NewStore(snapshotter, log)
	if err := store.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load application state: %w", err)
	}

	dispatcher := events.NewInMemoryEventDispatcher(100)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}()

	notifier := notification.NewMockNotifier(log)
	if err := notifier.Register(dispatcher); err != nil {
		return fmt.Errorf("failed to register notifier: %w", err)
	}

	router := httpRouter.NewRouter(store, dispatcher, cfg, log)
	router.SetupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

func buildSnapshotter(cfg *config.Config) (persistence.Snapshotter, error) {
	switch cfg.Snapshot.Backend {
	case "sqlite":
		db, err := database.Connect(&cfg.Snapshot)
		if err != nil {
			return nil, err
		}
		return persistence.NewSQLiteStore(db)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return persistence.NewRedisStore(client, cfg.Snapshot.RedisPrefix), nil
	case "memory":
		return persistence.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend: %s", cfg.Snapshot.Backend)
	}
}
