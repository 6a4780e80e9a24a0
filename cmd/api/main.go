package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/audit"
	"github.com/BruksfildServices01/traineme-api/internal/config"
	dbpkg "github.com/BruksfildServices01/traineme-api/internal/db"
	"github.com/BruksfildServices01/traineme-api/internal/events"
	"github.com/BruksfildServices01/traineme-api/internal/infra/memory"
	"github.com/BruksfildServices01/traineme-api/internal/media"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	"github.com/BruksfildServices01/traineme-api/internal/routes"
	"github.com/BruksfildServices01/traineme-api/internal/timezone"
	"github.com/BruksfildServices01/traineme-api/internal/validators"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "traineme-api"))

	cfg := config.Load()
	validators.Register()
	gin.SetMode(cfg.GinMode)

	repos, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	sinks := []audit.Sink{audit.New(repos.Audit)}

	var publisher *events.NatsPublisher
	if cfg.NatsURL != "" {
		publisher, err = events.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			slog.Warn("nats unavailable, booking events disabled", "error", err)
		} else {
			sinks = append(sinks, publisher)
		}
	}

	dispatcher := audit.NewDispatcher(sinks...)

	var storage media.Storage
	if s := media.NewS3Storage(cfg); s != nil {
		storage = s
	}

	rdb := config.NewRedisClient(cfg)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Repos:   repos,
		Audit:   dispatcher,
		Redis:   rdb,
		Storage: storage,
		Clock:   timezone.NewClock(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", cfg.Addr(), "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	dispatcher.Close()
	if publisher != nil {
		publisher.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}

func openStore(cfg *config.Config) (routes.Repositories, error) {
	if cfg.StoreDriver == "memory" {
		slog.Warn("using in-memory store, data is lost on restart")
		return routes.MemoryRepositories(memory.New()), nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return routes.Repositories{}, err
	}
	return routes.GormRepositories(db, cfg.StoreTimeout), nil
}
