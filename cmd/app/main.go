package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/vibe-gaming/clan-api/internal/api/http"
	"github.com/vibe-gaming/clan-api/internal/config"
	"github.com/vibe-gaming/clan-api/internal/db"
	"github.com/vibe-gaming/clan-api/internal/metrics"
	"github.com/vibe-gaming/clan-api/internal/repository"
	"github.com/vibe-gaming/clan-api/internal/server"
	"github.com/vibe-gaming/clan-api/internal/service"
	"github.com/vibe-gaming/clan-api/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

//go:generate swag init --dir ../.. -g internal/api/http/internal/v1/handler.go --output ../../docs --outputTypes go

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting clan api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	store, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("db connect problem", zap.Error(err), zap.String("driver", cfg.Database.Driver))
		os.Exit(1)
	}
	defer func() {
		err = store.Close()
		if err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("db connection done", zap.String("driver", store.DriverName()))

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(store); err != nil {
			logger.Error("db migration failed", zap.Error(err))
			return
		}
		logger.Info("db migrations applied")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterDBStats(registry, store.DB)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(store)
	services := service.NewServices(service.Deps{
		Config: cfg,
		Repos:  repos,
	})
	handlers := apiHttp.NewHandlers(services, store, registry)

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(appCtx, cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("addr", srv.Addr()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit
	stopApp()

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
