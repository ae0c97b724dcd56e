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

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/logging"
	"github.com/spacesedan/sentimeter/internal/pipeline"
	"github.com/spacesedan/sentimeter/internal/web"
)

func main() {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.Load(os.Getenv("SENTIMETER_CONFIG"))
	if err != nil {
		slog.Error("[Main] Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(os.Stdout, cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	p := pipeline.New(cfg, pipeline.DefaultOptions(cfg))
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           web.NewServer(p, cfg.Output.ChartPath).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[Main] Web server listening", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Web server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("Shutting down web server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
	}
}
