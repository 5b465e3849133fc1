package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brainiacs-dev/brainiacs/internal/config"
	"github.com/brainiacs-dev/brainiacs/internal/logger"
	"github.com/brainiacs-dev/brainiacs/internal/router"
	"github.com/brainiacs-dev/brainiacs/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		slog.Error("setup failed", "err", err)
		os.Exit(1)
	}
	defer deps.Cleanup(context.Background())

	server := &http.Server{
		Addr:         cfg.Public.Addr,
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.RequestTimeout,
		WriteTimeout: cfg.Public.RequestTimeout,
	}

	go func() {
		slog.Info("server started", "addr", cfg.Public.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}
