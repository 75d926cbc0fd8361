package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-health-dashboard/internal/config"
	"pet-health-dashboard/internal/platform/logger"
	"pet-health-dashboard/internal/router"
)

// @title Pet Health Dashboard API
// @version 1.0
// @description Métricas diarias (peso, comida, agua), estado y alertas de las mascotas del hogar.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("failed to load configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := router.OpenBackend(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open backend", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := closeBackend(); err != nil {
			log.Warn("backend close", map[string]any{"error": err.Error()})
		}
	}()

	r := router.NewRouter(router.Options{
		Backend:     &backend,
		Alerts:      router.GeneratorConfig(cfg),
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "storage": cfg.Storage.Backend, "resources": cfg.Resources.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}
