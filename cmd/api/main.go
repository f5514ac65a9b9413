package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikhilbhutani/piccytts/internal/api"
	"github.com/nikhilbhutani/piccytts/internal/config"
	"github.com/nikhilbhutani/piccytts/internal/logger"
	"github.com/nikhilbhutani/piccytts/internal/tts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.New(
		logger.WithLevel(cfg.Log.Level),
		logger.WithFormat(cfg.Log.Format),
		logger.WithLogFile(cfg.Log.File),
	))

	provider, err := tts.NewProvider(cfg.TTS)
	if err != nil {
		slog.Error("failed to create tts provider", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(provider)
	handler := router.Setup()

	// WriteTimeout leaves room for the upstream timeout plus writing the audio.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Timeout() + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting TTS API server", "addr", cfg.Addr(), "backend", provider.Name(), "upstream_timeout", cfg.Timeout())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout()+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
