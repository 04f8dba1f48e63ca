// Command local serves the bot over plain HTTP for the Bot Framework
// Emulator, with in-memory state and no connector authentication.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"smartassist-bot/handler"
	"smartassist-bot/internal/bot"
	"smartassist-bot/internal/config"
	"smartassist-bot/internal/connector"
	"smartassist-bot/internal/middleware"
	"smartassist-bot/internal/repository"
	"smartassist-bot/pkg/logger"
)

func main() {
	cfg := config.Load()

	var (
		log *logger.Logger
		err error
	)
	if cfg.Development() {
		log, err = logger.NewDevelopment()
	} else {
		log, err = logger.New(cfg.LogLevel)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	connectorClient := connector.NewClient(connector.WithTimeout(cfg.ConnectorTimeout))
	dispatcher, err := bot.NewDispatcher(repository.NewMemory(), connectorClient, bot.SmartAssist{}, log)
	if err != nil {
		log.Fatal("failed to create dispatcher", zap.Error(err))
	}
	h, err := handler.NewHandler(dispatcher, log)
	if err != nil {
		log.Fatal("failed to create handler", zap.Error(err))
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/messages", h.Messages)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.ConnectorTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
