// Pathways - Conversational Career Assessment Server
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

	"github.com/edutena/pathways/internal/api"
	"github.com/edutena/pathways/internal/assistant"
	"github.com/edutena/pathways/internal/catalog"
	"github.com/edutena/pathways/internal/config"
	"github.com/edutena/pathways/internal/console"
	"github.com/edutena/pathways/internal/delivery"
	"github.com/edutena/pathways/internal/engine"
	"github.com/edutena/pathways/internal/middleware"
	"github.com/edutena/pathways/internal/prompts"
	"github.com/edutena/pathways/internal/store"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// AI counsellor is optional. Without a key the engine answers
	// paused questions with a canned fallback instead.
	var asker assistant.Asker
	if cfg.Assistant.APIKey != "" {
		client, err := assistant.NewOpenAIClient(assistant.Config{
			BaseURL: cfg.Assistant.BaseURL,
			APIKey:  cfg.Assistant.APIKey,
			Model:   cfg.Assistant.Model,
			Timeout: cfg.Assistant.Timeout,
		})
		if err != nil {
			slog.Warn("Failed to initialize assistant, AI answers will be disabled", "error", err)
		} else {
			asker = client
			slog.Info("Assistant initialized", "model", cfg.Assistant.Model)
		}
	} else {
		slog.Info("Assistant disabled (ASSISTANT_API_KEY not set)")
	}

	// SMS delivery is optional too; the webhook still answers inline
	// through the HTTP response body.
	var sender delivery.Sender
	if cfg.SMS.APIKey != "" {
		client, err := delivery.NewAfricasTalking(delivery.Config{
			BaseURL:  cfg.SMS.BaseURL,
			Username: cfg.SMS.Username,
			APIKey:   cfg.SMS.APIKey,
			SenderID: cfg.SMS.SenderID,
		})
		if err != nil {
			slog.Warn("Failed to initialize SMS gateway, outbound delivery disabled", "error", err)
		} else {
			sender = client
			slog.Info("SMS gateway initialized", "username", cfg.SMS.Username)
		}
	} else {
		slog.Info("SMS delivery disabled (SMS_API_KEY not set)")
	}

	// Initialize services.
	eng := engine.New(repo, catalog.New(), prompts.New(), engine.Options{
		Assistant:  asker,
		AskTimeout: cfg.Assistant.Timeout,
	})
	cm := console.NewConnManager()

	// Initialize handlers.
	apiHandler := api.NewHandler(eng, repo, sender)
	wsHandler := console.NewWebSocketHandler(eng, cm, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))

	// Gateway webhooks and health.
	apiHandler.RegisterRoutes(r)

	// WebSocket endpoint.
	r.Get("/ws/console", wsHandler.ServeHTTP)

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
