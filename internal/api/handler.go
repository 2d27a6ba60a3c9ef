// Package api provides the HTTP webhook handlers for the gateway
// callbacks and operational endpoints.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edutena/pathways/internal/delivery"
	"github.com/edutena/pathways/internal/engine"
	"github.com/edutena/pathways/internal/store"
)

const dispatchTimeout = 20 * time.Second

// Handler serves the inbound webhooks.
type Handler struct {
	engine *engine.Engine
	repo   store.Repository
	sender delivery.Sender
}

// NewHandler creates a handler. sender may be nil when no outbound
// gateway is configured; replies then travel only in the HTTP response.
func NewHandler(eng *engine.Engine, repo store.Repository, sender delivery.Sender) *Handler {
	return &Handler{engine: eng, repo: repo, sender: sender}
}

// RegisterRoutes mounts the webhook and health routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sms", h.SMS)
	r.Post("/ussd", h.USSD)
	r.Get("/healthz", h.Health)
}

// Health reports store connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// dispatch forwards a reply through the outbound gateway without
// blocking the webhook response. Failures are logged and dropped:
// delivery is fire-and-forget from the engine's perspective.
func (h *Handler) dispatch(phone, text string) {
	if h.sender == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if err := h.sender.Send(ctx, phone, text); err != nil {
			slog.Error("outbound delivery failed", "phone", phone, "error", err)
		}
	}()
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// plainText writes a text/plain reply body.
func plainText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Warn("failed to write reply body", "error", err)
	}
}
