package console

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/edutena/pathways/internal/domain"
	"github.com/edutena/pathways/internal/engine"
)

// WebSocketHandler serves interactive console sessions over WebSocket.
type WebSocketHandler struct {
	engine        *engine.Engine
	cm            *ConnManager
	allowedOrigin string
	isDev         bool
}

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(eng *engine.Engine, cm *ConnManager, allowedOrigin string, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{
		engine:        eng,
		cm:            cm,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// inFrame is a message from the console client.
type inFrame struct {
	Text string `json:"text"`
}

// outFrame is a message sent back to the console client.
type outFrame struct {
	Reply string `json:"reply"`
	Done  bool   `json:"done,omitempty"`
	Error string `json:"error,omitempty"`
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
//
// Each connection gets its own console identity (or reuses the one given
// in the "id" query parameter), so a developer can resume a session by
// reconnecting with the same ID.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	consoleID := r.URL.Query().Get("id")
	if consoleID == "" {
		consoleID = newConsoleID()
	}
	slog.Info("console connection request", "console_id", consoleID, "ip", r.RemoteAddr)

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("failed to accept WebSocket", "error", err, "console_id", consoleID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "console ended"); closeErr != nil {
			slog.Debug("failed to close websocket", "error", closeErr, "console_id", consoleID)
		}
	}()

	h.cm.Register(consoleID, ws)
	defer h.cm.Unregister(consoleID, ws)

	ctx := r.Context()

	// Open the conversation the same way a first inbound message would.
	reply, err := h.engine.Handle(ctx, domain.ChannelConsole, consoleID, "")
	if err != nil {
		slog.Error("console greeting failed", "error", err, "console_id", consoleID)
	}
	if err := h.writeFrame(ctx, ws, outFrame{Reply: reply.Text, Done: reply.Done}); err != nil {
		return
	}

	h.readLoop(ctx, ws, consoleID)
	slog.Info("console session ended", "console_id", consoleID)
}

func (h *WebSocketHandler) readLoop(ctx context.Context, ws *websocket.Conn, consoleID string) {
	for {
		_, message, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("WebSocket closed by client", "console_id", consoleID)
			} else {
				slog.Warn("WebSocket read error", "error", err, "console_id", consoleID)
			}
			return
		}

		var frame inFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			// Fallback to raw text for plain clients like websocat.
			frame.Text = string(message)
		}

		reply, err := h.engine.Handle(ctx, domain.ChannelConsole, consoleID, frame.Text)
		out := outFrame{Reply: reply.Text, Done: reply.Done}
		if err != nil {
			slog.Error("console message failed", "error", err, "console_id", consoleID)
			out.Error = "internal_error"
		}
		if err := h.writeFrame(ctx, ws, out); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "*" {
		return true
	}
	if origin == h.allowedOrigin {
		return true
	}
	slog.Warn("WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigin)
	return false
}

func (h *WebSocketHandler) writeFrame(ctx context.Context, ws *websocket.Conn, frame outFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("WebSocket write error", "error", err)
		return err
	}
	return nil
}

func newConsoleID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "console-fallback"
	}
	return "console-" + hex.EncodeToString(buf)
}
