package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/edutena/pathways/internal/domain"
)

// USSD handles the USSD callback. The gateway posts the whole input
// chain as a *-joined string; only the newest token is this request's
// input. Replies must be prefixed CON while the menu expects input and
// END when the conversation is over.
func (h *Handler) USSD(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	phone := r.PostFormValue("phoneNumber")
	if phone == "" {
		http.Error(w, "missing phoneNumber", http.StatusBadRequest)
		return
	}
	input := lastToken(r.PostFormValue("text"))
	slog.Info("inbound ussd", "phone", phone, "session_id", r.PostFormValue("sessionId"))

	reply, err := h.engine.Handle(r.Context(), domain.ChannelUSSD, phone, input)
	if err != nil {
		slog.Error("ussd transition failed", "phone", phone, "error", err)
		plainText(w, "END "+reply.Text)
		return
	}

	prefix := "CON "
	if reply.Done {
		prefix = "END "
	}
	plainText(w, prefix+reply.Text)
}

// lastToken extracts the newest input from the *-joined chain. An
// initial dial arrives as an empty string.
func lastToken(chain string) string {
	if chain == "" {
		return ""
	}
	parts := strings.Split(chain, "*")
	return strings.TrimSpace(parts[len(parts)-1])
}
