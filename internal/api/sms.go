package api

import (
	"log/slog"
	"net/http"

	"github.com/edutena/pathways/internal/domain"
)

// SMS handles the inbound-message callback. The gateway posts a form
// with `from` and `text`; the reply is the plain-text response body and
// is additionally dispatched through the outbound gateway when one is
// configured.
func (h *Handler) SMS(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	phone := r.PostFormValue("from")
	text := r.PostFormValue("text")
	if phone == "" {
		http.Error(w, "missing from", http.StatusBadRequest)
		return
	}
	slog.Info("inbound sms", "phone", phone, "len", len(text))

	reply, err := h.engine.Handle(r.Context(), domain.ChannelSMS, phone, text)
	if err != nil {
		// reply already carries the apology text for the user.
		slog.Error("sms transition failed", "phone", phone, "error", err)
	}

	h.dispatch(phone, reply.Text)
	plainText(w, reply.Text)
}
