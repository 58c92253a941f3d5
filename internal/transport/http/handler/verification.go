package handler

import (
	"net/http"

	"github.com/finsync/mailer/internal/application/verification"
	"github.com/finsync/mailer/internal/email"
)

// VerificationHandler serves the click endpoint behind the links mailed to
// new users. It renders a human-facing HTML page on success because the
// request comes from a browser, not an API client.
type VerificationHandler struct {
	svc      verification.Service
	renderer *email.Renderer
}

func NewVerificationHandler(svc verification.Service, renderer *email.Renderer) *VerificationHandler {
	return &VerificationHandler{svc: svc, renderer: renderer}
}

func (h *VerificationHandler) Click(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := h.svc.VerifyToken(r.Context(), token); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	page, err := h.renderer.VerificationSuccessPage()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render confirmation page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
