package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finsync/mailer/internal/domain"
	"github.com/finsync/mailer/internal/infrastructure/resend"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// SendEnvelope acknowledges an accepted informative send. ProviderResponse
// carries the gateway's message id so operators can chase delivery issues
// with the provider directly.
type SendEnvelope struct {
	OK               bool               `json:"ok"`
	To               []string           `json:"to,omitempty"`
	Subject          string             `json:"subject,omitempty"`
	ProviderResponse *resend.SendResult `json:"providerResponse,omitempty"`
	Error            string             `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// statusForError maps domain sentinels onto HTTP statuses. Anything
// unclassified is a server fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrExpired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
