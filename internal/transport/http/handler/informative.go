package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finsync/mailer/internal/application/informative"
	"github.com/finsync/mailer/internal/pkg/validate"
)

var errInvalidTo = errors.New("'to' must be a string or a list of strings")

// sendInformativeRequest is the operator payload. To accepts either a single
// address or a list, so it stays raw until normalizeTo runs after decoding.
type sendInformativeRequest struct {
	Subject string          `json:"subject"`
	Body    string          `json:"body"`
	To      json.RawMessage `json:"to"`
	From    string          `json:"from"`
	ReplyTo string          `json:"replyTo" validate:"omitempty,email"`
	Name    string          `json:"name"`
	LogoURL string          `json:"logoUrl" validate:"omitempty,url"`
}

// InformativeHandler exposes the operator-driven broadcast endpoint.
type InformativeHandler struct {
	svc informative.Service
}

func NewInformativeHandler(svc informative.Service) *InformativeHandler {
	return &InformativeHandler{svc: svc}
}

func (h *InformativeHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendInformativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	to, err := normalizeTo(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Subject == "" || req.Body == "" || len(to) == 0 {
		writeError(w, http.StatusBadRequest, "missing required fields: subject, body, to")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Send(r.Context(), informative.SendRequest{
		Subject: req.Subject,
		Body:    req.Body,
		To:      to,
		From:    req.From,
		ReplyTo: req.ReplyTo,
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to send: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SendEnvelope{
		OK:               true,
		To:               to,
		Subject:          req.Subject,
		ProviderResponse: res,
	})
}

// MethodNotAllowed answers non-POST hits on the send endpoint with a hint
// instead of an empty 405.
func (h *InformativeHandler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "use POST with a JSON body")
}

// normalizeTo accepts "a@b.com" or ["a@b.com", ...] and returns the list
// form. A JSON null or missing field normalises to nil for the required-field
// check to catch.
func normalizeTo(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil, nil
		}
		return []string{single}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	return nil, errInvalidTo
}
