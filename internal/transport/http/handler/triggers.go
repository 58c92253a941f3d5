package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finsync/mailer/internal/application/notification"
	"github.com/finsync/mailer/internal/application/verification"
	"github.com/finsync/mailer/internal/domain"
)

// UserFetcher loads user records when a webhook arrives without a body.
type UserFetcher interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// NotificationFetcher loads notification records when a webhook arrives
// without a body.
type NotificationFetcher interface {
	Get(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
}

// TriggersHandler receives the account system's record-created webhooks.
// Both endpoints are fire-and-forget: the caller gets 204 regardless of the
// outcome, and failures surface in the logs only. The path ids are
// authoritative; a posted record body just saves the read back to the store.
type TriggersHandler struct {
	verifications verification.Service
	alerts        notification.Service
	users         UserFetcher
	notifications NotificationFetcher
}

func NewTriggersHandler(
	verifications verification.Service,
	alerts notification.Service,
	users UserFetcher,
	notifications NotificationFetcher,
) *TriggersHandler {
	return &TriggersHandler{
		verifications: verifications,
		alerts:        alerts,
		users:         users,
		notifications: notifications,
	}
}

// UserCreated kicks off email verification for a newly created account.
func (h *TriggersHandler) UserCreated(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var u *domain.User
	if !decodeBody(r, &u) || u == nil {
		fetched, err := h.users.Get(r.Context(), userID)
		if err != nil {
			slog.Warn("user trigger: record not loadable", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		u = fetched
	}

	if err := h.verifications.Issue(r.Context(), userID, u); err != nil {
		slog.Error("user trigger: verification issue failed", "user_id", userID, "err", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotificationCreated dispatches the debit alert for a new notification record.
func (h *TriggersHandler) NotificationCreated(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	notificationID := chi.URLParam(r, "notificationId")

	var n *domain.Notification
	if !decodeBody(r, &n) || n == nil {
		fetched, err := h.notifications.Get(r.Context(), userID, notificationID)
		if err != nil {
			slog.Warn("notification trigger: record not loadable",
				"user_id", userID, "notification_id", notificationID, "err", err)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		n = fetched
	}

	if err := h.alerts.HandleCreated(r.Context(), userID, notificationID, n); err != nil {
		slog.Error("notification trigger: dispatch failed",
			"user_id", userID, "notification_id", notificationID, "err", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes an optional JSON body into v. False means there was no
// usable body and the record should be fetched instead.
func decodeBody(r *http.Request, v interface{}) bool {
	if r.Body == nil {
		return false
	}
	return json.NewDecoder(r.Body).Decode(v) == nil
}
