// Package verification manages the email verification token lifecycle:
// issuing single-use links when accounts are created and consuming them when
// the links are clicked.
package verification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finsync/mailer/internal/domain"
	"github.com/finsync/mailer/internal/email"
	"github.com/finsync/mailer/internal/infrastructure/resend"
	pkgtoken "github.com/finsync/mailer/internal/pkg/token"
)

// TokenTTL is the verification link lifetime.
const TokenTTL = time.Hour

// clickPath is the path segment of the click endpoint, appended to link
// bases that do not already address the handler.
const clickPath = "handle_verification_click"

// UserStore is the slice of the user repository this service needs.
type UserStore interface {
	GetByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	SetVerification(ctx context.Context, userID, token, expiresAt string) error
	ConsumeVerification(ctx context.Context, userID string) error
}

// Service drives the token state machine: unverified -> pending -> verified.
type Service interface {
	Issue(ctx context.Context, userID string, u *domain.User) error
	VerifyToken(ctx context.Context, token string) error
}

// ServiceDeps wires the service's collaborators.
type ServiceDeps struct {
	Users    UserStore
	Mailer   resend.Mailer
	Renderer *email.Renderer
	BaseURL  string // click-handler base the link is built from
	From     string // onboarding sender
}

type service struct {
	users    UserStore
	mailer   resend.Mailer
	renderer *email.Renderer
	baseURL  string
	from     string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:    deps.Users,
		mailer:   deps.Mailer,
		renderer: deps.Renderer,
		baseURL:  deps.BaseURL,
		from:     deps.From,
	}
}

// Issue stores a fresh token for a newly created user and emails the
// verification link. Missing and already-verified records are skipped.
// Reissuing overwrites the previous pair, which invalidates any outstanding
// link. Only the store write can fail the call; everything after it is soft
// and logged, matching the fire-and-forget trigger contract.
func (s *service) Issue(ctx context.Context, userID string, u *domain.User) error {
	if userID == "" || u == nil {
		slog.Info("verification skipped: no user record", "user_id", userID)
		return nil
	}
	if u.IsVerified {
		slog.Info("verification skipped: already verified", "user_id", userID)
		return nil
	}

	tok, err := pkgtoken.New()
	if err != nil {
		return err
	}
	expires := time.Now().UTC().Add(TokenTTL).Format(time.RFC3339)
	if err := s.users.SetVerification(ctx, userID, tok, expires); err != nil {
		return fmt.Errorf("store verification token: %w", err)
	}

	to := u.ContactEmail()
	if to == "" {
		slog.Warn("verification email skipped: no address on record", "user_id", userID)
		return nil
	}

	html, err := s.renderer.VerificationEmail(verificationURL(s.baseURL, tok))
	if err != nil {
		return err
	}
	if _, err := s.mailer.Send(ctx, &domain.OutboundEmail{
		From:    s.from,
		To:      []string{to},
		Subject: "Welcome! Please Verify Your Email",
		HTML:    html,
	}); err != nil {
		slog.Error("verification email not sent", "user_id", userID, "err", err)
	}
	return nil
}

// VerifyToken validates a clicked link and consumes it: the user flips to
// verified and the token pair is removed. The lookup-then-consume sequence
// is not atomic, so two concurrent clicks on the same token can both pass
// the checks; the final state is identical either way, which is why the
// window is accepted instead of guarded with a conditional write.
func (s *service) VerifyToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("empty token: %w", domain.ErrNotFound)
	}
	u, err := s.users.GetByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if u.VerificationExpires == "" {
		return fmt.Errorf("token has no expiry on record: %w", domain.ErrNotFound)
	}
	expires, err := time.Parse(time.RFC3339, u.VerificationExpires)
	if err != nil {
		return fmt.Errorf("parse stored expiry %q: %w", u.VerificationExpires, err)
	}
	if time.Now().UTC().After(expires) {
		return fmt.Errorf("verification link expired: %w", domain.ErrExpired)
	}
	if err := s.users.ConsumeVerification(ctx, u.UserID); err != nil {
		return fmt.Errorf("consume verification token: %w", err)
	}
	return nil
}

// verificationURL joins the configured base with the token. Bases that
// already address the click handler (an explicit /handle_verification_click
// suffix, or a Cloud Run host containing "run.app") only get the query
// string; anything else gets the handler path appended first.
func verificationURL(base, token string) string {
	b := strings.TrimRight(base, "/")
	lower := strings.ToLower(b)
	if strings.HasSuffix(lower, "/"+clickPath) || strings.Contains(lower, "run.app") {
		return b + "?token=" + token
	}
	return b + "/" + clickPath + "?token=" + token
}
