// Package notification turns stored notification records into outbound
// debit-alert emails, with an optional SMS copy for opted-in users.
//
// Dispatch is best-effort end to end: a malformed record, a missing user or
// a provider failure is logged and swallowed so the account system's write
// path never observes an error from the alert fan-out.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finsync/mailer/internal/domain"
	"github.com/finsync/mailer/internal/email"
	"github.com/finsync/mailer/internal/infrastructure/resend"
	"github.com/finsync/mailer/internal/infrastructure/sns"
	"github.com/finsync/mailer/internal/pkg/coalesce"
	"github.com/finsync/mailer/internal/pkg/format"
)

// assetTTL is how long presigned logo links stay fetchable. Email clients
// may load images days after delivery, so it is the presigner's maximum.
const assetTTL = 7 * 24 * time.Hour

// UserStore is the slice of the user repository the dispatcher needs.
type UserStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// AssetResolver turns s3:// logo references into fetchable HTTPS URLs.
type AssetResolver interface {
	PresignURI(ctx context.Context, uri string, ttl time.Duration) (string, error)
}

// Service dispatches alerts for newly created notification records.
type Service interface {
	HandleCreated(ctx context.Context, userID, notificationID string, n *domain.Notification) error
}

// ServiceDeps wires the dispatcher's collaborators. SMS and Assets are
// optional; a nil value disables the SMS copy and s3:// logo resolution.
type ServiceDeps struct {
	Users    UserStore
	Mailer   resend.Mailer
	SMS      sns.SMSSender
	Assets   AssetResolver
	Renderer *email.Renderer
	From     string // alerts sender
	// BrandLogo is the configured brand fallback, used when neither the
	// notification nor the user carries a logo of its own.
	BrandLogo string
}

type service struct {
	users     UserStore
	mailer    resend.Mailer
	sms       sns.SMSSender
	assets    AssetResolver
	renderer  *email.Renderer
	from      string
	brandLogo string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:     deps.Users,
		mailer:    deps.Mailer,
		sms:       deps.SMS,
		assets:    deps.Assets,
		renderer:  deps.Renderer,
		from:      deps.From,
		brandLogo: deps.BrandLogo,
	}
}

// HandleCreated maps a notification record onto the debit-alert template and
// sends it to the owning user. Every lookup has a fallback chain and every
// failure short of a render bug resolves to a logged no-op, so the returned
// error is nil on all data-quality problems.
func (s *service) HandleCreated(ctx context.Context, userID, notificationID string, n *domain.Notification) error {
	if n == nil || n.Type == "" {
		slog.Error("alert dropped: record has no type", "user_id", userID, "notification_id", notificationID)
		return nil
	}
	if userID == "" {
		slog.Error("alert dropped: missing user id", "notification_id", notificationID)
		return nil
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		slog.Error("alert dropped: user lookup failed", "user_id", userID, "err", err)
		return nil
	}
	to := u.ContactEmail()
	if to == "" {
		slog.Warn("alert dropped: no recipient address", "user_id", userID)
		return nil
	}

	data := n.Data
	if data == nil {
		data = map[string]any{}
	}

	subject := coalesce.String(n.Title, "Debit Alert!")
	vars := email.DebitAlertVars{
		FirstName:     coalesce.String(u.FirstName, u.Name, "Customer"),
		Amount:        format.Currency(data["amount"]),
		Balance:       format.Currency(coalesce.Value(data["balance"], u.AccountBalance)),
		AccountNumber: format.Display(coalesce.String(u.AccountNumber, u.AccountNo)),
		DateTime:      format.HumanTime(s.eventTime(n, data)),
		Narration:     format.Display(coalesce.Value(data["description"], n.Body)),
		Reference:     format.Display(coalesce.Value(data["transactionId"], data["reference"], n.ID, notificationID)),
		BankName:      coalesce.String(u.BankName, "Finsync"),
		LogoURL:       s.resolveLogo(ctx, data, n, u),
	}

	html, err := s.renderer.DebitAlert(vars)
	if err != nil {
		return err
	}
	_, err = s.mailer.Send(ctx, &domain.OutboundEmail{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		Tags:    []domain.Tag{{Name: "category", Value: "debit-alert"}},
	})
	if err != nil {
		slog.Error("alert email not sent", "user_id", userID, "notification_id", notificationID, "err", err)
		return nil
	}

	if s.sms != nil && u.SMSAlerts && u.Phone != "" {
		text := fmt.Sprintf("Debit: %s on %s. Ref %s. Bal %s.", vars.Amount, vars.DateTime, vars.Reference, vars.Balance)
		if err := s.sms.SendSMS(ctx, u.Phone, text); err != nil {
			slog.Warn("sms copy not sent", "user_id", userID, "err", err)
		}
	}
	return nil
}

// eventTime picks the transaction timestamp: record creation time first,
// then the payload's dateTime, then the dispatch time.
func (s *service) eventTime(n *domain.Notification, data map[string]any) string {
	return coalesce.String(n.CreatedAt, asString(data["dateTime"]), time.Now().UTC().Format(time.RFC3339))
}

// resolveLogo walks the logo chain (payload, record, user, brand) and
// presigns s3:// references. A candidate that cannot be presigned falls
// through to the next one.
func (s *service) resolveLogo(ctx context.Context, data map[string]any, n *domain.Notification, u *domain.User) string {
	for _, c := range []string{asString(data["logoUrl"]), n.LogoURL, u.LogoURL, s.brandLogo} {
		if c == "" {
			continue
		}
		if strings.HasPrefix(c, "s3://") {
			if s.assets == nil {
				continue
			}
			url, err := s.assets.PresignURI(ctx, c, assetTTL)
			if err != nil {
				slog.Warn("logo presign failed", "uri", c, "err", err)
				continue
			}
			return url
		}
		return c
	}
	return ""
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
