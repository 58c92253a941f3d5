// Package informative implements the operator-driven broadcast email flow
// behind POST /send_informative.
package informative

import (
	"context"

	"github.com/finsync/mailer/internal/domain"
	"github.com/finsync/mailer/internal/email"
	"github.com/finsync/mailer/internal/infrastructure/resend"
	"github.com/finsync/mailer/internal/pkg/coalesce"
)

// SendRequest is the validated operator input. To is already normalised to a
// list and the required fields are checked at the transport layer; Body is
// trusted HTML from the operator.
type SendRequest struct {
	Subject string
	Body    string
	To      []string
	From    string
	ReplyTo string
	Name    string
	LogoURL string
}

type Service interface {
	Send(ctx context.Context, req SendRequest) (*resend.SendResult, error)
}

// ServiceDeps wires the sender. BrandLogo is the configured logo; when both
// it and the request logo are empty the template falls back to the wordmark.
type ServiceDeps struct {
	Mailer      resend.Mailer
	Renderer    *email.Renderer
	DefaultFrom string
	BrandLogo   string
}

type service struct {
	mailer      resend.Mailer
	renderer    *email.Renderer
	defaultFrom string
	brandLogo   string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		mailer:      deps.Mailer,
		renderer:    deps.Renderer,
		defaultFrom: deps.DefaultFrom,
		brandLogo:   deps.BrandLogo,
	}
}

// Send renders the branded wrapper around the operator's HTML fragment and
// hands it to the gateway. Unlike the trigger paths, delivery failures
// propagate so the caller can report them.
func (s *service) Send(ctx context.Context, req SendRequest) (*resend.SendResult, error) {
	html, err := s.renderer.Informative(req.Subject, req.Name, req.Body, coalesce.String(req.LogoURL, s.brandLogo))
	if err != nil {
		return nil, err
	}
	return s.mailer.Send(ctx, &domain.OutboundEmail{
		From:    coalesce.String(req.From, s.defaultFrom),
		To:      req.To,
		Subject: req.Subject,
		HTML:    html,
		ReplyTo: req.ReplyTo,
	})
}
