// Package resend implements the outbound email gateway on the Resend HTTP API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/finsync/mailer/internal/config"
	"github.com/finsync/mailer/internal/domain"
	"github.com/finsync/mailer/internal/infrastructure/secrets"
)

// SendResult carries the provider's acknowledgement of an accepted message.
type SendResult struct {
	ID string `json:"id"`
}

func (r *SendResult) String() string { return r.ID }

// Mailer delivers outbound email. A nil result with a non-nil error is a soft
// failure: the message is not confirmed sent, and trigger-path callers log it
// and move on rather than crash.
type Mailer interface {
	Send(ctx context.Context, msg *domain.OutboundEmail) (*SendResult, error)
}

// Gateway is a lazily initialised Resend client shared across handlers. The
// API key is resolved on the first send (secret binding first when enabled,
// then the RESEND_API_KEY environment fallback) and cached for the process
// lifetime. A failed resolution is not cached, so a later send retries the
// binding.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	resolver   secrets.Resolver
	secretName string
	envKey     string
	useBinding bool

	mu  sync.Mutex
	key string
}

// NewGateway builds the gateway. resolver may be nil when the secret binding
// is disabled or unavailable; the environment fallback still applies.
func NewGateway(cfg *config.Config, resolver secrets.Resolver) *Gateway {
	return &Gateway{
		baseURL:    strings.TrimRight(cfg.ResendBaseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		resolver:   resolver,
		secretName: cfg.ResendSecretName,
		envKey:     cfg.ResendAPIKey,
		useBinding: cfg.UseSecretsManager,
	}
}

// apiKey resolves and caches the provider credential.
func (g *Gateway) apiKey(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.key != "" {
		return g.key, nil
	}
	if g.useBinding && g.resolver != nil {
		key, err := g.resolver.Get(ctx, g.secretName)
		switch {
		case err != nil:
			slog.Warn("secret binding unavailable, falling back to environment", "secret", g.secretName, "err", err)
		case strings.TrimSpace(key) != "":
			g.key = strings.TrimSpace(key)
			return g.key, nil
		}
	}
	if k := strings.TrimSpace(g.envKey); k != "" {
		g.key = k
		return g.key, nil
	}
	return "", fmt.Errorf("no resend api key in secret binding or environment: %w", domain.ErrMissingCredential)
}

// Send posts the message to the provider. Transport errors and non-2xx
// responses come back as ErrDeliveryFailure with a nil result; they are
// logged here so trigger-path callers can simply drop them.
func (g *Gateway) Send(ctx context.Context, msg *domain.OutboundEmail) (*SendResult, error) {
	key, err := g.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		slog.Error("provider call failed", "to", msg.To, "err", err)
		return nil, fmt.Errorf("provider call failed: %w", domain.ErrDeliveryFailure)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode >= 300 {
		slog.Error("provider rejected message", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("provider returned status %d: %w", resp.StatusCode, domain.ErrDeliveryFailure)
	}

	var res SendResult
	if err := json.Unmarshal(body, &res); err != nil {
		slog.Error("provider response unreadable", "err", err)
		return nil, fmt.Errorf("decode provider response: %w", domain.ErrDeliveryFailure)
	}
	return &res, nil
}
