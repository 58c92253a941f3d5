package resend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finsync/mailer/internal/config"
	"github.com/finsync/mailer/internal/domain"
)

type mockResolver struct{ mock.Mock }

func (m *mockResolver) Get(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func testMessage() *domain.OutboundEmail {
	return &domain.OutboundEmail{
		From:    "Finsync <info@finsyncdigitalservice.com>",
		To:      []string{"aisha@example.com"},
		Subject: "hello",
		HTML:    "<p>hi</p>",
	}
}

func TestSend_Success(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":"re_123"}`))
	}))
	defer srv.Close()

	g := NewGateway(&config.Config{ResendBaseURL: srv.URL, ResendAPIKey: "k-env"}, nil)
	res, err := g.Send(context.Background(), testMessage())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "re_123", res.ID)
	assert.Equal(t, "Bearer k-env", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "hello", payload["subject"])
	assert.Equal(t, []any{"aisha@example.com"}, payload["to"])
	for _, absent := range []string{"text", "cc", "bcc", "reply_to", "tags"} {
		_, ok := payload[absent]
		assert.False(t, ok, "unset optional field %q must be omitted", absent)
	}
}

func TestSend_OptionalFieldsIncluded(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":"re_456"}`))
	}))
	defer srv.Close()

	msg := testMessage()
	msg.Text = "hi"
	msg.CC = []string{"cc@example.com"}
	msg.BCC = []string{"bcc@example.com"}
	msg.ReplyTo = "support@finsyncdigitalservice.com"
	msg.Tags = []domain.Tag{{Name: "category", Value: "debit-alert"}}

	g := NewGateway(&config.Config{ResendBaseURL: srv.URL, ResendAPIKey: "k"}, nil)
	_, err := g.Send(context.Background(), msg)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "hi", payload["text"])
	assert.Equal(t, []any{"cc@example.com"}, payload["cc"])
	assert.Equal(t, "support@finsyncdigitalservice.com", payload["reply_to"])
	assert.Equal(t, []any{map[string]any{"name": "category", "value": "debit-alert"}}, payload["tags"])
}

func TestSend_ProviderError_SoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	g := NewGateway(&config.Config{ResendBaseURL: srv.URL, ResendAPIKey: "k"}, nil)
	res, err := g.Send(context.Background(), testMessage())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
}

func TestSend_TransportError_SoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	g := NewGateway(&config.Config{ResendBaseURL: srv.URL, ResendAPIKey: "k"}, nil)
	res, err := g.Send(context.Background(), testMessage())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
}

func TestSend_NoCredential(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	g := NewGateway(&config.Config{ResendBaseURL: srv.URL}, nil)
	res, err := g.Send(context.Background(), testMessage())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.Zero(t, hits.Load(), "no provider call without a credential")
}

func TestSend_SecretBindingPreferred_AndCached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"re_789"}`))
	}))
	defer srv.Close()

	resolver := new(mockResolver)
	resolver.On("Get", mock.Anything, "RESEND_API_KEY").Return("k-secret", nil).Once()

	g := NewGateway(&config.Config{
		ResendBaseURL:     srv.URL,
		ResendSecretName:  "RESEND_API_KEY",
		ResendAPIKey:      "k-env",
		UseSecretsManager: true,
	}, resolver)

	for i := 0; i < 2; i++ {
		_, err := g.Send(context.Background(), testMessage())
		require.NoError(t, err)
	}
	assert.Equal(t, "Bearer k-secret", gotAuth)
	resolver.AssertNumberOfCalls(t, "Get", 1)
}

func TestSend_BindingFailureFallsBackToEnv(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"re_1"}`))
	}))
	defer srv.Close()

	resolver := new(mockResolver)
	resolver.On("Get", mock.Anything, "RESEND_API_KEY").Return("", errors.New("binding down")).Once()

	g := NewGateway(&config.Config{
		ResendBaseURL:     srv.URL,
		ResendSecretName:  "RESEND_API_KEY",
		ResendAPIKey:      "k-env",
		UseSecretsManager: true,
	}, resolver)

	for i := 0; i < 2; i++ {
		_, err := g.Send(context.Background(), testMessage())
		require.NoError(t, err)
	}
	assert.Equal(t, "Bearer k-env", gotAuth)
	// Env key is cached after the first resolution, so the binding is not re-probed.
	resolver.AssertNumberOfCalls(t, "Get", 1)
}

func TestSend_FailedResolutionRetriedNextSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"re_2"}`))
	}))
	defer srv.Close()

	resolver := new(mockResolver)
	resolver.On("Get", mock.Anything, "RESEND_API_KEY").Return("", errors.New("binding down")).Once()
	resolver.On("Get", mock.Anything, "RESEND_API_KEY").Return("k-late", nil).Once()

	g := NewGateway(&config.Config{
		ResendBaseURL:     srv.URL,
		ResendSecretName:  "RESEND_API_KEY",
		UseSecretsManager: true,
	}, resolver)

	_, err := g.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, domain.ErrMissingCredential)

	res, err := g.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "re_2", res.ID)
	resolver.AssertNumberOfCalls(t, "Get", 2)
}
