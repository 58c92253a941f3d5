// Package email renders the HTML bodies and pages this service sends.
// Rendering is pure: callers resolve and format every field first.
package email

import (
	"fmt"
	"html/template"
	"strings"
)

// Renderer executes the message templates with the brand settings fixed at
// startup.
type Renderer struct {
	year string
}

func NewRenderer(year string) *Renderer {
	return &Renderer{year: year}
}

type informativeVars struct {
	Subject string
	Name    string
	Body    template.HTML
	LogoURL string
	Year    string
}

// Informative renders the operator-driven email. bodyHTML is trusted
// operator input and is inserted unescaped; an empty name greets "there";
// an empty logoURL falls back to the wordmark placeholder.
func (r *Renderer) Informative(subject, name, bodyHTML, logoURL string) (string, error) {
	if name == "" {
		name = "there"
	}
	return execute(informativeTmpl, informativeVars{
		Subject: subject,
		Name:    name,
		Body:    template.HTML(bodyHTML),
		LogoURL: logoURL,
		Year:    r.year,
	})
}

// DebitAlertVars carries the display-ready alert fields. Every value is
// already formatted (currency, timestamps) or defaulted by the dispatcher.
type DebitAlertVars struct {
	FirstName     string
	Amount        string
	Balance       string
	AccountNumber string
	DateTime      string
	Narration     string
	Reference     string
	BankName      string
	LogoURL       string

	Year string // filled by the renderer
}

// DebitAlert renders the transaction alert email.
func (r *Renderer) DebitAlert(v DebitAlertVars) (string, error) {
	v.Year = r.year
	return execute(debitAlertTmpl, v)
}

// VerificationEmail renders the account verification email around the
// single-use link.
func (r *Renderer) VerificationEmail(verifyURL string) (string, error) {
	return execute(verificationTmpl, struct{ URL string }{URL: verifyURL})
}

// VerificationSuccessPage renders the standalone confirmation page served
// after a successful click.
func (r *Renderer) VerificationSuccessPage() (string, error) {
	return execute(verificationSuccessTmpl, nil)
}

func execute(t *template.Template, data any) (string, error) {
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
