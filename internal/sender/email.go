// Package sender implements the per-channel notification senders. Each
// sender owns a read-only template registry and wraps the channel's raw
// transport, expanding {{key}} placeholders before handing the content off.
package sender

import (
	"fmt"
	"sort"

	"github.com/aliskhannn/notify-hub/internal/template"
)

// emailTransport is the raw email send primitive.
type emailTransport interface {
	Send(to, subject, htmlBody string) (string, error)
}

// Email sends email notifications, literal or templated.
type Email struct {
	transport emailTransport
	templates map[string]EmailTemplate
}

// NewEmail creates an email sender backed by the given transport.
func NewEmail(transport emailTransport) *Email {
	return &Email{transport: transport, templates: emailTemplates}
}

// Send expands placeholders in subject and body and delivers the message.
// It returns the message id on success.
func (e *Email) Send(to, subject, body string, vars map[string]string) (string, error) {
	subject = template.Expand(subject, vars)
	body = template.Expand(body, vars)

	id, err := e.transport.Send(to, subject, body)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	return id, nil
}

// SendTemplated resolves templateName in the registry and sends it.
func (e *Email) SendTemplated(to, templateName string, vars map[string]string) (string, error) {
	tmpl, ok := e.templates[templateName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, templateName)
	}

	return e.Send(to, tmpl.Subject, tmpl.Body, vars)
}

// TemplateNames returns the registry's template names sorted alphabetically.
func (e *Email) TemplateNames() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
