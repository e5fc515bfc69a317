package sender

import (
	"fmt"
	"sort"

	"github.com/aliskhannn/notify-hub/internal/template"
)

// smsTransport is the raw SMS send primitive.
type smsTransport interface {
	Send(to, body string) (string, error)
}

// SMS sends text message notifications, literal or templated.
type SMS struct {
	transport smsTransport
	templates map[string]string
}

// NewSMS creates an SMS sender backed by the given transport.
func NewSMS(transport smsTransport) *SMS {
	return &SMS{transport: transport, templates: smsTemplates}
}

// Send expands placeholders in body and delivers the message. The subject
// argument is ignored, SMS has no subject line.
func (s *SMS) Send(to, _, body string, vars map[string]string) (string, error) {
	body = template.Expand(body, vars)

	id, err := s.transport.Send(to, body)
	if err != nil {
		return "", fmt.Errorf("send sms: %w", err)
	}

	return id, nil
}

// SendTemplated resolves templateName in the registry and sends it.
func (s *SMS) SendTemplated(to, templateName string, vars map[string]string) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, templateName)
	}

	return s.Send(to, "", tmpl, vars)
}

// TemplateNames returns the registry's template names sorted alphabetically.
func (s *SMS) TemplateNames() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
