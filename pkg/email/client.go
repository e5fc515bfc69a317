// Package email provides an SMTP client for delivering email notifications.
package email

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

// Client sends email over a single SMTP relay.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewClient creates a new SMTP Client.
//
// timeout bounds the dial-and-send round trip; a slow relay results in an
// error rather than a hung send.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

// Send delivers an HTML message and returns the generated message id.
//
// SMTP has no provider-assigned message id, so the Message-ID header set on
// the outgoing mail is returned instead.
func (c *Client) Send(to, subject, htmlBody string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), c.smtpHost)

	message := mail.NewMessage()
	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetHeader("Message-ID", messageID)
	message.SetBody("text/html", htmlBody)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)
	if c.timeout > 0 {
		dialer.Timeout = c.timeout
	}

	if err := dialer.DialAndSend(message); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	return messageID, nil
}
