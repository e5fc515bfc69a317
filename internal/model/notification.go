package model

import (
	"time"

	"github.com/google/uuid"
)

// Channel is a delivery medium with its own address format and transport.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Valid reports whether c is one of the supported channels.
func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelSMS
}

// Status is the lifecycle state of a notification.
//
// A notification starts pending and advances to exactly one of the
// terminal states, sent or failed. It never reverts.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Notification represents a single message to be delivered over a channel.
type Notification struct {
	ID          uuid.UUID         `json:"id"`                 // unique identifier, assigned at creation
	Channel     Channel           `json:"channel"`            // delivery medium, "email" or "sms"
	Recipient   string            `json:"recipient"`          // channel-specific address
	Subject     string            `json:"subject,omitempty"`  // email only
	Message     string            `json:"message"`            // literal body text, may contain {{placeholders}}
	Template    string            `json:"template,omitempty"` // name in the channel's template registry
	Variables   map[string]string `json:"variables,omitempty"`
	Status      Status            `json:"status"`
	ScheduledAt time.Time         `json:"scheduledAt"`      // when the message becomes due; creation time means "now"
	SentAt      *time.Time        `json:"sentAt,omitempty"` // set only on transition to sent
	Error       string            `json:"error,omitempty"`  // set only on transition to failed
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Terminal reports whether the notification has reached a final state.
func (n Notification) Terminal() bool {
	return n.Status == StatusSent || n.Status == StatusFailed
}

// Due reports whether the notification is eligible for a send attempt.
func (n Notification) Due(now time.Time) bool {
	return n.Status == StatusPending && !n.ScheduledAt.After(now)
}
