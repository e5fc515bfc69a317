package dto

// SendEmailRequest is the body of POST /api/notify/email.
//
// Either message or template must be present; scheduledAt is RFC 3339 and
// an absent value means "send now".
type SendEmailRequest struct {
	Recipient   string            `json:"recipient" validate:"required,email"`
	Subject     string            `json:"subject"`
	Message     string            `json:"message" validate:"required_without=Template"`
	ScheduledAt string            `json:"scheduledAt"`
	Template    string            `json:"template"`
	Variables   map[string]string `json:"variables"`
}

// SendSMSRequest is the body of POST /api/notify/sms.
type SendSMSRequest struct {
	Recipient   string            `json:"recipient" validate:"required"`
	Message     string            `json:"message" validate:"required_without=Template"`
	ScheduledAt string            `json:"scheduledAt"`
	Template    string            `json:"template"`
	Variables   map[string]string `json:"variables"`
}

// SendBatchRequest is the body of POST /api/notify/batch. Batch sends are
// always immediate.
type SendBatchRequest struct {
	Type       string            `json:"type" validate:"required,oneof=email sms"`
	Recipients []string          `json:"recipients" validate:"required,min=1,dive,required"`
	Subject    string            `json:"subject"`
	Message    string            `json:"message" validate:"required_without=Template"`
	Template   string            `json:"template"`
	Variables  map[string]string `json:"variables"`
}
