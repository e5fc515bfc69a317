package sender

import "errors"

// ErrUnknownTemplate is returned when a referenced template name is not in
// the channel's registry. Callers record it as a failed notification, it is
// never a hard fault.
var ErrUnknownTemplate = errors.New("unknown template")

// EmailTemplate pairs a subject line with an HTML body. Both may contain
// {{key}} placeholders.
type EmailTemplate struct {
	Subject string
	Body    string
}

// emailTemplates is the fixed registry for the email channel.
var emailTemplates = map[string]EmailTemplate{
	"welcome": {
		Subject: "Welcome to Our Service, {{name}}!",
		Body: `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Welcome to Our Service, {{name}}!</h2>
  <p>Thank you for registering with us. We're excited to have you on board.</p>
  <p>Your account has been successfully created with username: <strong>{{username}}</strong></p>
  <p>If you have any questions, feel free to contact our support team.</p>
  <br>
  <p>Best regards,<br>The Team</p>
</div>`,
	},
	"orderUpdate": {
		Subject: "Update on Your Order #{{orderId}}",
		Body: `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Order Update</h2>
  <p>Hello {{name}},</p>
  <p>Your order <strong>#{{orderId}}</strong> has been updated to: <strong>{{status}}</strong></p>
  <p>Estimated delivery: {{deliveryDate}}</p>
  <p>If you have any questions about your order, please contact our support team.</p>
  <br>
  <p>Best regards,<br>The Team</p>
</div>`,
	},
}

// smsTemplates is the fixed registry for the sms channel.
var smsTemplates = map[string]string{
	"welcome":      "Welcome {{name}}! Your account has been created successfully. Username: {{username}}",
	"orderUpdate":  "Hello {{name}}, your order #{{orderId}} status is now: {{status}}. Estimated delivery: {{deliveryDate}}",
	"verification": "Your verification code is: {{code}}. It will expire in 10 minutes.",
}
