package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-volink-backend/config"
	"go-volink-backend/pkg/logger"
)

// EmailService delivers notification emails over SMTP. Delivery is
// fire-and-forget: callers log failures and move on. When SMTP is not
// configured the service logs the message instead of sending it, so
// local environments work without a mail relay.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NotificationEmailData holds the data for notification emails.
type NotificationEmailData struct {
	RecipientName string
	Subject       string
	Message       string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured returns true when SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

const notificationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2e7d32; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #2e7d32; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Volink</h1>
        </div>
        <div class="content">
            <p>Hi {{.RecipientName}},</p>
            <div class="message-box">{{.Message}}</div>
        </div>
        <div class="footer">
            <p>You are receiving this because of activity on your Volink account.</p>
        </div>
    </div>
</body>
</html>`

// SendNotification emails a notification message to the given address.
// Without SMTP configured it logs the message instead, mirroring what
// would have been sent.
func (s *EmailService) SendNotification(toEmail string, data NotificationEmailData) error {
	if !s.IsConfigured() {
		logger.Log.Info("simulated email (SMTP not configured)",
			"to", toEmail, "subject", data.Subject, "message", data.Message)
		return nil
	}

	tmpl, err := template.New("notification").Parse(notificationEmailTemplate)
	if err != nil {
		return fmt.Errorf("parse email template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template: %w", err)
	}

	msg := []byte("From: " + s.fromEmail + "\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + data.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + body.String())

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
