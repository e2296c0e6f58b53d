// Package mailer sends the contact-form notification mail. Delivery is
// strictly best effort: a failure is logged and reported back as
// emailSent=false, never as a request failure.
package mailer

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/afarenziya/smartdeals/config"
	"github.com/afarenziya/smartdeals/internal/domain"
)

// Mailer delivers contact notifications. Send reports whether the mail
// actually went out.
type Mailer interface {
	SendContactNotification(contact *domain.Contact) bool
}

// SmtpMailer delivers through a configured SMTP relay.
type SmtpMailer struct {
	cfg config.SmtpConfig
}

var _ Mailer = (*SmtpMailer)(nil)

func NewSmtpMailer(cfg config.SmtpConfig) *SmtpMailer {
	return &SmtpMailer{cfg: cfg}
}

func (m *SmtpMailer) SendContactNotification(contact *domain.Contact) bool {
	if !m.cfg.Enabled || m.cfg.Host == "" {
		zap.S().Debug("smtp disabled, skipping contact notification")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.NotifyTo)
	msg.SetHeader("Reply-To", contact.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission: %s", contact.Subject))
	msg.SetBody("text/plain", contactText(contact))
	msg.AddAlternative("text/html", contactHTML(contact))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		zap.L().Error("failed to send contact notification",
			zap.String("contact_id", contact.ID), zap.Error(err))
		return false
	}
	zap.L().Info("contact notification sent", zap.String("contact_id", contact.ID))
	return true
}

func contactText(c *domain.Contact) string {
	return fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s
Subject: %s

Message:
%s

---
Sent from Smart Deals AI contact form at %s
`, c.Name, c.Email, c.Subject, c.Message, time.Now().Format("2006-01-02 15:04:05"))
}

func contactHTML(c *domain.Contact) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8b5cf6; border-bottom: 2px solid #8b5cf6; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Subject:</strong> %s</p>
  </div>
  <div style="background-color: #f1f5f9; padding: 20px; border-radius: 8px;">
    <h3 style="margin-top: 0; color: #475569;">Message:</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">%s</p>
  </div>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #64748b; font-size: 14px;">
    <p>This message was sent from Smart Deals AI contact form at %s.</p>
    <p>Reply directly to this email to respond to %s.</p>
  </div>
</div>`, c.Name, c.Email, c.Subject, c.Message, time.Now().Format("2006-01-02 15:04:05"), c.Name)
}

// Disabled is a no-op mailer used when SMTP is not configured and in
// tests.
type Disabled struct{}

func (Disabled) SendContactNotification(*domain.Contact) bool { return false }
