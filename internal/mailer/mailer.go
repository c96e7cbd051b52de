// Package mailer sends the password-reset e-mail. Delivery is fire and
// forget; the app never blocks a request on SMTP.
package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	// SendPasswordReset mails the reset link to the address.
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer delivers through a real SMTP server.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "TeacherTrek password reset")
	msg.SetBody("text/plain", fmt.Sprintf(
		"To reset your password, visit the link below:\n\n%s\n\n"+
			"The link expires in 30 minutes. If you did not request a reset, simply ignore this email.\n",
		resetURL,
	))
	return m.dialer.DialAndSend(msg)
}

// LogMailer stands in when SMTP is not configured (dev, tests): the link is
// written to the process log instead of being delivered.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(to, resetURL string) error {
	log.Printf("[mailer] password reset for %s: %s", to, resetURL)
	return nil
}
