// internal/app/system/mailer/mailer.go
package mailer

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Mailer sends mail over SMTP, dialing per message. Delivery is synchronous;
// the contact handler treats a send failure as non-fatal since the enquiry is
// already stored.
type Mailer struct {
	host     string
	port     int
	user     string
	pass     string
	from     string
	fromName string
	log      *zap.Logger
}

// Config carries the SMTP settings for New.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

func New(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		pass:     cfg.Pass,
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

// FromName returns the configured sender display name.
func (m *Mailer) FromName() string {
	return m.fromName
}

// Email is one outbound message. HTMLBody is optional; when set the message
// goes out as multipart/alternative with the text version first.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Send delivers the email. Auth is skipped when no user/pass is configured,
// which matches local dev against MailHog on port 1025.
func (m *Mailer) Send(email Email) error {
	from := m.from
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", email.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", email.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		writeMultipartBody(&msg, email)
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		msg.WriteString(email.TextBody)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.user != "" && m.pass != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{email.To}, msg.Bytes()); err != nil {
		m.log.Error("failed to send email",
			zap.String("to", email.To),
			zap.String("subject", email.Subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.log.Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))

	return nil
}

func writeMultipartBody(msg *bytes.Buffer, email Email) {
	boundary := randomBoundary()
	fmt.Fprintf(msg, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(email.TextBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(email.HTMLBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(msg, "--%s--\r\n", boundary)
}

func randomBoundary() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	return "----=_Part_" + hex.EncodeToString(b)
}
