// Package email builds and sends the contact form notification emails
// over SMTP.
package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"ahkii-burger-backend/config"
	"ahkii-burger-backend/internal/domain"
)

// dialTimeout bounds how long one send may block on the SMTP server.
const dialTimeout = 10 * time.Second

// ContactEmailData holds the submitted form fields used in both emails.
type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// operatorTemplate renders the notification sent to the restaurant.
const operatorTemplate = `<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.PhoneDisplay}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.MessageHTML}}</p>`

// acknowledgmentTemplate renders the confirmation sent back to the visitor.
const acknowledgmentTemplate = `<h2>Thank You for Contacting Us!</h2>
<p>Hi {{.Name}},</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<p><strong>Your Message Summary:</strong></p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.MessageHTML}}</p>
<p>Best regards,<br>The Ahkii Burger Team</p>`

var (
	operatorTmpl       = template.Must(template.New("operator").Parse(operatorTemplate))
	acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(acknowledgmentTemplate))
)

type templateData struct {
	Name         string
	Email        string
	PhoneDisplay string
	Subject      string
	MessageHTML  template.HTML
}

// nl2br escapes the message text and converts line breaks to <br> so the
// submitted formatting survives HTML rendering.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func (d ContactEmailData) templateData() templateData {
	phone := d.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return templateData{
		Name:         d.Name,
		Email:        d.Email,
		PhoneDisplay: phone,
		Subject:      d.Subject,
		MessageHTML:  nl2br(d.Message),
	}
}

// OperatorNotification builds the email delivered to the operator address.
// The submitter's address goes into Reply-To so the operator can answer
// directly.
func OperatorNotification(from, operatorAddr string, data ContactEmailData) (*domain.OutboundEmail, error) {
	var body bytes.Buffer
	if err := operatorTmpl.Execute(&body, data.templateData()); err != nil {
		return nil, fmt.Errorf("failed to render operator notification: %w", err)
	}
	return &domain.OutboundEmail{
		From:     from,
		To:       operatorAddr,
		ReplyTo:  data.Email,
		Subject:  fmt.Sprintf("New Contact Form Submission: %s", data.Subject),
		HTMLBody: body.String(),
	}, nil
}

// Acknowledgment builds the confirmation email sent to the submitter.
func Acknowledgment(from string, data ContactEmailData) (*domain.OutboundEmail, error) {
	var body bytes.Buffer
	if err := acknowledgmentTmpl.Execute(&body, data.templateData()); err != nil {
		return nil, fmt.Errorf("failed to render acknowledgment: %w", err)
	}
	return &domain.OutboundEmail{
		From:     from,
		To:       data.Email,
		Subject:  "We Received Your Message - Ahkii Burger",
		HTMLBody: body.String(),
	}, nil
}

// SMTPSender sends emails through an authenticated SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send delivers one message. The connection is bounded by dialTimeout so a
// hung relay cannot stall submissions indefinitely.
func (s *SMTPSender) Send(ctx context.Context, msg *domain.OutboundEmail) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(dialTimeout))
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMIME(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return client.Quit()
}

// buildMIME constructs the raw message with HTML content headers.
func buildMIME(msg *domain.OutboundEmail) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	return []byte(b.String())
}
