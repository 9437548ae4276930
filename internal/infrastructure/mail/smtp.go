package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"artmarket.backend/internal/config"
	"artmarket.backend/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// SMTPMailer sends email through a plain SMTP relay
type SMTPMailer struct {
	cfg       config.MailConfig
	templates *template.Template
	send      func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates an SMTP-backed mailer
func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	tpls, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}
	return &SMTPMailer{
		cfg:       cfg,
		templates: tpls,
		send:      smtp.SendMail,
	}, nil
}

// SendInquiryConfirmation sends the verification link to the submitter
func (m *SMTPMailer) SendInquiryConfirmation(ctx context.Context, inquiry *entities.Inquiry, verificationURL string) error {
	body, err := m.render("inquiry_confirmation.html", map[string]interface{}{
		"Inquiry":         inquiry,
		"VerificationURL": verificationURL,
		"FromName":        m.cfg.FromName,
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"Hello %s,\r\n\r\nPlease confirm your inquiry by opening the link below:\r\n\r\n%s\r\n\r\nThe link is valid for 24 hours.\r\n",
		inquiry.FullName(), verificationURL,
	)

	return m.deliver(inquiry.Email, "Please confirm your inquiry", body, text)
}

// SendInquiryNotification sends a gallery its share of a verified inquiry
func (m *SMTPMailer) SendInquiryNotification(ctx context.Context, inquiry *entities.Inquiry, gallery *entities.Gallery, artworks []*entities.Artwork) error {
	to := gallery.ContactEmail()
	if to == "" {
		return fmt.Errorf("gallery %d has no contact email", gallery.ID)
	}

	body, err := m.render("inquiry_notification.html", map[string]interface{}{
		"Inquiry":  inquiry,
		"Gallery":  gallery,
		"Artworks": artworks,
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"New inquiry from %s <%s> about %d artwork(s) from %s.\r\n",
		inquiry.FullName(), inquiry.Email, len(artworks), gallery.Name,
	)

	subject := fmt.Sprintf("New inquiry about works from %s", gallery.Name)
	return m.deliver(to, subject, body, text)
}

func (m *SMTPMailer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// deliver builds a multipart/alternative message and hands it to SMTP
func (m *SMTPMailer) deliver(to, subject, htmlBody, textBody string) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("mail service not configured")
	}

	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}

	const boundary = "----=_ArtmarketPart_1"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(textBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.FromEmail, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
