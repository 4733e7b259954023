package notifications

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/smtp"
	"text/template"

	"venuescout/internal/shared/config"
)

// EmailService turns inquiry events into staff notification emails.
type EmailService interface {
	SendEvent(ctx context.Context, event *InquiryEvent) error
}

// NewEmailService picks an implementation based on configuration. Without
// an SMTP host, events are logged instead of mailed so local development
// needs no mail server.
func NewEmailService(cfg *config.Config) EmailService {
	if cfg.Email.SMTPHost == "" {
		return &logEmailService{}
	}
	return newSMTPEmailService(cfg)
}

type smtpEmailService struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	toEmail   string
	templates map[InquiryEventType]*template.Template
}

func newSMTPEmailService(cfg *config.Config) *smtpEmailService {
	service := &smtpEmailService{
		host:      cfg.Email.SMTPHost,
		port:      cfg.Email.SMTPPort,
		username:  cfg.Email.SMTPUsername,
		password:  cfg.Email.SMTPPassword,
		fromEmail: cfg.Email.FromEmail,
		// Staff inbox address doubles as the notification recipient until
		// per-venue contacts are modeled.
		toEmail:   cfg.Email.SMTPUsername,
		templates: make(map[InquiryEventType]*template.Template),
	}
	service.loadTemplates()
	return service
}

func (s *smtpEmailService) loadTemplates() {
	created := `New inquiry from {{.ClientName}} ({{.ContactDetails}}).

Event: {{.EventType}}, {{.Pax}} guests
Dates: {{.StartDate}} to {{.EndDate}}
Venues contacted: {{len .VenueIDs}}
`
	statusChanged := `Inquiry from {{.ClientName}} moved {{.FromStatus}} -> {{.ToStatus}}.

Event: {{.EventType}}, {{.Pax}} guests
Dates: {{.StartDate}} to {{.EndDate}}
{{if .HoldExpiresAt}}Pencil hold expires {{.HoldExpiresAt.Format "2006-01-02"}}.{{end}}
`
	s.templates[InquiryEventCreated] = template.Must(
		template.New(string(InquiryEventCreated)).Parse(created))
	s.templates[InquiryEventStatusChanged] = template.Must(
		template.New(string(InquiryEventStatusChanged)).Parse(statusChanged))
}

func (s *smtpEmailService) SendEvent(ctx context.Context, event *InquiryEvent) error {
	tmpl, ok := s.templates[event.Type]
	if !ok {
		return fmt.Errorf("no template for event type %s", event.Type)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := s.subjectFor(event)
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.fromEmail, s.toEmail, subject, body.String())

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}

func (s *smtpEmailService) subjectFor(event *InquiryEvent) string {
	switch event.Type {
	case InquiryEventCreated:
		return fmt.Sprintf("New venue inquiry: %s (%s)", event.ClientName, event.EventType)
	case InquiryEventStatusChanged:
		return fmt.Sprintf("Inquiry update: %s is now %s", event.ClientName, event.ToStatus)
	default:
		return "VenueScout notification"
	}
}

// logEmailService logs events instead of sending mail.
type logEmailService struct{}

func (l *logEmailService) SendEvent(ctx context.Context, event *InquiryEvent) error {
	log.Printf("Notification (no SMTP configured) - Type: %s, Inquiry: %s, Client: %s",
		event.Type, event.InquiryID, event.ClientName)
	return nil
}
