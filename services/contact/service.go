// File: services/contact/service.go
package contact

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"consultify/models"
	"consultify/utils"

	"go.uber.org/zap"
)

// ErrValidation marks a contact submission missing required fields.
var ErrValidation = errors.New("missing required fields: firstName, lastName, email, message")

// ContactService accepts a visitor's consultation request and relays it
// by email. It never reserves slot capacity; seat bookkeeping is a
// manual administrative action.
type ContactService interface {
	SendBookingRequest(req models.ContactRequest) error
}

// DefaultContactService sends the consultant notification and the
// requester confirmation. Both sends are best-effort: the first
// transport failure is terminal, with no retry.
type DefaultContactService struct {
	Mailer          Mailer
	ConsultantEmail string
}

func (s *DefaultContactService) SendBookingRequest(req models.ContactRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Message == "" {
		return ErrValidation
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s %s", req.FirstName, req.LastName)
	if err := s.Mailer.Send(s.ConsultantEmail, subject, consultantBody(req)); err != nil {
		utils.GetLogger().Error("contact: consultant notification failed", zap.Error(err))
		return fmt.Errorf("failed to send message: %w", err)
	}
	if err := s.Mailer.Send(req.Email, "We received your message", requesterBody(req)); err != nil {
		utils.GetLogger().Error("contact: requester confirmation failed", zap.Error(err))
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func consultantBody(req models.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s %s</p>", html.EscapeString(req.FirstName), html.EscapeString(req.LastName))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(req.Email))
	if req.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(req.Phone))
	}
	if req.Service != "" {
		fmt.Fprintf(&b, "<p><strong>Service Interested:</strong> %s</p>", html.EscapeString(req.Service))
	}
	b.WriteString("<h3>Message:</h3>")
	fmt.Fprintf(&b, "<p>%s</p>", messageHTML(req.Message))
	return b.String()
}

func requesterBody(req models.ContactRequest) string {
	service := req.Service
	if service == "" {
		service = "General inquiry"
	}
	var b strings.Builder
	b.WriteString("<h2>Thank you for reaching out!</h2>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(req.FirstName))
	b.WriteString("<p>I've received your message and will get back to you within 24 hours on business days.</p>")
	b.WriteString("<h3>Your Message Summary:</h3>")
	fmt.Fprintf(&b, "<p><strong>Service Interest:</strong> %s</p>", html.EscapeString(service))
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", messageHTML(req.Message))
	b.WriteString("<p>In the meantime, feel free to reach out if you have any urgent questions.</p>")
	b.WriteString("<p>Best regards,</p>")
	return b.String()
}

func messageHTML(message string) string {
	return strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
}
