package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// OutboundEmail is one message handed to the email transport.
type OutboundEmail struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// EmailSender is the external email transport. Implementations may fail;
// callers must treat it as a black box.
type EmailSender interface {
	Send(ctx context.Context, msg *OutboundEmail) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and dispatches the
	// operator notification and the submitter acknowledgment.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
