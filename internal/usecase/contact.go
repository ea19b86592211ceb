package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ahkii-burger-backend/config"
	"ahkii-burger-backend/internal/domain"
	"ahkii-burger-backend/pkg/apperror"
	"ahkii-burger-backend/pkg/email"

	"golang.org/x/sync/errgroup"
)

type contactUsecase struct {
	sender        domain.EmailSender
	fromEmail     string
	operatorEmail string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender domain.EmailSender, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		sender:        sender,
		fromEmail:     cfg.SMTPFromEmail,
		operatorEmail: cfg.ContactEmailTo,
	}
}

// SendContactMessage validates the submission, then dispatches the operator
// notification and the submitter acknowledgment. Validation failures reject
// the submission before any transport call is attempted; once dispatching,
// both sends are always attempted and any failure surfaces as one generic
// delivery error (transport details stay server-side).
func (u *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	data := email.ContactEmailData{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	// Phone is optional, everything else is required
	if data.Name == "" || data.Email == "" || data.Subject == "" || data.Message == "" {
		return apperror.BadRequest("Missing required fields")
	}

	operatorMsg, err := email.OperatorNotification(u.fromEmail, u.operatorEmail, data)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to send email", err)
	}
	ackMsg, err := email.Acknowledgment(u.fromEmail, data)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to send email", err)
	}

	// The two dispatches are independent, so send them concurrently. Each
	// runs to completion regardless of the other's outcome; the submission
	// only succeeds when both have been delivered.
	var opErr, ackErr error
	var g errgroup.Group
	g.Go(func() error {
		opErr = u.sender.Send(ctx, operatorMsg)
		return opErr
	})
	g.Go(func() error {
		ackErr = u.sender.Send(ctx, ackMsg)
		return ackErr
	})
	_ = g.Wait()

	if err := errors.Join(opErr, ackErr); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to send email", err)
	}
	return nil
}
