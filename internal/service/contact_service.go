package service

import (
	"context"

	"github.com/contactrelay/contactrelay/internal/email"
	"github.com/contactrelay/contactrelay/internal/logger"
	"github.com/contactrelay/contactrelay/internal/model"
)

// ContactConfig is the sender identity and destination used for every relay.
type ContactConfig struct {
	SenderName    string
	SenderAddress string
	Recipient     string
}

// ContactService validates contact submissions and relays them by email.
type ContactService struct {
	sender email.Sender
	cfg    ContactConfig
	log    *logger.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(sender email.Sender, cfg ContactConfig, log *logger.Logger) *ContactService {
	return &ContactService{
		sender: sender,
		cfg:    cfg,
		log:    log.WithComponent("contact"),
	}
}

// Validate checks required fields first, then the email format.
func Validate(s model.ContactSubmission) error {
	if !s.HasRequiredFields() {
		return ErrMissingFields
	}
	if !model.ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Compose renders the outgoing message for a submission.
func (svc *ContactService) Compose(s model.ContactSubmission) (email.Message, error) {
	body, err := email.RenderContact(s)
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		From:     email.FormatAddress(svc.cfg.SenderName, svc.cfg.SenderAddress),
		To:       svc.cfg.Recipient,
		ReplyTo:  s.Email,
		Subject:  email.ContactSubject(s),
		HTMLBody: body.HTML,
		TextBody: body.Text,
	}, nil
}

// Relay validates s and sends exactly one notification email.
// It returns the provider message ID, a *ValidationError, or a *DeliveryError.
func (svc *ContactService) Relay(ctx context.Context, s model.ContactSubmission) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}

	msg, err := svc.Compose(s)
	if err != nil {
		return "", &DeliveryError{Err: err}
	}

	receipt, err := svc.sender.Send(ctx, msg)
	if err != nil {
		return "", &DeliveryError{Err: err}
	}

	svc.log.Info().
		Str("message_id", receipt.ID).
		Bool("has_phone", s.HasPhone()).
		Msg("contact submission relayed")

	return receipt.ID, nil
}
