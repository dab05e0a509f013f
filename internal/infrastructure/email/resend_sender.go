package email

import (
	"context"
	"errors"
	"log"
	"strings"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")
var ErrEmailSenderNotConfigured = errors.New("email sender not configured")
var ErrNoRecipients = errors.New("email has no recipients")

type emailClient interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers transactional email through Resend. In mock mode it
// only logs the message and returns a synthetic provider id.
type ResendSender struct {
	client   emailClient
	from     string
	mockMode bool
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey, from string, mockMode bool) (*ResendSender, error) {
	if mockMode {
		log.Printf("[email][sender] mock mode enabled")
		return &ResendSender{from: from, mockMode: true}, nil
	}

	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[email][sender] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	log.Printf("[email][sender] Resend client initialized")

	return &ResendSender{client: resend.NewClient(apiKey).Emails, from: from}, nil
}

func (s *ResendSender) Send(ctx context.Context, email entities.Email) (string, error) {
	if len(email.To) == 0 {
		return "", ErrNoRecipients
	}

	if s != nil && s.mockMode {
		id := "mock-" + uuid.NewString()
		log.Printf("[email][sender] mock send to=%s subject=%q html_len=%d provider_message_id=%s",
			strings.Join(email.To, ","), email.Subject, len(email.HTML), id)
		return id, nil
	}

	if s == nil || s.client == nil {
		log.Printf("[email][sender] sender not configured")
		return "", ErrEmailSenderNotConfigured
	}
	log.Printf("[email][sender] send start to=%s subject=%q", strings.Join(email.To, ","), email.Subject)

	resp, err := s.client.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		log.Printf("[email][sender] send failed err=%v", err)
		return "", err
	}
	log.Printf("[email][sender] send success provider_message_id=%s", resp.Id)

	return resp.Id, nil
}
