package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wascrap/internal/domain/entities"

	"github.com/resend/resend-go/v2"
)

type fakeClient struct {
	got  *resend.SendEmailRequest
	resp *resend.SendEmailResponse
	err  error
}

func (f *fakeClient) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	return f.resp, f.err
}

func TestResendSender(t *testing.T) {
	msg := entities.Email{
		To:      []string{"asha@example.com"},
		Subject: "Order Completed - WaScrap",
		HTML:    "<p>done</p>",
	}

	t.Run("mock mode does not need an api key", func(t *testing.T) {
		s, err := NewResendSender("", "WaScrap <noreply@wascrap.com>", true)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		id, err := s.Send(context.Background(), msg)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.HasPrefix(id, "mock-") {
			t.Fatalf("expected mock id, got %q", id)
		}
	})

	t.Run("missing api key outside mock mode", func(t *testing.T) {
		_, err := NewResendSender("  ", "from@x.com", false)
		if !errors.Is(err, ErrMissingResendAPIKey) {
			t.Fatalf("expected ErrMissingResendAPIKey, got %v", err)
		}
	})

	t.Run("passes the rendered message to the provider", func(t *testing.T) {
		fc := &fakeClient{resp: &resend.SendEmailResponse{Id: "re_123"}}
		s := &ResendSender{client: fc, from: "WaScrap <noreply@wascrap.com>"}

		id, err := s.Send(context.Background(), msg)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if id != "re_123" {
			t.Fatalf("expected provider id re_123, got %q", id)
		}
		if fc.got.From != "WaScrap <noreply@wascrap.com>" || fc.got.Subject != msg.Subject || fc.got.Html != msg.HTML {
			t.Fatalf("unexpected request: %+v", fc.got)
		}
	})

	t.Run("provider error is returned", func(t *testing.T) {
		boom := errors.New("rate limited")
		s := &ResendSender{client: &fakeClient{err: boom}}
		if _, err := s.Send(context.Background(), msg); !errors.Is(err, boom) {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("no recipients", func(t *testing.T) {
		s := &ResendSender{mockMode: true}
		if _, err := s.Send(context.Background(), entities.Email{}); !errors.Is(err, ErrNoRecipients) {
			t.Fatalf("expected ErrNoRecipients, got %v", err)
		}
	})

	t.Run("unconfigured sender", func(t *testing.T) {
		var s *ResendSender
		if _, err := s.Send(context.Background(), msg); !errors.Is(err, ErrEmailSenderNotConfigured) {
			t.Fatalf("expected ErrEmailSenderNotConfigured, got %v", err)
		}
	})
}
