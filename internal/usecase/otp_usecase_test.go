package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wascrap/internal/domain/entities"
	mock_interfaces "wascrap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type otpFixture struct {
	uc       *OTPUseCase
	store    *mock_interfaces.MockIOTPStore
	sender   *mock_interfaces.MockIEmailSender
	accounts *mock_interfaces.MockIAccountRepository
}

func newOTPFixture(t *testing.T) otpFixture {
	ctrl := gomock.NewController(t)
	f := otpFixture{
		store:    mock_interfaces.NewMockIOTPStore(ctrl),
		sender:   mock_interfaces.NewMockIEmailSender(ctrl),
		accounts: mock_interfaces.NewMockIAccountRepository(ctrl),
	}
	accountUC := NewAccountUseCase(f.accounts, nil, nil, nil)
	f.uc = NewOTPUseCase(f.store, f.sender, accountUC, 10*time.Minute, 3, "support@wascrap.in")
	f.uc.generate = func() (string, error) { return "482913", nil }
	return f
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !entities.ValidOTPFormat(code) || code < "100000" || code > "999999" {
			t.Fatalf("code out of range: %q", code)
		}
	}
}

func TestOTPUseCase_SendOTP(t *testing.T) {
	t.Run("email required", func(t *testing.T) {
		f := newOTPFixture(t)
		if err := f.uc.SendOTP(context.Background(), "  ", entities.OTPPurposeCustomer); !errors.Is(err, ErrEmailRequired) {
			t.Fatalf("expected ErrEmailRequired, got %v", err)
		}
	})

	t.Run("stores code and mails buyer portal subject", func(t *testing.T) {
		f := newOTPFixture(t)

		f.store.EXPECT().Save(gomock.Any(), "otp:r@example.com", "482913", 10*time.Minute).Return(nil)
		f.store.EXPECT().Delete(gomock.Any(), "otp:r@example.com:attempts").Return(nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Email) (string, error) {
				if e.Subject != "Your OTP for Scrap Buyer Portal - 482913" {
					t.Fatalf("unexpected subject: %s", e.Subject)
				}
				if !strings.Contains(e.HTML, "482913") {
					t.Fatalf("body misses code")
				}
				return "m-1", nil
			},
		)

		if err := f.uc.SendOTP(context.Background(), "R@Example.com", entities.OTPPurposeBuyer); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		f := newOTPFixture(t)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))

		if err := f.uc.SendOTP(context.Background(), "r@example.com", ""); !errors.Is(err, ErrEmailDeliveryFailed) {
			t.Fatalf("expected ErrEmailDeliveryFailed, got %v", err)
		}
	})
}

func TestOTPUseCase_VerifyOTP(t *testing.T) {
	in := VerifyOTPInput{Email: "r@example.com", OTP: "482913", Username: "ravi", Password: "secret1"}

	t.Run("missing fields", func(t *testing.T) {
		f := newOTPFixture(t)
		bad := in
		bad.Username = ""
		if _, err := f.uc.VerifyOTP(context.Background(), bad); !errors.Is(err, ErrOTPFieldsRequired) {
			t.Fatalf("expected ErrOTPFieldsRequired, got %v", err)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		f := newOTPFixture(t)
		bad := in
		bad.OTP = "12ab56"
		if _, err := f.uc.VerifyOTP(context.Background(), bad); !errors.Is(err, ErrInvalidOTPFormat) {
			t.Fatalf("expected ErrInvalidOTPFormat, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f := newOTPFixture(t)
		f.store.EXPECT().IncrementAttempts(gomock.Any(), "otp:r@example.com:attempts", 10*time.Minute).Return(int64(1), nil)
		f.store.EXPECT().Get(gomock.Any(), "otp:r@example.com").Return("", false, nil)

		if _, err := f.uc.VerifyOTP(context.Background(), in); !errors.Is(err, ErrOTPExpired) {
			t.Fatalf("expected ErrOTPExpired, got %v", err)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		f := newOTPFixture(t)
		f.store.EXPECT().IncrementAttempts(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("111111", true, nil)

		if _, err := f.uc.VerifyOTP(context.Background(), in); !errors.Is(err, ErrOTPMismatch) {
			t.Fatalf("expected ErrOTPMismatch, got %v", err)
		}
	})

	t.Run("too many attempts", func(t *testing.T) {
		f := newOTPFixture(t)
		f.store.EXPECT().IncrementAttempts(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(4), nil)

		if _, err := f.uc.VerifyOTP(context.Background(), in); !errors.Is(err, ErrOTPTooManyAttempts) {
			t.Fatalf("expected ErrOTPTooManyAttempts, got %v", err)
		}
	})

	t.Run("already registered keeps code", func(t *testing.T) {
		f := newOTPFixture(t)
		f.store.EXPECT().IncrementAttempts(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("482913", true, nil)
		f.accounts.EXPECT().GetByEmail(gomock.Any(), "r@example.com").Return(entities.Account{ID: "a-0"}, nil)

		if _, err := f.uc.VerifyOTP(context.Background(), in); !errors.Is(err, ErrAccountAlreadyExists) {
			t.Fatalf("expected ErrAccountAlreadyExists, got %v", err)
		}
	})

	t.Run("success consumes code", func(t *testing.T) {
		f := newOTPFixture(t)
		f.store.EXPECT().IncrementAttempts(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.store.EXPECT().Get(gomock.Any(), "otp:r@example.com").Return("482913", true, nil)
		f.accounts.EXPECT().GetByEmail(gomock.Any(), "r@example.com").Return(entities.Account{}, nil)
		f.accounts.EXPECT().GetByUsername(gomock.Any(), "ravi").Return(entities.Account{}, nil)
		f.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				if !a.EmailConfirmed || a.Email != "r@example.com" {
					t.Fatalf("unexpected account: %+v", a)
				}
				return a, nil
			},
		)
		f.store.EXPECT().Delete(gomock.Any(), "otp:r@example.com").Return(nil)
		f.store.EXPECT().Delete(gomock.Any(), "otp:r@example.com:attempts").Return(errors.New("redis blip"))

		a, err := f.uc.VerifyOTP(context.Background(), in)
		if err != nil || a.ID == "" {
			t.Fatalf("unexpected result: %+v err=%v", a, err)
		}
	})
}
