package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"
	"wascrap/internal/domain/entities"
	"wascrap/internal/observability"
	"wascrap/internal/usecase/interfaces"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrOTPFieldsRequired  = errors.New("email, OTP, username, and password are required")
	ErrInvalidOTPFormat   = errors.New("invalid OTP format")
	ErrOTPExpired         = errors.New("OTP expired or not issued")
	ErrOTPMismatch        = errors.New("OTP does not match")
	ErrOTPTooManyAttempts = errors.New("too many OTP attempts")
)

type VerifyOTPInput struct {
	Email    string
	OTP      string
	Username string
	Password string
}

// IOTPUseCase drives e-mail verification during sign-up.
//
// SendOTP issues a six-digit code valid for the configured TTL. VerifyOTP
// checks the code against the stored one and, on success, consumes it and
// creates the account with a confirmed e-mail.
type IOTPUseCase interface {
	SendOTP(ctx context.Context, email string, purpose entities.OTPPurpose) error
	VerifyOTP(ctx context.Context, in VerifyOTPInput) (entities.Account, error)
}

type OTPUseCase struct {
	store       interfaces.IOTPStore
	sender      interfaces.IEmailSender
	accounts    IAccountUseCase
	ttl         time.Duration
	maxAttempts int
	support     string
	generate    func() (string, error)
}

var _ IOTPUseCase = (*OTPUseCase)(nil)

func NewOTPUseCase(
	store interfaces.IOTPStore,
	sender interfaces.IEmailSender,
	accounts IAccountUseCase,
	ttl time.Duration,
	maxAttempts int,
	supportAddress string,
) *OTPUseCase {
	return &OTPUseCase{
		store:       store,
		sender:      sender,
		accounts:    accounts,
		ttl:         ttl,
		maxAttempts: maxAttempts,
		support:     supportAddress,
		generate:    generateOTP,
	}
}

// generateOTP returns a uniformly random code in [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func otpKey(email string) string         { return "otp:" + email }
func otpAttemptsKey(email string) string { return "otp:" + email + ":attempts" }

func (u *OTPUseCase) SendOTP(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if purpose != entities.OTPPurposeBuyer {
		purpose = entities.OTPPurposeCustomer
	}

	code, err := u.generate()
	if err != nil {
		return err
	}
	if err := u.store.Save(ctx, otpKey(email), code, u.ttl); err != nil {
		return err
	}
	if err := u.store.Delete(ctx, otpAttemptsKey(email)); err != nil {
		log.Printf("[otp][usecase] attempts reset failed email=%s err=%v", email, err)
	}

	subject, html, err := renderOTP(code, purpose, u.support)
	if err != nil {
		return err
	}
	msgID, err := u.sender.Send(ctx, entities.Email{To: []string{email}, Subject: subject, HTML: html})
	if err != nil {
		log.Printf("[otp][usecase] send failed email=%s err=%v", email, err)
		observability.EmailsSent.WithLabelValues("otp", "failed").Inc()
		return errors.Join(ErrEmailDeliveryFailed, err)
	}
	observability.EmailsSent.WithLabelValues("otp", "sent").Inc()
	observability.OTPEvents.WithLabelValues("issued").Inc()
	log.Printf("[otp][usecase] issued email=%s purpose=%s provider_message_id=%s", email, purpose, msgID)
	return nil
}

func (u *OTPUseCase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (entities.Account, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	code := strings.TrimSpace(in.OTP)
	if email == "" || code == "" || strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return entities.Account{}, ErrOTPFieldsRequired
	}
	if !entities.ValidOTPFormat(code) {
		observability.OTPEvents.WithLabelValues("rejected").Inc()
		return entities.Account{}, ErrInvalidOTPFormat
	}

	attempts, err := u.store.IncrementAttempts(ctx, otpAttemptsKey(email), u.ttl)
	if err != nil {
		return entities.Account{}, err
	}
	if u.maxAttempts > 0 && attempts > int64(u.maxAttempts) {
		observability.OTPEvents.WithLabelValues("rejected").Inc()
		log.Printf("[otp][usecase] too many attempts email=%s attempts=%d", email, attempts)
		return entities.Account{}, ErrOTPTooManyAttempts
	}

	stored, found, err := u.store.Get(ctx, otpKey(email))
	if err != nil {
		return entities.Account{}, err
	}
	if !found {
		observability.OTPEvents.WithLabelValues("rejected").Inc()
		return entities.Account{}, ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		observability.OTPEvents.WithLabelValues("rejected").Inc()
		log.Printf("[otp][usecase] mismatch email=%s attempts=%d", email, attempts)
		return entities.Account{}, ErrOTPMismatch
	}

	account, err := u.accounts.Register(ctx, AccountInput{
		Email:          email,
		Username:       in.Username,
		Password:       in.Password,
		EmailConfirmed: true,
	})
	if err != nil {
		return entities.Account{}, err
	}

	for _, key := range []string{otpKey(email), otpAttemptsKey(email)} {
		if err := u.store.Delete(ctx, key); err != nil {
			log.Printf("[otp][usecase] consume failed key=%s err=%v", key, err)
		}
	}
	observability.OTPEvents.WithLabelValues("verified").Inc()
	log.Printf("[otp][usecase] verified email=%s account_id=%s", email, account.ID)
	return account, nil
}
