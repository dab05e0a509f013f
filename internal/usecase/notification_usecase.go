package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"
	"wascrap/internal/domain/entities"
	"wascrap/internal/observability"
	"wascrap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecipient        = errors.New("invalid recipient email")
	ErrUnknownNotificationType = errors.New("unknown notification type")
	ErrEmailDeliveryFailed     = errors.New("email delivery failed")
)

// NotificationRequest mirrors the send-notification-email payload.
type NotificationRequest struct {
	To        string
	Type      entities.NotificationType
	BookingID string
	BuyerID   string
	BuyerName string
	Reason    string
}

// INotificationUseCase renders and delivers transactional emails.
//
// Send is the explicit operation behind send-notification-email and reports
// delivery failures. The INotifier methods are used after state changes and
// callers only log their errors.
type INotificationUseCase interface {
	Send(ctx context.Context, req NotificationRequest) (entities.Notification, error)
	interfaces.INotifier
}

type NotificationUseCase struct {
	sender       interfaces.IEmailSender
	repo         interfaces.INotificationRepository
	bookings     interfaces.IBookingRepository
	adminAddress string
	support      string
	now          func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	sender interfaces.IEmailSender,
	repo interfaces.INotificationRepository,
	bookings interfaces.IBookingRepository,
	adminAddress, supportAddress string,
) *NotificationUseCase {
	return &NotificationUseCase{
		sender:       sender,
		repo:         repo,
		bookings:     bookings,
		adminAddress: adminAddress,
		support:      supportAddress,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *NotificationUseCase) Send(ctx context.Context, req NotificationRequest) (entities.Notification, error) {
	to, err := normalizeEmail(req.To)
	if err != nil {
		return entities.Notification{}, err
	}
	if !req.Type.Valid() {
		return entities.Notification{}, ErrUnknownNotificationType
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Type == entities.NotificationOrderCancelled && req.Reason == "" {
		return entities.Notification{}, ErrCancellationReasonRequired
	}
	if req.Type == entities.NotificationBuyerRejected && req.Reason == "" {
		req.Reason = entities.DefaultBuyerRejectionReason
	}

	data := emailData{
		BookingID: strings.TrimSpace(req.BookingID),
		Reason:    req.Reason,
		BuyerName: strings.TrimSpace(req.BuyerName),
		Support:   u.support,
	}
	if data.BookingID != "" && u.bookings != nil {
		b, err := u.bookings.GetByID(ctx, data.BookingID)
		if err != nil {
			log.Printf("[notification][usecase] booking lookup failed booking_id=%s err=%v", data.BookingID, err)
		} else if b.ID != "" {
			data.Booking = &b
		}
	}
	return u.deliver(ctx, to, req.Type, data, req.BuyerID)
}

func (u *NotificationUseCase) deliver(ctx context.Context, to string, t entities.NotificationType, data emailData, buyerID string) (entities.Notification, error) {
	subject, html, err := renderNotification(t, data)
	if err != nil {
		return entities.Notification{}, err
	}

	n := entities.Notification{
		ID:           uuid.NewString(),
		Type:         t,
		BookingID:    data.BookingID,
		ScrapBuyerID: buyerID,
		Recipient:    to,
		CreatedAt:    u.now(),
	}

	msgID, sendErr := u.sender.Send(ctx, entities.Email{To: []string{to}, Subject: subject, HTML: html})
	if sendErr != nil {
		log.Printf("[notification][usecase] send failed type=%s to=%s err=%v", t, to, sendErr)
		observability.EmailsSent.WithLabelValues(string(t), "failed").Inc()
	} else {
		n.EmailSent = true
		n.ProviderMessageID = msgID
		observability.EmailsSent.WithLabelValues(string(t), "sent").Inc()
		log.Printf("[notification][usecase] sent type=%s to=%s provider_message_id=%s", t, to, msgID)
	}

	if u.repo != nil {
		if _, err := u.repo.Create(ctx, n); err != nil {
			log.Printf("[notification][usecase] record failed notification_id=%s err=%v", n.ID, err)
		}
	}

	if sendErr != nil {
		return n, errors.Join(ErrEmailDeliveryFailed, sendErr)
	}
	return n, nil
}

func (u *NotificationUseCase) NotifyBookingReceived(ctx context.Context, b entities.Booking) error {
	data := emailData{BookingID: b.ID, Booking: &b, Support: u.support}

	var errs []error
	if to, err := normalizeEmail(b.Email); err == nil {
		if _, err := u.deliver(ctx, to, entities.NotificationBookingReceived, data, ""); err != nil {
			errs = append(errs, err)
		}
	} else {
		log.Printf("[notification][usecase] booking has no deliverable email booking_id=%s", b.ID)
	}
	if admin, err := normalizeEmail(u.adminAddress); err == nil {
		if _, err := u.deliver(ctx, admin, entities.NotificationBookingAlert, data, ""); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotifyBookingStatus emails the customer for terminal transitions only.
func (u *NotificationUseCase) NotifyBookingStatus(ctx context.Context, b entities.Booking) error {
	var t entities.NotificationType
	switch b.Status {
	case entities.BookingStatusCompleted:
		t = entities.NotificationOrderCompleted
	case entities.BookingStatusCancelled:
		t = entities.NotificationOrderCancelled
	default:
		return nil
	}
	to, err := normalizeEmail(b.Email)
	if err != nil {
		return err
	}
	data := emailData{BookingID: b.ID, Booking: &b, Reason: b.CancellationReason, Support: u.support}
	_, err = u.deliver(ctx, to, t, data, "")
	return err
}

func (u *NotificationUseCase) NotifyBuyerReview(ctx context.Context, buyer entities.ScrapBuyer) error {
	to, err := normalizeEmail(buyer.Email)
	if err != nil {
		return err
	}
	t := entities.NotificationBuyerApproved
	reason := ""
	if !buyer.Verified {
		t = entities.NotificationBuyerRejected
		reason = buyer.RejectionReason
		if reason == "" {
			reason = entities.DefaultBuyerRejectionReason
		}
	}
	data := emailData{BuyerName: buyer.FullName, Reason: reason, Support: u.support}
	_, err = u.deliver(ctx, to, t, data, buyer.ID)
	return err
}

func normalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrInvalidRecipient
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", ErrInvalidRecipient
	}
	return s, nil
}
