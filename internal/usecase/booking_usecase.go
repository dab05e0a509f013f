package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"wascrap/internal/domain/entities"
	"wascrap/internal/observability"
	"wascrap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound            = errors.New("booking not found")
	ErrInvalidBookingID           = errors.New("invalid booking id")
	ErrInvalidBookingInput        = errors.New("invalid booking")
	ErrInvalidTransition          = errors.New("booking status does not allow this transition")
	ErrCancellationReasonRequired = errors.New("cancellation reason is required")
)

const pickupDateLayout = "2006-01-02"

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// BookingInput is what the customer fills in across the four booking form steps.
type BookingInput struct {
	FullName            string
	Email               string
	Phone               string
	HouseNumber         string
	Village             string
	City                string
	District            string
	State               string
	Pincode             string
	ScrapItems          []entities.ScrapItem
	OwnTransport        bool
	PickupDate          string
	PickupTime          string
	SpecialInstructions string
}

// IBookingUseCase exposes the pickup booking lifecycle.
//
// Customers create and list their own bookings; staff list everything and move
// bookings through pending -> confirmed -> in_progress -> completed/cancelled.
// Emails and events that follow a transition are best-effort and never undo it.
type IBookingUseCase interface {
	Create(ctx context.Context, userID string, in BookingInput) (entities.Booking, error)
	List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error)
	ListPending(ctx context.Context) ([]entities.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Confirm(ctx context.Context, id string) (entities.Booking, error)
	StartProgress(ctx context.Context, id string) (entities.Booking, error)
	Complete(ctx context.Context, id, staffID string) (entities.Booking, error)
	Cancel(ctx context.Context, id, reason string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	notifier  interfaces.INotifier
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, notifier interfaces.INotifier, publisher interfaces.IEventPublisher) *BookingUseCase {
	return &BookingUseCase{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingUseCase) Create(ctx context.Context, userID string, in BookingInput) (entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Booking{}, fmt.Errorf("%w: user is required", ErrInvalidBookingInput)
	}
	items, err := u.validate(&in)
	if err != nil {
		return entities.Booking{}, err
	}

	now := u.now()
	b := entities.Booking{
		ID:                  uuid.NewString(),
		UserID:              userID,
		FullName:            in.FullName,
		Email:               strings.ToLower(in.Email),
		Phone:               in.Phone,
		Address:             fmt.Sprintf("%s, %s", in.HouseNumber, in.Village),
		City:                in.City,
		District:            in.District,
		State:               in.State,
		Pincode:             in.Pincode,
		ScrapTypes:          items,
		TotalWeight:         entities.TotalWeight(items),
		EstimatedValue:      entities.EstimateValue(items, in.OwnTransport),
		OwnTransport:        in.OwnTransport,
		PickupDate:          in.PickupDate,
		PickupTime:          entities.PickupSlot(in.PickupTime),
		SpecialInstructions: in.SpecialInstructions,
		Status:              entities.BookingStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	observability.BookingsCreated.Inc()
	log.Printf("[booking][usecase] created booking_id=%s user_id=%s pickup_date=%s", created.ID, created.UserID, created.PickupDate)

	if u.notifier != nil {
		if err := u.notifier.NotifyBookingReceived(ctx, created); err != nil {
			log.Printf("[booking][usecase] booking notification failed booking_id=%s err=%v", created.ID, err)
		}
	}
	u.publish(ctx, entities.EventBookingCreated, created)
	return created, nil
}

func (u *BookingUseCase) validate(in *BookingInput) ([]entities.ScrapItem, error) {
	trim := func(fields ...*string) {
		for _, f := range fields {
			*f = strings.TrimSpace(*f)
		}
	}
	trim(&in.FullName, &in.Email, &in.Phone, &in.HouseNumber, &in.Village, &in.City,
		&in.District, &in.State, &in.Pincode, &in.PickupDate, &in.PickupTime, &in.SpecialInstructions)

	if in.FullName == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrInvalidBookingInput)
	}
	if in.Email != "" {
		if _, err := normalizeEmail(in.Email); err != nil {
			return nil, fmt.Errorf("%w: email is not valid", ErrInvalidBookingInput)
		}
	}
	if in.HouseNumber == "" || in.Village == "" || in.City == "" || in.District == "" || in.State == "" || in.Pincode == "" {
		return nil, fmt.Errorf("%w: complete pickup address is required", ErrInvalidBookingInput)
	}
	if !pincodePattern.MatchString(in.Pincode) {
		return nil, fmt.Errorf("%w: pincode must be 6 digits", ErrInvalidBookingInput)
	}

	if len(in.ScrapItems) == 0 {
		return nil, fmt.Errorf("%w: at least one scrap type is required", ErrInvalidBookingInput)
	}
	items := make([]entities.ScrapItem, 0, len(in.ScrapItems))
	for _, it := range in.ScrapItems {
		t, ok := entities.ParseScrapType(string(it.Type))
		if !ok {
			return nil, fmt.Errorf("%w: unknown scrap type %q", ErrInvalidBookingInput, it.Type)
		}
		if it.Weight < 0 {
			return nil, fmt.Errorf("%w: weight must not be negative", ErrInvalidBookingInput)
		}
		items = append(items, entities.ScrapItem{Type: t, Weight: it.Weight})
	}

	if in.PickupDate == "" || in.PickupTime == "" {
		return nil, fmt.Errorf("%w: pickup date and time are required", ErrInvalidBookingInput)
	}
	date, err := time.Parse(pickupDateLayout, in.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup date must be YYYY-MM-DD", ErrInvalidBookingInput)
	}
	if date.Format(pickupDateLayout) < u.now().Format(pickupDateLayout) {
		return nil, fmt.Errorf("%w: pickup date is in the past", ErrInvalidBookingInput)
	}
	in.PickupTime = strings.ToLower(in.PickupTime)
	if !entities.PickupSlot(in.PickupTime).Valid() {
		return nil, fmt.Errorf("%w: pickup time must be morning, afternoon or evening", ErrInvalidBookingInput)
	}
	return items, nil
}

func (u *BookingUseCase) List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error) {
	return u.repo.List(ctx, filter)
}

func (u *BookingUseCase) ListPending(ctx context.Context) ([]entities.Booking, error) {
	return u.repo.List(ctx, entities.BookingFilter{Status: entities.BookingStatusPending})
}

func (u *BookingUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidBookingInput)
	}
	return u.repo.List(ctx, entities.BookingFilter{UserID: userID})
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) Confirm(ctx context.Context, id string) (entities.Booking, error) {
	return u.transition(ctx, id, entities.BookingTransition{To: entities.BookingStatusConfirmed})
}

func (u *BookingUseCase) StartProgress(ctx context.Context, id string) (entities.Booking, error) {
	return u.transition(ctx, id, entities.BookingTransition{To: entities.BookingStatusInProgress})
}

func (u *BookingUseCase) Complete(ctx context.Context, id, staffID string) (entities.Booking, error) {
	return u.transition(ctx, id, entities.BookingTransition{
		To:          entities.BookingStatusCompleted,
		CompletedBy: strings.TrimSpace(staffID),
	})
}

func (u *BookingUseCase) Cancel(ctx context.Context, id, reason string) (entities.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Booking{}, ErrCancellationReasonRequired
	}
	return u.transition(ctx, id, entities.BookingTransition{
		To:                 entities.BookingStatusCancelled,
		CancellationReason: reason,
	})
}

func (u *BookingUseCase) transition(ctx context.Context, id string, t entities.BookingTransition) (entities.Booking, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !current.CanTransitionTo(t.To) {
		log.Printf("[booking][usecase] transition rejected booking_id=%s from=%s to=%s", current.ID, current.Status, t.To)
		return entities.Booking{}, ErrInvalidTransition
	}

	t.From = current.Status
	t.At = u.now()
	updated, err := u.repo.Transition(ctx, current.ID, t)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		// status changed between read and write
		log.Printf("[booking][usecase] transition lost race booking_id=%s from=%s to=%s", current.ID, t.From, t.To)
		return entities.Booking{}, ErrInvalidTransition
	}

	observability.BookingTransitions.WithLabelValues(string(t.To)).Inc()
	log.Printf("[booking][usecase] transition ok booking_id=%s from=%s to=%s", updated.ID, t.From, t.To)

	if u.notifier != nil {
		if err := u.notifier.NotifyBookingStatus(ctx, updated); err != nil {
			log.Printf("[booking][usecase] status notification failed booking_id=%s status=%s err=%v", updated.ID, updated.Status, err)
		}
	}
	u.publish(ctx, entities.BookingEventType(updated.Status), updated)
	return updated, nil
}

func (u *BookingUseCase) publish(ctx context.Context, eventType string, b entities.Booking) {
	if u.publisher == nil {
		return
	}
	payload := map[string]any{
		"status":  string(b.Status),
		"user_id": b.UserID,
	}
	if b.CompletedBy != "" {
		payload["completed_by"] = b.CompletedBy
	}
	if b.CancellationReason != "" {
		payload["cancellation_reason"] = b.CancellationReason
	}
	if b.Status == entities.BookingStatusPending {
		payload["estimated_value"] = b.EstimatedValue
	}
	evt := entities.DomainEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		AggregateID:   b.ID,
		AggregateType: entities.AggregateBooking,
		Payload:       payload,
		OccurredAt:    u.now(),
	}
	if err := u.publisher.Publish(ctx, evt); err != nil {
		log.Printf("[booking][usecase] publish failed event=%s booking_id=%s err=%v", eventType, b.ID, err)
	}
}
