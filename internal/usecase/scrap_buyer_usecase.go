package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"wascrap/internal/domain/entities"
	"wascrap/internal/observability"
	"wascrap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBuyerNotFound          = errors.New("scrap buyer not found")
	ErrInvalidBuyerID         = errors.New("invalid scrap buyer id")
	ErrInvalidBuyerInput      = errors.New("invalid scrap buyer registration")
	ErrInvalidPanCard         = errors.New("invalid PAN card number")
	ErrBuyerAlreadyRegistered = errors.New("scrap buyer already registered")
	ErrNotABuyer              = errors.New("account is not registered as a scrap buyer")
)

type BuyerInput struct {
	FullName  string
	Phone     string
	PanCard   string
	Address   string
	City      string
	State     string
	Pincode   string
	CarNumber string
}

// IScrapBuyerUseCase handles scrap buyer onboarding and staff review.
type IScrapBuyerUseCase interface {
	Register(ctx context.Context, userID, email string, in BuyerInput) (entities.ScrapBuyer, error)
	List(ctx context.Context, verified *bool) ([]entities.ScrapBuyer, error)
	GetByID(ctx context.Context, id string) (entities.ScrapBuyer, error)
	Approve(ctx context.Context, id string) (entities.ScrapBuyer, error)
	Reject(ctx context.Context, id, reason string) (entities.ScrapBuyer, error)
	EnsureBuyer(ctx context.Context, email string) (entities.ScrapBuyer, error)
}

type ScrapBuyerUseCase struct {
	repo      interfaces.IScrapBuyerRepository
	notifier  interfaces.INotifier
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

var _ IScrapBuyerUseCase = (*ScrapBuyerUseCase)(nil)

func NewScrapBuyerUseCase(repo interfaces.IScrapBuyerRepository, notifier interfaces.INotifier, publisher interfaces.IEventPublisher) *ScrapBuyerUseCase {
	return &ScrapBuyerUseCase{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ScrapBuyerUseCase) Register(ctx context.Context, userID, email string, in BuyerInput) (entities.ScrapBuyer, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.ScrapBuyer{}, fmt.Errorf("%w: email is not valid", ErrInvalidBuyerInput)
	}
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.FullName == "" || in.Phone == "" {
		return entities.ScrapBuyer{}, fmt.Errorf("%w: name and phone are required", ErrInvalidBuyerInput)
	}
	if strings.TrimSpace(in.PanCard) == "" {
		return entities.ScrapBuyer{}, fmt.Errorf("%w: PAN Card number is required", ErrInvalidBuyerInput)
	}
	pan, ok := entities.NormalizePanCard(in.PanCard)
	if !ok {
		return entities.ScrapBuyer{}, ErrInvalidPanCard
	}
	pincode := strings.TrimSpace(in.Pincode)
	if pincode != "" && !pincodePattern.MatchString(pincode) {
		return entities.ScrapBuyer{}, fmt.Errorf("%w: pincode must be 6 digits", ErrInvalidBuyerInput)
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.ScrapBuyer{}, err
	} else if existing.ID != "" {
		return entities.ScrapBuyer{}, ErrBuyerAlreadyRegistered
	}

	now := u.now()
	b := entities.ScrapBuyer{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(userID),
		FullName:  in.FullName,
		Phone:     in.Phone,
		Email:     email,
		PanCard:   pan,
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		State:     strings.TrimSpace(in.State),
		Pincode:   pincode,
		CarNumber: strings.ToUpper(strings.TrimSpace(in.CarNumber)),
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, b)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.ScrapBuyer{}, ErrBuyerAlreadyRegistered
	}
	if err != nil {
		return entities.ScrapBuyer{}, err
	}
	log.Printf("[buyer][usecase] registered buyer_id=%s email=%s", created.ID, created.Email)
	return created, nil
}

// List returns buyers newest first. A nil verified returns every buyer.
func (u *ScrapBuyerUseCase) List(ctx context.Context, verified *bool) ([]entities.ScrapBuyer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ScrapBuyer, 0, len(all))
	for _, b := range all {
		if verified != nil && b.Verified != *verified {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *ScrapBuyerUseCase) GetByID(ctx context.Context, id string) (entities.ScrapBuyer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ScrapBuyer{}, ErrInvalidBuyerID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ScrapBuyer{}, err
	}
	if b.ID == "" {
		return entities.ScrapBuyer{}, ErrBuyerNotFound
	}
	return b, nil
}

func (u *ScrapBuyerUseCase) Approve(ctx context.Context, id string) (entities.ScrapBuyer, error) {
	return u.review(ctx, id, true, "")
}

func (u *ScrapBuyerUseCase) Reject(ctx context.Context, id, reason string) (entities.ScrapBuyer, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = entities.DefaultBuyerRejectionReason
	}
	return u.review(ctx, id, false, reason)
}

func (u *ScrapBuyerUseCase) review(ctx context.Context, id string, verified bool, reason string) (entities.ScrapBuyer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ScrapBuyer{}, ErrInvalidBuyerID
	}

	updated, err := u.repo.UpdateReview(ctx, id, verified, reason, u.now())
	if err != nil {
		return entities.ScrapBuyer{}, err
	}
	if updated.ID == "" {
		return entities.ScrapBuyer{}, ErrBuyerNotFound
	}

	decision, eventType := "approved", entities.EventBuyerApproved
	if !verified {
		decision, eventType = "rejected", entities.EventBuyerRejected
	}
	observability.BuyerReviews.WithLabelValues(decision).Inc()
	log.Printf("[buyer][usecase] review buyer_id=%s decision=%s", updated.ID, decision)

	if u.notifier != nil {
		if err := u.notifier.NotifyBuyerReview(ctx, updated); err != nil {
			log.Printf("[buyer][usecase] review notification failed buyer_id=%s err=%v", updated.ID, err)
		}
	}
	if u.publisher != nil {
		evt := entities.DomainEvent{
			ID:            uuid.NewString(),
			Type:          eventType,
			AggregateID:   updated.ID,
			AggregateType: entities.AggregateScrapBuyer,
			Payload:       map[string]any{"verified": updated.Verified, "reason": updated.RejectionReason},
			OccurredAt:    u.now(),
		}
		if err := u.publisher.Publish(ctx, evt); err != nil {
			log.Printf("[buyer][usecase] publish failed event=%s buyer_id=%s err=%v", eventType, updated.ID, err)
		}
	}
	return updated, nil
}

// EnsureBuyer is the buyer portal gate: the e-mail must belong to a registered buyer.
func (u *ScrapBuyerUseCase) EnsureBuyer(ctx context.Context, email string) (entities.ScrapBuyer, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.ScrapBuyer{}, ErrNotABuyer
	}
	b, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.ScrapBuyer{}, err
	}
	if b.ID == "" {
		return entities.ScrapBuyer{}, ErrNotABuyer
	}
	return b, nil
}
