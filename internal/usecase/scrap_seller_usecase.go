package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"
)

var (
	ErrInvalidAction       = errors.New("invalid action")
	ErrInvalidSellerInput  = errors.New("invalid scrap seller")
	ErrSellerNotFound      = errors.New("scrap seller not found")
	ErrSellerAlreadyExists = errors.New("scrap seller already exists")
)

type SellerAction string

const (
	SellerActionCreate SellerAction = "create"
	SellerActionUpdate SellerAction = "update"
	SellerActionGet    SellerAction = "get"
)

// SellerInput is the userData object posted by the federated sign-in flow.
// Verification is a staff decision, so the input carries no verified flag.
type SellerInput struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	PhoneNumber string
	Address     string
	City        string
	State       string
	Pincode     string
	PanCard     string
	CarNumber   string
	CreatedAt   string
}

// IScrapSellerUseCase backs the firebase-auth function.
//
// Handle returns a nil seller and no error when a "get" finds nothing.
type IScrapSellerUseCase interface {
	Handle(ctx context.Context, action SellerAction, in SellerInput, uid string) (*entities.ScrapSeller, error)
}

type ScrapSellerUseCase struct {
	repo interfaces.IScrapSellerRepository
	now  func() time.Time
}

var _ IScrapSellerUseCase = (*ScrapSellerUseCase)(nil)

func NewScrapSellerUseCase(repo interfaces.IScrapSellerRepository) *ScrapSellerUseCase {
	return &ScrapSellerUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ScrapSellerUseCase) Handle(ctx context.Context, action SellerAction, in SellerInput, uid string) (*entities.ScrapSeller, error) {
	switch action {
	case SellerActionCreate:
		s, err := u.create(ctx, in)
		if err != nil {
			return nil, err
		}
		return &s, nil
	case SellerActionUpdate:
		if strings.TrimSpace(in.UID) == "" {
			in.UID = uid
		}
		s, err := u.update(ctx, in)
		if err != nil {
			return nil, err
		}
		return &s, nil
	case SellerActionGet:
		return u.get(ctx, uid)
	default:
		return nil, ErrInvalidAction
	}
}

func (u *ScrapSellerUseCase) build(in SellerInput) (entities.ScrapSeller, error) {
	uid := strings.TrimSpace(in.UID)
	if uid == "" {
		return entities.ScrapSeller{}, fmt.Errorf("%w: uid is required", ErrInvalidSellerInput)
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.ScrapSeller{}, fmt.Errorf("%w: email is not valid", ErrInvalidSellerInput)
	}
	pan := strings.TrimSpace(in.PanCard)
	if pan != "" {
		normalized, ok := entities.NormalizePanCard(pan)
		if !ok {
			return entities.ScrapSeller{}, ErrInvalidPanCard
		}
		pan = normalized
	}

	now := u.now()
	createdAt := now
	if in.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, in.CreatedAt)
		if err != nil {
			return entities.ScrapSeller{}, fmt.Errorf("%w: createdAt must be RFC 3339", ErrInvalidSellerInput)
		}
		createdAt = t.UTC()
	}
	return entities.ScrapSeller{
		UID:         uid,
		Email:       email,
		DisplayName: strings.TrimSpace(in.DisplayName),
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Pincode:     strings.TrimSpace(in.Pincode),
		PanCard:     pan,
		CarNumber:   strings.ToUpper(strings.TrimSpace(in.CarNumber)),
		LoginMethod: entities.LoginMethodGoogle,
		CreatedAt:   createdAt,
		LastLoginAt: now,
	}, nil
}

func (u *ScrapSellerUseCase) create(ctx context.Context, in SellerInput) (entities.ScrapSeller, error) {
	s, err := u.build(in)
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.ScrapSeller{}, ErrSellerAlreadyExists
	}
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	log.Printf("[seller][usecase] created uid=%s", created.UID)
	return created, nil
}

func (u *ScrapSellerUseCase) update(ctx context.Context, in SellerInput) (entities.ScrapSeller, error) {
	s, err := u.build(in)
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	existing, err := u.repo.GetByUID(ctx, s.UID)
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	if existing.UID == "" {
		return entities.ScrapSeller{}, ErrSellerNotFound
	}
	if in.CreatedAt == "" {
		s.CreatedAt = existing.CreatedAt
	}
	s.Verified = existing.Verified
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.ScrapSeller{}, err
	}
	if updated.UID == "" {
		return entities.ScrapSeller{}, ErrSellerNotFound
	}
	log.Printf("[seller][usecase] updated uid=%s", updated.UID)
	return updated, nil
}

func (u *ScrapSellerUseCase) get(ctx context.Context, uid string) (*entities.ScrapSeller, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidSellerInput)
	}
	s, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if s.UID == "" {
		return nil, nil
	}
	return &s, nil
}
