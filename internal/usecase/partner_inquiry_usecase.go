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
	"wascrap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartnerInquiry = errors.New("invalid partner inquiry")
	ErrUnknownPartnerType    = errors.New("unknown partner type")
)

const partnerInquiryStatusPending = "pending"

type PartnerInquiryInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	PartnerType string
	Message     string
}

type IPartnerInquiryUseCase interface {
	Submit(ctx context.Context, in PartnerInquiryInput) (entities.PartnerInquiry, error)
	List(ctx context.Context) ([]entities.PartnerInquiry, error)
}

type PartnerInquiryUseCase struct {
	repo interfaces.IPartnerInquiryRepository
	now  func() time.Time
}

var _ IPartnerInquiryUseCase = (*PartnerInquiryUseCase)(nil)

func NewPartnerInquiryUseCase(repo interfaces.IPartnerInquiryRepository) *PartnerInquiryUseCase {
	return &PartnerInquiryUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PartnerInquiryUseCase) Submit(ctx context.Context, in PartnerInquiryInput) (entities.PartnerInquiry, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	message := strings.TrimSpace(in.Message)
	if name == "" || phone == "" || message == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.PartnerType) == "" {
		return entities.PartnerInquiry{}, fmt.Errorf("%w: name, email, phone, partner type and message are required", ErrInvalidPartnerInquiry)
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.PartnerInquiry{}, fmt.Errorf("%w: email is not valid", ErrInvalidPartnerInquiry)
	}
	pt, ok := entities.ParsePartnerType(in.PartnerType)
	if !ok {
		return entities.PartnerInquiry{}, ErrUnknownPartnerType
	}

	p := entities.PartnerInquiry{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Company:     strings.TrimSpace(in.Company),
		PartnerType: pt,
		Message:     message,
		Status:      partnerInquiryStatusPending,
		SubmittedAt: u.now(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.PartnerInquiry{}, err
	}
	log.Printf("[partner][usecase] inquiry stored inquiry_id=%s partner_type=%s", created.ID, created.PartnerType)
	return created, nil
}

// List returns inquiries newest first.
func (u *PartnerInquiryUseCase) List(ctx context.Context) ([]entities.PartnerInquiry, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SubmittedAt.After(items[j].SubmittedAt) })
	return items, nil
}
