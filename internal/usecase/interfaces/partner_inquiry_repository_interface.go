package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

type IPartnerInquiryRepository interface {
	Create(ctx context.Context, p entities.PartnerInquiry) (entities.PartnerInquiry, error)
	List(ctx context.Context) ([]entities.PartnerInquiry, error)
}
