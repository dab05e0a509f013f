package response

import (
	"time"

	"wascrap/internal/domain/entities"
)

type BuyerResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	FullName        string     `json:"full_name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	PanCard         string     `json:"pan_card"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	Pincode         string     `json:"pincode"`
	CarNumber       string     `json:"car_number"`
	Verified        bool       `json:"verified"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromBuyer(b entities.ScrapBuyer) BuyerResponse {
	return BuyerResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		FullName:        b.FullName,
		Phone:           b.Phone,
		Email:           b.Email,
		PanCard:         b.PanCard,
		Address:         b.Address,
		City:            b.City,
		State:           b.State,
		Pincode:         b.Pincode,
		CarNumber:       b.CarNumber,
		Verified:        b.Verified,
		RejectionReason: b.RejectionReason,
		ReviewedAt:      b.ReviewedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBuyers(bs []entities.ScrapBuyer) []BuyerResponse {
	out := make([]BuyerResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBuyer(b))
	}
	return out
}
