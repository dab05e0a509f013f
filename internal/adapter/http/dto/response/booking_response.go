package response

import (
	"time"

	"wascrap/internal/domain/entities"
)

type ScrapItemResponse struct {
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

type BookingResponse struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"user_id"`
	FullName            string              `json:"full_name"`
	Email               string              `json:"email"`
	Phone               string              `json:"phone"`
	Address             string              `json:"address"`
	City                string              `json:"city"`
	District            string              `json:"district"`
	State               string              `json:"state"`
	Pincode             string              `json:"pincode"`
	ScrapTypes          []ScrapItemResponse `json:"scrap_types"`
	TotalWeight         float64             `json:"total_weight"`
	EstimatedValue      float64             `json:"estimated_value"`
	OwnTransport        bool                `json:"own_transport"`
	PickupDate          string              `json:"pickup_date"`
	PickupTime          string              `json:"pickup_time"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	Status              string              `json:"status"`
	CompletedBy         string              `json:"completed_by,omitempty"`
	CancellationReason  string              `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	CompletedAt         *time.Time          `json:"completed_at,omitempty"`
	CancelledAt         *time.Time          `json:"cancelled_at,omitempty"`
}

func FromBooking(b entities.Booking) BookingResponse {
	items := make([]ScrapItemResponse, 0, len(b.ScrapTypes))
	for _, it := range b.ScrapTypes {
		items = append(items, ScrapItemResponse{Type: string(it.Type), Weight: it.Weight})
	}
	return BookingResponse{
		ID:                  b.ID,
		UserID:              b.UserID,
		FullName:            b.FullName,
		Email:               b.Email,
		Phone:               b.Phone,
		Address:             b.Address,
		City:                b.City,
		District:            b.District,
		State:               b.State,
		Pincode:             b.Pincode,
		ScrapTypes:          items,
		TotalWeight:         b.TotalWeight,
		EstimatedValue:      b.EstimatedValue,
		OwnTransport:        b.OwnTransport,
		PickupDate:          b.PickupDate,
		PickupTime:          string(b.PickupTime),
		SpecialInstructions: b.SpecialInstructions,
		Status:              string(b.Status),
		CompletedBy:         b.CompletedBy,
		CancellationReason:  b.CancellationReason,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
		CompletedAt:         b.CompletedAt,
		CancelledAt:         b.CancelledAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
