package request

import (
	"strings"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase"
)

type ScrapItemRequest struct {
	Type   string  `json:"type" binding:"required"`
	Weight float64 `json:"weight"`
}

// CreateBookingRequest mirrors the four steps of the pickup form:
// contact, address, scrap items and schedule.
type CreateBookingRequest struct {
	FullName            string             `json:"full_name"`
	Email               string             `json:"email"`
	Phone               string             `json:"phone"`
	HouseNumber         string             `json:"house_number"`
	Village             string             `json:"village"`
	City                string             `json:"city"`
	District            string             `json:"district"`
	State               string             `json:"state"`
	Pincode             string             `json:"pincode"`
	ScrapItems          []ScrapItemRequest `json:"scrap_items" binding:"required,dive"`
	OwnTransport        bool               `json:"own_transport"`
	PickupDate          string             `json:"pickup_date"`
	PickupTime          string             `json:"pickup_time"`
	SpecialInstructions string             `json:"special_instructions"`
}

// ToInput keeps unknown scrap types as-is so the use case can reject them.
func (r CreateBookingRequest) ToInput() usecase.BookingInput {
	items := make([]entities.ScrapItem, 0, len(r.ScrapItems))
	for _, it := range r.ScrapItems {
		items = append(items, entities.ScrapItem{
			Type:   entities.ScrapType(strings.ToLower(strings.TrimSpace(it.Type))),
			Weight: it.Weight,
		})
	}
	return usecase.BookingInput{
		FullName:            r.FullName,
		Email:               r.Email,
		Phone:               r.Phone,
		HouseNumber:         r.HouseNumber,
		Village:             r.Village,
		City:                r.City,
		District:            r.District,
		State:               r.State,
		Pincode:             r.Pincode,
		ScrapItems:          items,
		OwnTransport:        r.OwnTransport,
		PickupDate:          r.PickupDate,
		PickupTime:          r.PickupTime,
		SpecialInstructions: r.SpecialInstructions,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
