package entities

import (
	"strings"
	"time"
)

type PartnerType string

const (
	PartnerTypeInvestor    PartnerType = "investors"
	PartnerTypeTransporter PartnerType = "transporters"
	PartnerTypeRecycler    PartnerType = "recyclers"
	PartnerTypeNGO         PartnerType = "ngo"
)

func ParsePartnerType(s string) (PartnerType, bool) {
	switch t := PartnerType(strings.ToLower(strings.TrimSpace(s))); t {
	case PartnerTypeInvestor, PartnerTypeTransporter, PartnerTypeRecycler, PartnerTypeNGO:
		return t, true
	}
	return "", false
}

// PartnerInquiry is a business partnership lead submitted from the public site.
type PartnerInquiry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Company     string      `json:"company"`
	PartnerType PartnerType `json:"partner_type"`
	Message     string      `json:"message"`
	Status      string      `json:"status"`
	SubmittedAt time.Time   `json:"submitted_at"`
}
