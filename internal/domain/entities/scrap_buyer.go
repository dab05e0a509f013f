package entities

import (
	"regexp"
	"strings"
	"time"
)

// DefaultBuyerRejectionReason is used when staff reject an application without a reason.
const DefaultBuyerRejectionReason = "Application did not meet current requirements"

var panCardPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// NormalizePanCard upper-cases and trims a PAN, returning false when the result
// is not a well-formed PAN.
func NormalizePanCard(pan string) (string, bool) {
	pan = strings.ToUpper(strings.TrimSpace(pan))
	return pan, panCardPattern.MatchString(pan)
}

// ScrapBuyer is a scrap-collection operator account awaiting or holding staff approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI email-index: email
type ScrapBuyer struct {
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
