package entities

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle of a pickup booking.
//
// Domain notes:
//   - Customers only ever create bookings in BookingStatusPending.
//   - Staff move bookings forward; completed and cancelled are terminal.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
}

// ParseBookingStatus returns false for anything outside the five known states.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch st := BookingStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return st, true
	}
	return "", false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether a booking in status s may move to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ScrapItem is one {material type, weight} pair of a booking.
type ScrapItem struct {
	Type   ScrapType `json:"type"`
	Weight float64   `json:"weight"`
}

// PickupSlot is the preferred time window chosen by the customer.
type PickupSlot string

const (
	PickupSlotMorning   PickupSlot = "morning"
	PickupSlotAfternoon PickupSlot = "afternoon"
	PickupSlotEvening   PickupSlot = "evening"
)

func (p PickupSlot) Valid() bool {
	switch p {
	case PickupSlotMorning, PickupSlotAfternoon, PickupSlotEvening:
		return true
	}
	return false
}

// Booking is a customer's request for scrap pickup.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-index: status (sort: created_at)
//   - GSI user_id-index: user_id (sort: created_at)
type Booking struct {
	ID                  string        `json:"id"`
	UserID              string        `json:"user_id"`
	FullName            string        `json:"full_name"`
	Email               string        `json:"email"`
	Phone               string        `json:"phone"`
	Address             string        `json:"address"`
	City                string        `json:"city"`
	District            string        `json:"district"`
	State               string        `json:"state"`
	Pincode             string        `json:"pincode"`
	ScrapTypes          []ScrapItem   `json:"scrap_types"`
	TotalWeight         float64       `json:"total_weight"`
	EstimatedValue      float64       `json:"estimated_value"`
	OwnTransport        bool          `json:"own_transport"`
	PickupDate          string        `json:"pickup_date"`
	PickupTime          PickupSlot    `json:"pickup_time"`
	SpecialInstructions string        `json:"special_instructions"`
	Status              BookingStatus `json:"status"`
	CompletedBy         string        `json:"completed_by,omitempty"`
	CancellationReason  string        `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	CompletedAt         *time.Time    `json:"completed_at,omitempty"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`
}

func (b Booking) CanTransitionTo(next BookingStatus) bool {
	return b.Status.CanTransitionTo(next)
}

// BookingTransition describes the fields written together with a status change.
type BookingTransition struct {
	From               BookingStatus
	To                 BookingStatus
	At                 time.Time
	CompletedBy        string
	CancellationReason string
}

// Apply returns a copy of b with the transition applied.
func (t BookingTransition) Apply(b Booking) Booking {
	b.Status = t.To
	b.UpdatedAt = t.At
	switch t.To {
	case BookingStatusCompleted:
		at := t.At
		b.CompletedAt = &at
		b.CompletedBy = t.CompletedBy
	case BookingStatusCancelled:
		at := t.At
		b.CancelledAt = &at
		b.CancellationReason = t.CancellationReason
	}
	return b
}

// BookingFilter narrows booking listings. Empty fields are ignored.
type BookingFilter struct {
	Status BookingStatus
	UserID string
}
