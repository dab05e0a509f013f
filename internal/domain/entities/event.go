package entities

import "time"

// DomainEvent is published after a state change has been persisted.
type DomainEvent struct {
	ID            string         `json:"id"`
	Type          string         `json:"event_type"`
	AggregateID   string         `json:"aggregate_id"`
	AggregateType string         `json:"aggregate_type"`
	Payload       map[string]any `json:"payload,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

const (
	AggregateBooking    = "booking"
	AggregateScrapBuyer = "scrap_buyer"
)

// BookingEventType maps a booking status to its event name, e.g. "booking.completed".
func BookingEventType(status BookingStatus) string {
	return "booking." + string(status)
}

const (
	EventBookingCreated = "booking.created"
	EventBuyerApproved  = "buyer.approved"
	EventBuyerRejected  = "buyer.rejected"
)
