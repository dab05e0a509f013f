package entities

import "time"

type NotificationType string

const (
	NotificationOrderCompleted  NotificationType = "order_completed"
	NotificationOrderCancelled  NotificationType = "order_cancelled"
	NotificationBuyerApproved   NotificationType = "buyer_approved"
	NotificationBuyerRejected   NotificationType = "buyer_rejected"
	NotificationBookingReceived NotificationType = "booking_received"
	NotificationBookingAlert    NotificationType = "booking_alert"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationOrderCompleted, NotificationOrderCancelled, NotificationBuyerApproved,
		NotificationBuyerRejected, NotificationBookingReceived, NotificationBookingAlert:
		return true
	}
	return false
}

// Notification records an outgoing email and whether the provider accepted it.
type Notification struct {
	ID                string           `json:"id"`
	Type              NotificationType `json:"notification_type"`
	BookingID         string           `json:"booking_id,omitempty"`
	ScrapBuyerID      string           `json:"scrap_buyer_id,omitempty"`
	Recipient         string           `json:"recipient"`
	EmailSent         bool             `json:"email_sent"`
	ProviderMessageID string           `json:"provider_message_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// Email is a rendered message ready for delivery.
type Email struct {
	To      []string
	Subject string
	HTML    string
}
