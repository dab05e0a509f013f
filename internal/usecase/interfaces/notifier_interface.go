package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

// INotifier sends the customer/buyer emails that follow a state change.
// Callers treat failures as best-effort.
type INotifier interface {
	NotifyBookingReceived(ctx context.Context, b entities.Booking) error
	NotifyBookingStatus(ctx context.Context, b entities.Booking) error
	NotifyBuyerReview(ctx context.Context, buyer entities.ScrapBuyer) error
}
