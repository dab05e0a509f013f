package interfaces

import (
	"context"
	"wascrap/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Lookups return a zero Booking (empty ID) when nothing matches.
// Transition only writes when the stored status still equals t.From and
// returns a zero Booking otherwise.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error)
	Transition(ctx context.Context, id string, t entities.BookingTransition) (entities.Booking, error)
}
