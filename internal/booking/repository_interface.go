package booking

import (
	"context"

	"sportbook/internal/pricing"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int) (*Booking, error)
	GetDetails(ctx context.Context, id int) (*BookingWithDetails, error)
	// Update persists status, payment status, refund amount and cancelled_at.
	Update(ctx context.Context, b *Booking) (*Booking, error)
	List(ctx context.Context, f Filter) ([]BookingWithDetails, int, error)

	StatsByDay(ctx context.Context, from, to pricing.Date) ([]StatsByDay, error)
	StatsByVenue(ctx context.Context, from, to pricing.Date) ([]StatsByVenue, error)
}
