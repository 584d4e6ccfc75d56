package slot

import (
	"context"

	"sportbook/internal/pricing"
)

type Repository interface {
	Create(ctx context.Context, s *Slot) (*Slot, error)
	GetByID(ctx context.Context, id int) (*Slot, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int) (*Slot, error)
	ListByVenueAndDate(ctx context.Context, venueID int, date pricing.Date) ([]Slot, error)
	List(ctx context.Context, venueID int, f Filter) ([]Slot, int, error)
	Update(ctx context.Context, s *Slot) (*Slot, error)
	Delete(ctx context.Context, id int) error
	HasActiveBooking(ctx context.Context, slotID int) (bool, error)
	HasUncancelledBooking(ctx context.Context, slotID int) (bool, error)
	// UpdateStatusIfCurrent changes the status only when it still equals from.
	UpdateStatusIfCurrent(ctx context.Context, id int, from, to Status) (bool, error)
	SetStatus(ctx context.Context, id int, to Status) error
}
