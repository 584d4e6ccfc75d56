package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *Review) (*Review, error)
	GetByID(ctx context.Context, id int) (*Review, error)
	Update(ctx context.Context, r *Review) (*Review, error)
	Delete(ctx context.Context, id int) error
	ListByVenue(ctx context.Context, venueID int, f Filter) ([]Review, int, error)
	Exists(ctx context.Context, userID, venueID int) (bool, error)
	// HasCompletedBooking reports whether the user finished a booking on
	// any slot of the venue.
	HasCompletedBooking(ctx context.Context, userID, venueID int) (bool, error)
}
