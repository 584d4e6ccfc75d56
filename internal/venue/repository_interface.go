package venue

import "context"

type Repository interface {
	Create(ctx context.Context, v *Venue) (*Venue, error)
	GetByID(ctx context.Context, id int) (*Venue, error)
	Update(ctx context.Context, v *Venue) (*Venue, error)
	Deactivate(ctx context.Context, id int) error
	List(ctx context.Context, f Filter) ([]Venue, int, error)
}
