package slot

import (
	"context"
	"sort"
	"sync"
	"time"

	"sportbook/internal/pricing"
	"sportbook/internal/venue"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	mu       sync.Mutex
	nextID   int
	slots    map[int]*Slot
	bookings map[int]string // slot id -> booking status
}

func newMemRepo() *memRepo {
	return &memRepo{slots: map[int]*Slot{}, bookings: map[int]string{}}
}

func (r *memRepo) seed(venueID int, date pricing.Date, start, end string, status Status) *Slot {
	s, _ := r.Create(context.Background(), &Slot{VenueID: venueID, Date: date, StartTime: start, EndTime: end, Status: status})
	return s
}

func (r *memRepo) Create(_ context.Context, s *Slot) (*Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *s
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.slots[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	out := *s
	return &out, nil
}

func (r *memRepo) GetByIDForUpdate(ctx context.Context, id int) (*Slot, error) {
	return r.GetByID(ctx, id)
}

func (r *memRepo) ListByVenueAndDate(_ context.Context, venueID int, date pricing.Date) ([]Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Slot{}
	for _, s := range r.slots {
		if s.VenueID == venueID && s.Date.Equal(date) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *memRepo) List(ctx context.Context, venueID int, f Filter) ([]Slot, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Slot{}
	for _, s := range r.slots {
		if s.VenueID == venueID {
			out = append(out, *s)
		}
	}
	return out, len(out), nil
}

func (r *memRepo) Update(_ context.Context, s *Slot) (*Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[s.ID]; !ok {
		return nil, ErrSlotNotFound
	}
	cp := *s
	r.slots[s.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[id]; !ok {
		return ErrSlotNotFound
	}
	delete(r.slots, id)
	return nil
}

func (r *memRepo) HasActiveBooking(_ context.Context, slotID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.bookings[slotID]
	return st == "PENDING" || st == "CONFIRMED", nil
}

func (r *memRepo) HasUncancelledBooking(_ context.Context, slotID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.bookings[slotID]
	return ok && st != "CANCELLED", nil
}

func (r *memRepo) UpdateStatusIfCurrent(_ context.Context, id int, from, to Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (r *memRepo) SetStatus(_ context.Context, id int, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return ErrSlotNotFound
	}
	s.Status = to
	return nil
}

// passthroughTx runs fn inline; calls are serialised like a database would
// serialise conflicting serializable transactions.
type passthroughTx struct {
	mu sync.Mutex
}

func (t *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

type stubVenues struct {
	venues map[int]*venue.Venue
}

func newStubVenues(vs ...*venue.Venue) *stubVenues {
	m := map[int]*venue.Venue{}
	for _, v := range vs {
		m[v.ID] = v
	}
	return &stubVenues{venues: m}
}

func (s *stubVenues) Create(context.Context, *venue.Venue) (*venue.Venue, error) { return nil, nil }
func (s *stubVenues) Update(context.Context, *venue.Venue) (*venue.Venue, error) { return nil, nil }
func (s *stubVenues) Deactivate(context.Context, int) error                      { return nil }
func (s *stubVenues) List(context.Context, venue.Filter) ([]venue.Venue, int, error) {
	return nil, 0, nil
}

func (s *stubVenues) GetByID(_ context.Context, id int) (*venue.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, venue.ErrVenueNotFound
	}
	return v, nil
}
