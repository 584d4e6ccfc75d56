package booking

import (
	"context"
	"sync"
	"time"

	"sportbook/internal/email"
	"sportbook/internal/pricing"
	"sportbook/internal/slot"
	"sportbook/internal/venue"
)

// store backs both the slot and booking fakes so that slot queries can see
// bookings, like the real tables do.
type store struct {
	mu          sync.Mutex
	nextSlot    int
	nextBooking int
	slots       map[int]*slot.Slot
	bookings    map[int]*Booking
	venues      map[int]*venue.Venue
}

func newStore(vs ...*venue.Venue) *store {
	st := &store{
		slots:    map[int]*slot.Slot{},
		bookings: map[int]*Booking{},
		venues:   map[int]*venue.Venue{},
	}
	for _, v := range vs {
		st.venues[v.ID] = v
	}
	return st
}

func (st *store) addSlot(venueID int, date pricing.Date, start, end string, status slot.Status) *slot.Slot {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextSlot++
	s := &slot.Slot{ID: st.nextSlot, VenueID: venueID, Date: date, StartTime: start, EndTime: end, Status: status}
	st.slots[s.ID] = s
	out := *s
	return &out
}

func (st *store) addBooking(b Booking) *Booking {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextBooking++
	b.ID = st.nextBooking
	st.bookings[b.ID] = &b
	out := b
	return &out
}

func (st *store) slotStatus(id int) slot.Status {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.slots[id].Status
}

// slotRepo implements slot.Repository over the store.
type slotRepo struct{ st *store }

func (r slotRepo) Create(context.Context, *slot.Slot) (*slot.Slot, error) { return nil, nil }
func (r slotRepo) ListByVenueAndDate(context.Context, int, pricing.Date) ([]slot.Slot, error) {
	return nil, nil
}
func (r slotRepo) List(context.Context, int, slot.Filter) ([]slot.Slot, int, error) {
	return nil, 0, nil
}
func (r slotRepo) Update(context.Context, *slot.Slot) (*slot.Slot, error) { return nil, nil }
func (r slotRepo) Delete(context.Context, int) error                      { return nil }

func (r slotRepo) GetByID(_ context.Context, id int) (*slot.Slot, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	s, ok := r.st.slots[id]
	if !ok {
		return nil, slot.ErrSlotNotFound
	}
	out := *s
	return &out, nil
}

func (r slotRepo) GetByIDForUpdate(ctx context.Context, id int) (*slot.Slot, error) {
	return r.GetByID(ctx, id)
}

func (r slotRepo) HasActiveBooking(_ context.Context, slotID int) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, b := range r.st.bookings {
		if b.SlotID == slotID && b.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r slotRepo) HasUncancelledBooking(_ context.Context, slotID int) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, b := range r.st.bookings {
		if b.SlotID == slotID && b.Status != StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r slotRepo) UpdateStatusIfCurrent(_ context.Context, id int, from, to slot.Status) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	s, ok := r.st.slots[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (r slotRepo) SetStatus(_ context.Context, id int, to slot.Status) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	s, ok := r.st.slots[id]
	if !ok {
		return slot.ErrSlotNotFound
	}
	s.Status = to
	return nil
}

// bookingRepo implements Repository over the store.
type bookingRepo struct{ st *store }

func (r bookingRepo) Create(_ context.Context, b *Booking) (*Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.nextBooking++
	cp := *b
	cp.ID = r.st.nextBooking
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.st.bookings[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r bookingRepo) GetByID(_ context.Context, id int) (*Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (r bookingRepo) GetByIDForUpdate(ctx context.Context, id int) (*Booking, error) {
	return r.GetByID(ctx, id)
}

func (r bookingRepo) GetDetails(_ context.Context, id int) (*BookingWithDetails, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	d := &BookingWithDetails{Booking: *b, UserName: "Player", UserEmail: "player@example.com"}
	if s, ok := r.st.slots[b.SlotID]; ok {
		d.SlotDate, d.StartTime, d.EndTime, d.VenueID = s.Date, s.StartTime, s.EndTime, s.VenueID
		if v, ok := r.st.venues[s.VenueID]; ok {
			d.VenueName, d.VenueAddress = v.Name, v.Address
		}
	}
	return d, nil
}

func (r bookingRepo) Update(_ context.Context, b *Booking) (*Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.bookings[b.ID]; !ok {
		return nil, ErrBookingNotFound
	}
	cp := *b
	cp.UpdatedAt = time.Now()
	r.st.bookings[b.ID] = &cp
	out := cp
	return &out, nil
}

func (r bookingRepo) List(_ context.Context, f Filter) ([]BookingWithDetails, int, error) {
	r.st.mu.Lock()
	ids := make([]int, 0, len(r.st.bookings))
	for id, b := range r.st.bookings {
		if f.UserID != nil && b.UserID != *f.UserID {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		ids = append(ids, id)
	}
	r.st.mu.Unlock()

	out := []BookingWithDetails{}
	for _, id := range ids {
		d, _ := r.GetDetails(context.Background(), id)
		out = append(out, *d)
	}
	return out, len(out), nil
}

func (r bookingRepo) StatsByDay(context.Context, pricing.Date, pricing.Date) ([]StatsByDay, error) {
	return []StatsByDay{{BookingsCreated: 1}}, nil
}

func (r bookingRepo) StatsByVenue(context.Context, pricing.Date, pricing.Date) ([]StatsByVenue, error) {
	return []StatsByVenue{{VenueID: 1, BookingsCreated: 1}}, nil
}

type venueRepo struct{ st *store }

func (r venueRepo) Create(context.Context, *venue.Venue) (*venue.Venue, error) { return nil, nil }
func (r venueRepo) Update(context.Context, *venue.Venue) (*venue.Venue, error) { return nil, nil }
func (r venueRepo) Deactivate(context.Context, int) error                      { return nil }
func (r venueRepo) List(context.Context, venue.Filter) ([]venue.Venue, int, error) {
	return nil, 0, nil
}

func (r venueRepo) GetByID(_ context.Context, id int) (*venue.Venue, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	v, ok := r.st.venues[id]
	if !ok {
		return nil, venue.ErrVenueNotFound
	}
	out := *v
	return &out, nil
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

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *recordingNotifier) record(kind string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, kind)
	return nil
}

func (n *recordingNotifier) SendBookingConfirmation(context.Context, email.BookingNotice) error {
	return n.record("confirmation")
}

func (n *recordingNotifier) SendCancellation(context.Context, email.BookingNotice) error {
	return n.record("cancellation")
}

func (n *recordingNotifier) SendStatusUpdate(context.Context, email.BookingNotice) error {
	return n.record("status")
}

func (n *recordingNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}
