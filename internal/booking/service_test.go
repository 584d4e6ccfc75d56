package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"sportbook/internal/apperr"
	"sportbook/internal/auth"
	"sportbook/internal/pricing"
	"sportbook/internal/slot"
	"sportbook/internal/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin    = auth.Actor{UserID: 1, IsAdmin: true}
	player   = auth.Actor{UserID: 2}
	stranger = auth.Actor{UserID: 3}

	playDay   = pricing.NewDate(2030, time.June, 10)
	slotStart = time.Date(2030, time.June, 10, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc      *service
	st       *store
	clock    *fixedClock
	notifier *recordingNotifier
}

func newFixture() *fixture {
	st := newStore(
		&venue.Venue{ID: 1, Name: "Smash Arena", Address: "1 Court Rd", PricePerHour: 40, IsActive: true},
		&venue.Venue{ID: 2, Name: "Old Hall", PricePerHour: 30, IsActive: false},
	)
	clock := &fixedClock{now: time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)}
	notifier := &recordingNotifier{}
	svc := NewService(bookingRepo{st}, slotRepo{st}, venueRepo{st}, &passthroughTx{}, clock, notifier, time.UTC).(*service)
	return &fixture{svc: svc, st: st, clock: clock, notifier: notifier}
}

func TestStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))

	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, Status("LOST").Valid())
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	free := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)
	blocked := f.st.addSlot(1, playDay, "12:00", "13:00", slot.StatusBlocked)
	held := f.st.addSlot(1, playDay, "13:00", "14:00", slot.StatusAvailable)
	f.st.addBooking(Booking{UserID: 9, SlotID: held.ID, Status: StatusConfirmed})
	past := f.st.addSlot(1, pricing.NewDate(2030, time.May, 31), "10:00", "11:00", slot.StatusAvailable)
	closed := f.st.addSlot(2, playDay, "10:00", "11:00", slot.StatusAvailable)

	cases := []struct {
		name      string
		slotID    int
		available bool
		reason    string
	}{
		{"available", free.ID, true, ""},
		{"missing", 999, false, ReasonSlotNotFound},
		{"blocked", blocked.ID, false, ReasonNotAvailable},
		{"active booking", held.ID, false, ReasonActiveBooking},
		{"past", past.ID, false, ReasonSlotInPast},
		{"inactive venue", closed.ID, false, ReasonNotAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := f.svc.CheckAvailability(ctx, tc.slotID)
			require.NoError(t, err)
			assert.Equal(t, tc.available, a.Available)
			assert.Equal(t, tc.reason, a.Reason)
		})
	}
}

func TestEndToEnd_BookThenCancelWithFullRefund(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)

	b, err := f.svc.CreateBooking(ctx, player, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, b.TotalPrice)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentPending, b.PaymentStatus)
	assert.Equal(t, slot.StatusBooked, f.st.slotStatus(s.ID))

	f.clock.Set(slotStart.Add(-30 * time.Hour))
	cancelled, err := f.svc.CancelBooking(ctx, player, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.RefundAmount)
	assert.Equal(t, 80.0, *cancelled.RefundAmount)
	assert.Equal(t, PaymentRefunded, cancelled.PaymentStatus)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, slot.StatusAvailable, f.st.slotStatus(s.ID))

	assert.Equal(t, []string{"confirmation", "cancellation"}, f.notifier.kinds())
}

func TestCreateBooking_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	blocked := f.st.addSlot(1, playDay, "08:00", "09:00", slot.StatusBlocked)
	closed := f.st.addSlot(2, playDay, "08:00", "09:00", slot.StatusAvailable)

	_, err := f.svc.CreateBooking(ctx, player, 404)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = f.svc.CreateBooking(ctx, player, blocked.ID)
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, ReasonNotAvailable, apperr.Message(err))

	a, err := f.svc.CheckAvailability(ctx, closed.ID)
	require.NoError(t, err)
	require.False(t, a.Available)

	_, err = f.svc.CreateBooking(ctx, player, closed.ID)
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, a.Reason, apperr.Message(err))
	assert.Equal(t, slot.StatusAvailable, f.st.slotStatus(closed.ID))
}

func TestCreateBooking_SecondCallerSeesConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s := f.st.addSlot(1, playDay, "10:00", "11:30", slot.StatusAvailable)

	b, err := f.svc.CreateBooking(ctx, player, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 60.0, b.TotalPrice)

	_, err = f.svc.CreateBooking(ctx, stranger, s.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestCreateBooking_ConcurrentCallersExactlyOneWins(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)

	const callers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			<-start
			_, err := f.svc.CreateBooking(ctx, auth.Actor{UserID: userID}, s.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperr.Is(err, apperr.KindConflict):
				conflicts++
			}
		}(100 + i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)
	assert.Equal(t, slot.StatusBooked, f.st.slotStatus(s.ID))

	active, err := slotRepo{f.st}.HasActiveBooking(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestCancelBooking_RefundWindows(t *testing.T) {
	cases := []struct {
		name    string
		before  time.Duration
		refund  float64
		payment PaymentStatus
	}{
		{"25 hours", 25 * time.Hour, 80, PaymentRefunded},
		{"exactly 24 hours", 24 * time.Hour, 40, PaymentRefunded},
		{"exactly 12 hours", 12 * time.Hour, 40, PaymentRefunded},
		{"just under 12 hours", 12*time.Hour - time.Minute, 0, PaymentPending},
		{"after start", -time.Hour, 0, PaymentPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()
			s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)

			b, err := f.svc.CreateBooking(ctx, player, s.ID)
			require.NoError(t, err)

			f.clock.Set(slotStart.Add(-tc.before))
			cancelled, err := f.svc.CancelBooking(ctx, player, b.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.refund, *cancelled.RefundAmount)
			assert.Equal(t, tc.payment, cancelled.PaymentStatus)
			assert.Equal(t, slot.StatusAvailable, f.st.slotStatus(s.ID))
		})
	}
}

func TestCancelBooking_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)

	b, err := f.svc.CreateBooking(ctx, player, s.ID)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(ctx, player, 404)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = f.svc.CancelBooking(ctx, stranger, b.ID)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = f.svc.CancelBooking(ctx, admin, b.ID)
	require.NoError(t, err, "admins may cancel any booking")

	for i := 0; i < 3; i++ {
		_, err = f.svc.CancelBooking(ctx, player, b.ID)
		require.True(t, apperr.Is(err, apperr.KindBadRequest))
		assert.Equal(t, "Booking is already cancelled", apperr.Message(err))
	}

	done := f.st.addBooking(Booking{UserID: player.UserID, SlotID: s.ID, Status: StatusCompleted, TotalPrice: 80})
	_, err = f.svc.CancelBooking(ctx, player, done.ID)
	require.True(t, apperr.Is(err, apperr.KindBadRequest))
	assert.Equal(t, "Completed bookings cannot be cancelled", apperr.Message(err))
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm marks paid", func(t *testing.T) {
		f := newFixture()
		s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)
		b, err := f.svc.CreateBooking(ctx, player, s.ID)
		require.NoError(t, err)

		updated, err := f.svc.UpdateBookingStatus(ctx, admin, b.ID, StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, updated.Status)
		assert.Equal(t, PaymentPaid, updated.PaymentStatus)
		assert.Equal(t, slot.StatusBooked, f.st.slotStatus(s.ID))
		assert.Contains(t, f.notifier.kinds(), "status")
	})

	t.Run("cancel frees slot", func(t *testing.T) {
		f := newFixture()
		s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)
		b, err := f.svc.CreateBooking(ctx, player, s.ID)
		require.NoError(t, err)

		updated, err := f.svc.UpdateBookingStatus(ctx, admin, b.ID, StatusCancelled)
		require.NoError(t, err)
		assert.NotNil(t, updated.CancelledAt)
		assert.Equal(t, slot.StatusAvailable, f.st.slotStatus(s.ID))
	})

	t.Run("resurrect re-reserves slot", func(t *testing.T) {
		f := newFixture()
		s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)
		old := f.st.addBooking(Booking{UserID: player.UserID, SlotID: s.ID, Status: StatusCancelled, TotalPrice: 80})

		updated, err := f.svc.UpdateBookingStatus(ctx, admin, old.ID, StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, updated.Status)
		assert.Equal(t, slot.StatusBooked, f.st.slotStatus(s.ID))
	})

	t.Run("resurrect onto a taken slot conflicts", func(t *testing.T) {
		f := newFixture()
		s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)
		old := f.st.addBooking(Booking{UserID: player.UserID, SlotID: s.ID, Status: StatusCancelled})
		_, err := f.svc.CreateBooking(ctx, stranger, s.ID)
		require.NoError(t, err)

		_, err = f.svc.UpdateBookingStatus(ctx, admin, old.ID, StatusPending)
		assert.True(t, apperr.Is(err, apperr.KindConflict))
	})

	t.Run("errors", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.UpdateBookingStatus(ctx, player, 1, StatusConfirmed)
		assert.True(t, apperr.Is(err, apperr.KindForbidden))

		_, err = f.svc.UpdateBookingStatus(ctx, admin, 1, Status("LOST"))
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))

		_, err = f.svc.UpdateBookingStatus(ctx, admin, 404, StatusConfirmed)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestGetBooking_OwnerOrAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	s := f.st.addSlot(1, playDay, "10:00", "12:00", slot.StatusAvailable)
	b, err := f.svc.CreateBooking(ctx, player, s.ID)
	require.NoError(t, err)

	d, err := f.svc.GetBooking(ctx, player, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smash Arena", d.VenueName)

	_, err = f.svc.GetBooking(ctx, admin, b.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetBooking(ctx, stranger, b.ID)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.st.addBooking(Booking{UserID: player.UserID, SlotID: 1, Status: StatusPending})
	f.st.addBooking(Booking{UserID: stranger.UserID, SlotID: 1, Status: StatusCancelled})

	mine, total, err := f.svc.ListMyBookings(ctx, player, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, player.UserID, mine[0].UserID)

	_, _, err = f.svc.ListBookings(ctx, player, Filter{})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	all, _, err := f.svc.ListBookings(ctx, admin, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bad := Status("LOST")
	_, _, err = f.svc.ListBookings(ctx, admin, Filter{Status: &bad})
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))

	_, _, err = f.svc.ListBookings(ctx, admin, Filter{SortBy: "password"})
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	out, err := f.svc.Analytics(ctx, admin, "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, GroupByDay, out.GroupBy)
	assert.Equal(t, "2030-06-01", out.To.String())
	assert.Equal(t, "2030-05-03", out.From.String())
	assert.Len(t, out.ByDay, 1)

	out, err = f.svc.Analytics(ctx, admin, GroupByVenue, nil, nil)
	require.NoError(t, err)
	assert.Len(t, out.ByVenue, 1)

	_, err = f.svc.Analytics(ctx, player, GroupByDay, nil, nil)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = f.svc.Analytics(ctx, admin, "month", nil, nil)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))

	from := pricing.NewDate(2030, time.June, 5)
	to := pricing.NewDate(2030, time.June, 1)
	_, err = f.svc.Analytics(ctx, admin, GroupByDay, &from, &to)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
}
