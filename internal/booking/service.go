package booking

import (
	"context"
	"errors"
	"time"

	"sportbook/internal/apperr"
	"sportbook/internal/auth"
	"sportbook/internal/db"
	"sportbook/internal/email"
	"sportbook/internal/logger"
	"sportbook/internal/metrics"
	"sportbook/internal/pricing"
	"sportbook/internal/slot"
	"sportbook/internal/venue"
)

const (
	ReasonSlotNotFound  = "Slot not found"
	ReasonNotAvailable  = "Slot is not available"
	ReasonActiveBooking = "Slot already has an active booking"
	ReasonSlotInPast    = "Slot start time is in the past"

	maxAnalyticsDays = 366
)

var (
	errBookingNotFound  = apperr.NotFound("Booking not found")
	errSlotNotFound     = apperr.NotFound(ReasonSlotNotFound)
	errSlotTaken        = apperr.Conflict("Slot was booked by someone else, please re-check availability")
	errConcurrentUpdate = apperr.Conflict("Booking was modified concurrently, please retry")
	errAlreadyCancelled = apperr.BadRequest("Booking is already cancelled")
	errCompleted        = apperr.BadRequest("Completed bookings cannot be cancelled")
	errNotOwner         = apperr.Forbidden("You can only access your own bookings")
	errAdminOnly        = apperr.Forbidden("Admin access required")
)

type Service interface {
	CheckAvailability(ctx context.Context, slotID int) (*Availability, error)
	CreateBooking(ctx context.Context, actor auth.Actor, slotID int) (*Booking, error)
	CancelBooking(ctx context.Context, actor auth.Actor, id int) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, actor auth.Actor, id int, status Status) (*Booking, error)
	GetBooking(ctx context.Context, actor auth.Actor, id int) (*BookingWithDetails, error)
	ListMyBookings(ctx context.Context, actor auth.Actor, f Filter) ([]BookingWithDetails, int, error)
	ListBookings(ctx context.Context, actor auth.Actor, f Filter) ([]BookingWithDetails, int, error)
	Analytics(ctx context.Context, actor auth.Actor, groupBy GroupBy, from, to *pricing.Date) (*Analytics, error)
}

type service struct {
	repo     Repository
	slots    slot.Repository
	venues   venue.Repository
	tx       db.Transactor
	clock    Clock
	notifier Notifier
	loc      *time.Location
}

// NewService wires the booking engine. notifier may be nil; loc turns a slot
// date and "HH:MM" into an instant and defaults to UTC.
func NewService(
	repo Repository,
	slots slot.Repository,
	venues venue.Repository,
	tx db.Transactor,
	clock Clock,
	notifier Notifier,
	loc *time.Location,
) Service {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:     repo,
		slots:    slots,
		venues:   venues,
		tx:       tx,
		clock:    clock,
		notifier: notifier,
		loc:      loc,
	}
}

// translate maps errors escaping a transaction. Serialization failures and
// the one-active-booking index both surface as conflict.
func translate(err error, conflict *apperr.Error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if isRace(err) {
		return conflict
	}
	return apperr.Internal(err)
}

func isRace(err error) bool {
	return db.IsTxConflict(err) || db.IsUniqueViolation(err)
}

// unavailableReason returns "" when the slot can be booked right now,
// along with the slot's venue for pricing.
func (s *service) unavailableReason(ctx context.Context, sl *slot.Slot) (string, *venue.Venue, error) {
	if sl.Status != slot.StatusAvailable {
		return ReasonNotAvailable, nil, nil
	}

	v, err := s.venues.GetByID(ctx, sl.VenueID)
	if err != nil {
		return "", nil, err
	}
	if !v.IsActive {
		return ReasonNotAvailable, v, nil
	}

	active, err := s.slots.HasActiveBooking(ctx, sl.ID)
	if err != nil {
		return "", nil, err
	}
	if active {
		return ReasonActiveBooking, v, nil
	}

	start, err := pricing.StartInstant(sl.Date, sl.StartTime, s.loc)
	if err != nil {
		return "", nil, err
	}
	if start.Before(s.clock.Now()) {
		return ReasonSlotInPast, v, nil
	}
	return "", v, nil
}

func (s *service) CheckAvailability(ctx context.Context, slotID int) (*Availability, error) {
	sl, err := s.slots.GetByID(ctx, slotID)
	if errors.Is(err, slot.ErrSlotNotFound) {
		return &Availability{Available: false, Reason: ReasonSlotNotFound}, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	reason, _, err := s.unavailableReason(ctx, sl)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &Availability{Available: reason == "", Reason: reason, Slot: sl}, nil
}

// CreateBooking reserves the slot and inserts a PENDING booking in one
// serializable transaction. The slot row is locked and flipped with a
// compare-and-set, so concurrent callers see exactly one winner.
func (s *service) CreateBooking(ctx context.Context, actor auth.Actor, slotID int) (*Booking, error) {
	var created *Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sl, err := s.slots.GetByIDForUpdate(ctx, slotID)
		if errors.Is(err, slot.ErrSlotNotFound) {
			return errSlotNotFound
		}
		if err != nil {
			return err
		}

		reason, v, err := s.unavailableReason(ctx, sl)
		if err != nil {
			return err
		}
		if reason != "" {
			metrics.RecordBookingConflict("unavailable")
			return apperr.Conflict(reason)
		}

		hours, err := sl.DurationHours()
		if err != nil {
			return err
		}

		flipped, err := s.slots.UpdateStatusIfCurrent(ctx, sl.ID, slot.StatusAvailable, slot.StatusBooked)
		if err != nil {
			return err
		}
		if !flipped {
			metrics.RecordBookingConflict("lost_race")
			return errSlotTaken
		}

		created, err = s.repo.Create(ctx, &Booking{
			UserID:        actor.UserID,
			SlotID:        sl.ID,
			Status:        StatusPending,
			TotalPrice:    pricing.ComputePrice(hours, v.PricePerHour),
			PaymentStatus: PaymentPending,
		})
		return err
	})
	if err != nil {
		if isRace(err) {
			metrics.RecordBookingConflict("serialization")
		}
		return nil, translate(err, errSlotTaken)
	}

	metrics.RecordBookingCreated(created.TotalPrice)
	logger.Info("booking created",
		"booking_id", created.ID,
		"slot_id", created.SlotID,
		"user_id", created.UserID,
		"total_price", created.TotalPrice,
	)
	s.notify(ctx, created.ID, Notifier.SendBookingConfirmation)
	return created, nil
}

// CancelBooking frees the slot and records the refund earned by how far
// ahead of the slot start the cancellation happens.
func (s *service) CancelBooking(ctx context.Context, actor auth.Actor, id int) (*Booking, error) {
	var (
		updated *Booking
		percent int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByIDForUpdate(ctx, id)
		if errors.Is(err, ErrBookingNotFound) {
			return errBookingNotFound
		}
		if err != nil {
			return err
		}
		if !actor.CanAccess(b.UserID) {
			return errNotOwner
		}
		if !b.Status.CanTransitionTo(StatusCancelled) {
			if b.Status == StatusCompleted {
				return errCompleted
			}
			return errAlreadyCancelled
		}

		sl, err := s.slots.GetByIDForUpdate(ctx, b.SlotID)
		if err != nil {
			return err
		}
		start, err := pricing.StartInstant(sl.Date, sl.StartTime, s.loc)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		percent = pricing.RefundPercentage(start.Sub(now).Hours())
		refund := pricing.RefundAmount(b.TotalPrice, percent)

		if err := s.slots.SetStatus(ctx, sl.ID, slot.StatusAvailable); err != nil {
			return err
		}

		b.Status = StatusCancelled
		b.RefundAmount = &refund
		b.CancelledAt = &now
		if refund > 0 {
			b.PaymentStatus = PaymentRefunded
		}
		updated, err = s.repo.Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, translate(err, errConcurrentUpdate)
	}

	metrics.RecordBookingCancellation(percent, *updated.RefundAmount)
	logger.Info("booking cancelled",
		"booking_id", updated.ID,
		"by_user", actor.UserID,
		"refund_percent", percent,
		"refund_amount", *updated.RefundAmount,
	)
	s.notify(ctx, updated.ID, Notifier.SendCancellation)
	return updated, nil
}

// UpdateBookingStatus is an admin overwrite without transition guards. The
// slot follows the booking: leaving an active status frees it, entering one
// re-reserves it.
func (s *service) UpdateBookingStatus(ctx context.Context, actor auth.Actor, id int, status Status) (*Booking, error) {
	if !actor.IsAdmin {
		return nil, errAdminOnly
	}
	if !status.Valid() {
		return nil, apperr.BadRequest("Invalid booking status")
	}

	var (
		updated  *Booking
		previous Status
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByIDForUpdate(ctx, id)
		if errors.Is(err, ErrBookingNotFound) {
			return errBookingNotFound
		}
		if err != nil {
			return err
		}
		previous = b.Status

		switch {
		case status == StatusCancelled && previous.IsActive():
			if err := s.slots.SetStatus(ctx, b.SlotID, slot.StatusAvailable); err != nil {
				return err
			}
		case status.IsActive() && !previous.IsActive():
			flipped, err := s.slots.UpdateStatusIfCurrent(ctx, b.SlotID, slot.StatusAvailable, slot.StatusBooked)
			if err != nil {
				return err
			}
			if !flipped {
				return apperr.Conflict(ReasonNotAvailable)
			}
		}

		b.Status = status
		if status == StatusConfirmed {
			b.PaymentStatus = PaymentPaid
		}
		if status == StatusCancelled && b.CancelledAt == nil {
			now := s.clock.Now()
			b.CancelledAt = &now
		}
		updated, err = s.repo.Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, translate(err, errConcurrentUpdate)
	}

	metrics.RecordBooking(string(status))
	logger.Info("booking status updated",
		"booking_id", id,
		"from", previous,
		"to", status,
		"admin_id", actor.UserID,
	)
	if previous != status {
		s.notify(ctx, updated.ID, Notifier.SendStatusUpdate)
	}
	return updated, nil
}

// notify runs after commit; failures are logged and never fail the request.
func (s *service) notify(ctx context.Context, bookingID int, send func(Notifier, context.Context, email.BookingNotice) error) {
	if s.notifier == nil {
		return
	}
	d, err := s.repo.GetDetails(ctx, bookingID)
	if err != nil {
		logger.Warn("booking notification skipped", "booking_id", bookingID, "error", err)
		return
	}
	if err := send(s.notifier, ctx, noticeFor(d)); err != nil {
		logger.Warn("booking notification failed", "booking_id", bookingID, "error", err)
	}
}

func (s *service) GetBooking(ctx context.Context, actor auth.Actor, id int) (*BookingWithDetails, error) {
	d, err := s.repo.GetDetails(ctx, id)
	if errors.Is(err, ErrBookingNotFound) {
		return nil, errBookingNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !actor.CanAccess(d.UserID) {
		return nil, errNotOwner
	}
	return d, nil
}

func validateFilter(f *Filter) error {
	if f.Status != nil && !f.Status.Valid() {
		return apperr.BadRequest("Invalid booking status")
	}
	if f.From != nil && f.To != nil && f.To.Before(f.From.Time) {
		return apperr.BadRequest("from must not be after to")
	}
	if f.SortBy != "" {
		if _, ok := sortColumns[f.SortBy]; !ok {
			return apperr.BadRequest("sort_by must be one of created_at, date, total_price, status")
		}
	}
	f.Page, f.Limit = db.NormalizePage(f.Page, f.Limit)
	return nil
}

func (s *service) ListMyBookings(ctx context.Context, actor auth.Actor, f Filter) ([]BookingWithDetails, int, error) {
	userID := actor.UserID
	f.UserID = &userID
	if err := validateFilter(&f); err != nil {
		return nil, 0, err
	}

	bookings, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return bookings, total, nil
}

func (s *service) ListBookings(ctx context.Context, actor auth.Actor, f Filter) ([]BookingWithDetails, int, error) {
	if !actor.IsAdmin {
		return nil, 0, errAdminOnly
	}
	if err := validateFilter(&f); err != nil {
		return nil, 0, err
	}

	bookings, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return bookings, total, nil
}

// Analytics defaults to the last 30 days ending today in the service timezone.
func (s *service) Analytics(ctx context.Context, actor auth.Actor, groupBy GroupBy, from, to *pricing.Date) (*Analytics, error) {
	if !actor.IsAdmin {
		return nil, errAdminOnly
	}
	if groupBy == "" {
		groupBy = GroupByDay
	}
	if groupBy != GroupByDay && groupBy != GroupByVenue {
		return nil, apperr.BadRequest("group_by must be day or venue")
	}

	end := pricing.DateOf(s.clock.Now().In(s.loc))
	if to != nil {
		end = *to
	}
	start := end.AddDays(-29)
	if from != nil {
		start = *from
	}
	if end.Before(start.Time) {
		return nil, apperr.BadRequest("from must not be after to")
	}
	if end.Sub(start.Time) > maxAnalyticsDays*24*time.Hour {
		return nil, apperr.BadRequest("date range must not exceed 366 days")
	}

	out := &Analytics{GroupBy: groupBy, From: start, To: end}
	var err error
	switch groupBy {
	case GroupByDay:
		out.ByDay, err = s.repo.StatsByDay(ctx, start, end)
	case GroupByVenue:
		out.ByVenue, err = s.repo.StatsByVenue(ctx, start, end)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
