package slot

import (
	"context"
	"errors"

	"sportbook/internal/apperr"
	"sportbook/internal/auth"
	"sportbook/internal/db"
	"sportbook/internal/logger"
	"sportbook/internal/metrics"
	"sportbook/internal/pricing"
	"sportbook/internal/venue"
)

var (
	errSlotNotFound    = apperr.NotFound("Slot not found")
	errVenueNotFound   = apperr.NotFound("Venue not found")
	errOverlap         = apperr.Conflict("Slot overlaps with an existing slot")
	errConcurrentWrite = apperr.Conflict("Slot was modified concurrently, please retry")
)

type Service interface {
	HasOverlap(ctx context.Context, venueID int, date pricing.Date, start, end string, excludeSlotID *int) (bool, error)
	CreateSlot(ctx context.Context, actor auth.Actor, venueID int, req CreateSlotRequest) (*Slot, error)
	CreateBulkSlots(ctx context.Context, actor auth.Actor, venueID int, req BulkCreateRequest) (*BulkCreateResult, error)
	UpdateSlot(ctx context.Context, actor auth.Actor, id int, req UpdateSlotRequest) (*Slot, error)
	DeleteSlot(ctx context.Context, actor auth.Actor, id int) error
	GetSlot(ctx context.Context, id int) (*Slot, error)
	ListSlots(ctx context.Context, actor auth.Actor, venueID int, f Filter) ([]Slot, int, error)
}

type service struct {
	repo   Repository
	venues venue.Repository
	tx     db.Transactor
}

func NewService(repo Repository, venues venue.Repository, tx db.Transactor) Service {
	return &service{repo: repo, venues: venues, tx: tx}
}

func requireAdmin(actor auth.Actor) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("Admin access required")
	}
	return nil
}

// translate maps storage errors raised inside a transaction to app errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if db.IsTxConflict(err) {
		return errConcurrentWrite
	}
	return apperr.Internal(err)
}

func (s *service) HasOverlap(ctx context.Context, venueID int, date pricing.Date, start, end string, excludeSlotID *int) (bool, error) {
	candidate, err := IntervalOf(start, end)
	if err != nil {
		return false, err
	}

	existing, err := s.repo.ListByVenueAndDate(ctx, venueID, date)
	if err != nil {
		return false, err
	}

	for i := range existing {
		if excludeSlotID != nil && existing[i].ID == *excludeSlotID {
			continue
		}
		iv, err := existing[i].Interval()
		if err != nil {
			return false, err
		}
		if Overlaps(candidate, iv) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) requireVenue(ctx context.Context, venueID int) (*venue.Venue, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if errors.Is(err, venue.ErrVenueNotFound) {
		return nil, errVenueNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return v, nil
}

// creationStatus applies the default and rejects BOOKED, which only the
// booking flow may set.
func creationStatus(st *Status) (Status, error) {
	if st == nil {
		return StatusAvailable, nil
	}
	switch *st {
	case StatusAvailable, StatusBlocked:
		return *st, nil
	case StatusBooked:
		return "", apperr.BadRequest("Slots cannot be created as BOOKED")
	}
	return "", apperr.BadRequest("Invalid slot status")
}

func (s *service) CreateSlot(ctx context.Context, actor auth.Actor, venueID int, req CreateSlotRequest) (*Slot, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}

	date, err := pricing.ParseDate(req.Date)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	if _, err := pricing.DurationHours(req.StartTime, req.EndTime); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	status, err := creationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var created *Slot
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		overlap, err := s.HasOverlap(ctx, venueID, date, req.StartTime, req.EndTime, nil)
		if err != nil {
			return err
		}
		if overlap {
			return errOverlap
		}

		created, err = s.repo.Create(ctx, &Slot{
			VenueID:   venueID,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    status,
		})
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	metrics.RecordSlotsCreated("single", 1)
	logger.Info("slot created", "slot_id", created.ID, "venue_id", venueID, "date", date.String())
	return created, nil
}

type template struct {
	start, end string
	interval   Interval
}

// CreateBulkSlots creates dates x templates. Every generated slot is checked
// on its own against existing slots and the ones created earlier in the batch;
// overlapping ones are skipped rather than failing the batch. An end time at or
// before the start time rolls over into the next day.
func (s *service) CreateBulkSlots(ctx context.Context, actor auth.Actor, venueID int, req BulkCreateRequest) (*BulkCreateResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}
	if len(req.Dates) == 0 || len(req.TimeSlots) == 0 {
		return nil, apperr.BadRequest("dates and time_slots must not be empty")
	}

	dates := make([]pricing.Date, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, err := pricing.ParseDate(raw)
		if err != nil {
			return nil, apperr.BadRequest(err.Error())
		}
		dates = append(dates, d)
	}

	templates := make([]template, 0, len(req.TimeSlots))
	for _, tr := range req.TimeSlots {
		iv, err := IntervalOf(tr.StartTime, tr.EndTime)
		if err != nil {
			return nil, apperr.BadRequest(err.Error())
		}
		templates = append(templates, template{start: tr.StartTime, end: tr.EndTime, interval: iv})
	}

	status, err := creationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	result := &BulkCreateResult{Slots: []Slot{}}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		taken := make(map[string][]Interval, len(dates))
		for _, d := range dates {
			key := d.String()
			if _, loaded := taken[key]; !loaded {
				existing, err := s.repo.ListByVenueAndDate(ctx, venueID, d)
				if err != nil {
					return err
				}
				intervals := make([]Interval, 0, len(existing))
				for i := range existing {
					iv, err := existing[i].Interval()
					if err != nil {
						return err
					}
					intervals = append(intervals, iv)
				}
				taken[key] = intervals
			}

			for _, tpl := range templates {
				if overlapsAny(tpl.interval, taken[key]) {
					result.SkippedCount++
					continue
				}
				created, err := s.repo.Create(ctx, &Slot{
					VenueID:   venueID,
					Date:      d,
					StartTime: tpl.start,
					EndTime:   tpl.end,
					Status:    status,
				})
				if err != nil {
					return err
				}
				taken[key] = append(taken[key], tpl.interval)
				result.Slots = append(result.Slots, *created)
			}
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	result.CreatedCount = len(result.Slots)
	metrics.RecordSlotsCreated("bulk", result.CreatedCount)
	metrics.RecordSlotsSkipped(result.SkippedCount)
	logger.Info("bulk slots created",
		"venue_id", venueID,
		"created", result.CreatedCount,
		"skipped", result.SkippedCount,
	)
	return result, nil
}

func (s *service) UpdateSlot(ctx context.Context, actor auth.Actor, id int, req UpdateSlotRequest) (*Slot, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *Slot
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByIDForUpdate(ctx, id)
		if errors.Is(err, ErrSlotNotFound) {
			return errSlotNotFound
		}
		if err != nil {
			return err
		}

		next := *current
		if req.Date != nil {
			d, err := pricing.ParseDate(*req.Date)
			if err != nil {
				return apperr.BadRequest(err.Error())
			}
			next.Date = d
		}
		if req.StartTime != nil {
			next.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			next.EndTime = *req.EndTime
		}
		timeChanged := !next.Date.Equal(current.Date) ||
			next.StartTime != current.StartTime ||
			next.EndTime != current.EndTime

		active, err := s.repo.HasActiveBooking(ctx, id)
		if err != nil {
			return err
		}

		if req.Status != nil && *req.Status != current.Status {
			if !req.Status.Valid() {
				return apperr.BadRequest("Invalid slot status")
			}
			if *req.Status == StatusBooked {
				return apperr.BadRequest("BOOKED status is set by bookings only")
			}
			if active {
				return apperr.BadRequest("Cannot change the status of a slot with an active booking")
			}
			next.Status = *req.Status
		}

		if timeChanged {
			if active {
				return apperr.BadRequest("Cannot change the time of a slot with an active booking")
			}
			if err := validateMove(current, next); err != nil {
				return apperr.BadRequest(err.Error())
			}
			overlap, err := s.HasOverlap(ctx, current.VenueID, next.Date, next.StartTime, next.EndTime, &id)
			if err != nil {
				return err
			}
			if overlap {
				return errOverlap
			}
		}

		updated, err = s.repo.Update(ctx, &next)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	logger.Info("slot updated", "slot_id", id, "admin_id", actor.UserID)
	return updated, nil
}

// validateMove checks the interval of an updated slot. A slot moved to
// another date with its times untouched keeps any next-day rollover it was
// created with.
func validateMove(current *Slot, next Slot) error {
	if next.StartTime == current.StartTime && next.EndTime == current.EndTime {
		_, err := IntervalOf(next.StartTime, next.EndTime)
		return err
	}
	_, err := pricing.DurationHours(next.StartTime, next.EndTime)
	return err
}

// DeleteSlot refuses while a non-cancelled booking (active or completed)
// references the slot.
func (s *service) DeleteSlot(ctx context.Context, actor auth.Actor, id int) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByIDForUpdate(ctx, id); err != nil {
			if errors.Is(err, ErrSlotNotFound) {
				return errSlotNotFound
			}
			return err
		}

		inUse, err := s.repo.HasUncancelledBooking(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return apperr.BadRequest("Cannot delete a slot that has bookings")
		}

		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return translate(err)
	}

	logger.Info("slot deleted", "slot_id", id, "admin_id", actor.UserID)
	return nil
}

func (s *service) GetSlot(ctx context.Context, id int) (*Slot, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrSlotNotFound) {
		return nil, errSlotNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return sl, nil
}

func (s *service) ListSlots(ctx context.Context, actor auth.Actor, venueID int, f Filter) ([]Slot, int, error) {
	v, err := s.requireVenue(ctx, venueID)
	if err != nil {
		return nil, 0, err
	}
	if !v.IsActive && !actor.IsAdmin {
		return nil, 0, errVenueNotFound
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, 0, apperr.BadRequest("Invalid slot status")
	}
	f.Page, f.Limit = db.NormalizePage(f.Page, f.Limit)

	slots, total, err := s.repo.List(ctx, venueID, f)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return slots, total, nil
}
