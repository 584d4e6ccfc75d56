package venue

import (
	"context"
	"errors"
	"strings"

	"sportbook/internal/apperr"
	"sportbook/internal/auth"
	"sportbook/internal/db"
	"sportbook/internal/logger"
)

var errVenueNotFound = apperr.NotFound("Venue not found")

type Service interface {
	Create(ctx context.Context, actor auth.Actor, req CreateVenueRequest) (*Venue, error)
	Update(ctx context.Context, actor auth.Actor, id int, req UpdateVenueRequest) (*Venue, error)
	Delete(ctx context.Context, actor auth.Actor, id int) error
	Get(ctx context.Context, actor auth.Actor, id int) (*Venue, error)
	List(ctx context.Context, actor auth.Actor, f Filter) ([]Venue, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func requireAdmin(actor auth.Actor) error {
	if !actor.IsAdmin {
		return apperr.Forbidden("Admin access required")
	}
	return nil
}

func cleanAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func (s *service) Create(ctx context.Context, actor auth.Actor, req CreateVenueRequest) (*Venue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !req.SportType.Valid() {
		return nil, apperr.BadRequest("Invalid sport type")
	}
	if req.PricePerHour <= 0 {
		return nil, apperr.BadRequest("Price per hour must be positive")
	}

	v, err := s.repo.Create(ctx, &Venue{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		SportType:    req.SportType,
		Address:      req.Address,
		City:         strings.TrimSpace(req.City),
		PricePerHour: req.PricePerHour,
		Amenities:    cleanAmenities(req.Amenities),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	logger.Info("venue created", "venue_id", v.ID, "admin_id", actor.UserID)
	return v, nil
}

func (s *service) Update(ctx context.Context, actor auth.Actor, id int, req UpdateVenueRequest) (*Venue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	v, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.SportType != nil {
		if !req.SportType.Valid() {
			return nil, apperr.BadRequest("Invalid sport type")
		}
		v.SportType = *req.SportType
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.City != nil {
		v.City = strings.TrimSpace(*req.City)
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, apperr.BadRequest("Price per hour must be positive")
		}
		v.PricePerHour = *req.PricePerHour
	}
	if req.Amenities != nil {
		v.Amenities = cleanAmenities(req.Amenities)
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, v)
	if errors.Is(err, ErrVenueNotFound) {
		return nil, errVenueNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}

// Delete deactivates the venue. Slots, bookings and reviews stay in place.
func (s *service) Delete(ctx context.Context, actor auth.Actor, id int) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, ErrVenueNotFound) {
		return errVenueNotFound
	}
	if err != nil {
		return apperr.Internal(err)
	}

	logger.Info("venue deactivated", "venue_id", id, "admin_id", actor.UserID)
	return nil
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id int) (*Venue, error) {
	v, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsActive && !actor.IsAdmin {
		return nil, errVenueNotFound
	}
	return v, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, f Filter) ([]Venue, int, error) {
	if f.IncludeInactive && !actor.IsAdmin {
		f.IncludeInactive = false
	}
	if f.SportType != nil && !f.SportType.Valid() {
		return nil, 0, apperr.BadRequest("Invalid sport type")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, 0, apperr.BadRequest("min_price cannot exceed max_price")
	}
	if f.SortBy != "" {
		if _, ok := sortColumns[f.SortBy]; !ok {
			return nil, 0, apperr.BadRequest("Invalid sort_by, expected one of name, price, rating, created_at")
		}
	}
	f.Page, f.Limit = db.NormalizePage(f.Page, f.Limit)

	venues, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return venues, total, nil
}

func (s *service) load(ctx context.Context, id int) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrVenueNotFound) {
		return nil, errVenueNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return v, nil
}
