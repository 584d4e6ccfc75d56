package review

import (
	"context"
	"errors"
	"strings"

	"sportbook/internal/apperr"
	"sportbook/internal/auth"
	"sportbook/internal/db"
	"sportbook/internal/logger"
	"sportbook/internal/metrics"
	"sportbook/internal/venue"
)

var (
	errReviewNotFound = apperr.NotFound("Review not found")
	errVenueNotFound  = apperr.NotFound("Venue not found")
	errDuplicate      = apperr.Conflict("You have already reviewed this venue")
	errNotPlayed      = apperr.Forbidden("You can only review venues where you have completed a booking")
	errNotAuthor      = apperr.Forbidden("You can only modify your own reviews")
	errInvalidRating  = apperr.BadRequest("Rating must be between 1 and 5")
)

type Service interface {
	CreateReview(ctx context.Context, actor auth.Actor, venueID int, req CreateReviewRequest) (*Review, error)
	UpdateReview(ctx context.Context, actor auth.Actor, id int, req UpdateReviewRequest) (*Review, error)
	DeleteReview(ctx context.Context, actor auth.Actor, id int) error
	GetReview(ctx context.Context, id int) (*Review, error)
	ListVenueReviews(ctx context.Context, actor auth.Actor, venueID int, f Filter) ([]Review, int, error)
}

type service struct {
	repo   Repository
	venues venue.Repository
}

func NewService(repo Repository, venues venue.Repository) Service {
	return &service{repo: repo, venues: venues}
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// cleanComment maps blank comments to nil.
func cleanComment(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *service) requireVenue(ctx context.Context, actor auth.Actor, venueID int) error {
	v, err := s.venues.GetByID(ctx, venueID)
	if errors.Is(err, venue.ErrVenueNotFound) {
		return errVenueNotFound
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if !v.IsActive && !actor.IsAdmin {
		return errVenueNotFound
	}
	return nil
}

// CreateReview lets a user review a venue once, and only after playing there.
func (s *service) CreateReview(ctx context.Context, actor auth.Actor, venueID int, req CreateReviewRequest) (*Review, error) {
	if !validRating(req.Rating) {
		return nil, errInvalidRating
	}
	if err := s.requireVenue(ctx, actor, venueID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, actor.UserID, venueID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, errDuplicate
	}

	played, err := s.repo.HasCompletedBooking(ctx, actor.UserID, venueID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !played {
		return nil, errNotPlayed
	}

	created, err := s.repo.Create(ctx, &Review{
		UserID:  actor.UserID,
		VenueID: venueID,
		Rating:  req.Rating,
		Comment: cleanComment(req.Comment),
	})
	if db.IsUniqueViolation(err) {
		return nil, errDuplicate
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.RecordReviewCreated()
	logger.Info("review created", "review_id", created.ID, "venue_id", venueID, "user_id", actor.UserID)
	return created, nil
}

func (s *service) load(ctx context.Context, id int) (*Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrReviewNotFound) {
		return nil, errReviewNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rv, nil
}

func (s *service) UpdateReview(ctx context.Context, actor auth.Actor, id int, req UpdateReviewRequest) (*Review, error) {
	rv, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(rv.UserID) {
		return nil, errNotAuthor
	}

	if req.Rating != nil {
		if !validRating(*req.Rating) {
			return nil, errInvalidRating
		}
		rv.Rating = *req.Rating
	}
	if req.Comment != nil {
		rv.Comment = cleanComment(req.Comment)
	}

	updated, err := s.repo.Update(ctx, rv)
	if errors.Is(err, ErrReviewNotFound) {
		return nil, errReviewNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}

func (s *service) DeleteReview(ctx context.Context, actor auth.Actor, id int) error {
	rv, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccess(rv.UserID) {
		return errNotAuthor
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, ErrReviewNotFound) {
		return errReviewNotFound
	}
	if err != nil {
		return apperr.Internal(err)
	}

	logger.Info("review deleted", "review_id", id, "by_user", actor.UserID)
	return nil
}

func (s *service) GetReview(ctx context.Context, id int) (*Review, error) {
	return s.load(ctx, id)
}

func (s *service) ListVenueReviews(ctx context.Context, actor auth.Actor, venueID int, f Filter) ([]Review, int, error) {
	if err := s.requireVenue(ctx, actor, venueID); err != nil {
		return nil, 0, err
	}
	if f.SortBy != "" {
		if _, ok := sortColumns[f.SortBy]; !ok {
			return nil, 0, apperr.BadRequest("Invalid sort_by, expected created_at or rating")
		}
	}
	f.Page, f.Limit = db.NormalizePage(f.Page, f.Limit)

	reviews, total, err := s.repo.ListByVenue(ctx, venueID, f)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return reviews, total, nil
}
