package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportbook/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var ErrReviewNotFound = errors.New("review not found")

var reviewColumns = []string{
	"r.id", "r.user_id", "r.venue_id", "r.rating", "r.comment",
	"u.name AS user_name", "r.created_at", "r.updated_at",
}

var sortColumns = map[string]string{
	"created_at": "r.created_at",
	"rating":     "r.rating",
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(conn *sqlx.DB) Repository {
	return &repository{db: conn}
}

func (r *repository) Create(ctx context.Context, rv *Review) (*Review, error) {
	var id int
	err := db.Conn(ctx, r.db).GetContext(ctx, &id,
		`INSERT INTO reviews (user_id, venue_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id`,
		rv.UserID, rv.VenueID, rv.Rating, rv.Comment)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *repository) GetByID(ctx context.Context, id int) (*Review, error) {
	query, args, err := db.PSQL.Select(reviewColumns...).
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rv Review
	err = db.Conn(ctx, r.db).GetContext(ctx, &rv, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) Update(ctx context.Context, rv *Review) (*Review, error) {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE reviews SET rating = $1, comment = $2, updated_at = NOW() WHERE id = $3`,
		rv.Rating, rv.Comment, rv.ID)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrReviewNotFound
	}
	return r.GetByID(ctx, rv.ID)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *repository) ListByVenue(ctx context.Context, venueID int, f Filter) ([]Review, int, error) {
	conn := db.Conn(ctx, r.db)

	var total int
	if err := conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM reviews WHERE venue_id = $1`, venueID); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	b := db.PSQL.Select(reviewColumns...).
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.venue_id": venueID})
	b = db.OrderBy(b, f.SortBy, f.Order, sortColumns, "created_at").OrderBy("r.id DESC")
	b = db.Paginate(b, f.Page, f.Limit)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, err
	}

	reviews := []Review{}
	if err := conn.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, total, nil
}

func (r *repository) Exists(ctx context.Context, userID, venueID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND venue_id = $2)`, userID, venueID)
}

func (r *repository) HasCompletedBooking(ctx context.Context, userID, venueID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS (
		SELECT 1 FROM bookings b JOIN slots s ON s.id = b.slot_id
		WHERE b.user_id = $1 AND s.venue_id = $2 AND b.status = 'COMPLETED')`, userID, venueID)
}
