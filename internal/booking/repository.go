package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportbook/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

const bookingColumns = `id, user_id, slot_id, status, total_price, payment_status, refund_amount, cancelled_at, created_at, updated_at`

var detailColumns = []string{
	"b.id", "b.user_id", "b.slot_id", "b.status", "b.total_price", "b.payment_status",
	"b.refund_amount", "b.cancelled_at", "b.created_at", "b.updated_at",
	"s.date AS slot_date", "s.start_time", "s.end_time",
	"v.id AS venue_id", "v.name AS venue_name", "v.address AS venue_address",
	"u.name AS user_name", "u.email AS user_email",
}

const detailJoins = `bookings b
	JOIN slots s ON s.id = b.slot_id
	JOIN venues v ON v.id = s.venue_id
	JOIN users u ON u.id = b.user_id`

var sortColumns = map[string]string{
	"created_at":  "b.created_at",
	"date":        "s.date",
	"total_price": "b.total_price",
	"status":      "b.status",
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(conn *sqlx.DB) Repository {
	return &repository{db: conn}
}

func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `INSERT INTO bookings (user_id, slot_id, status, total_price, payment_status) VALUES ($1, $2, $3, $4, $5) RETURNING ` + bookingColumns

	var created Booking
	err := db.Conn(ctx, r.db).GetContext(ctx, &created, query, b.UserID, b.SlotID, b.Status, b.TotalPrice, b.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id int) (*Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *repository) getOne(ctx context.Context, query string, id int) (*Booking, error) {
	var b Booking
	err := db.Conn(ctx, r.db).GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetDetails(ctx context.Context, id int) (*BookingWithDetails, error) {
	query, args, err := db.PSQL.Select(detailColumns...).
		From(detailJoins).
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var d BookingWithDetails
	err = db.Conn(ctx, r.db).GetContext(ctx, &d, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, b *Booking) (*Booking, error) {
	query := `UPDATE bookings SET status = $1, payment_status = $2, refund_amount = $3, cancelled_at = $4, updated_at = NOW() WHERE id = $5 RETURNING ` + bookingColumns

	var updated Booking
	err := db.Conn(ctx, r.db).GetContext(ctx, &updated, query, b.Status, b.PaymentStatus, b.RefundAmount, b.CancelledAt, b.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &updated, nil
}

func filterConditions(f Filter) sq.And {
	conds := sq.And{}
	if f.Status != nil {
		conds = append(conds, sq.Eq{"b.status": *f.Status})
	}
	if f.VenueID != nil {
		conds = append(conds, sq.Eq{"s.venue_id": *f.VenueID})
	}
	if f.UserID != nil {
		conds = append(conds, sq.Eq{"b.user_id": *f.UserID})
	}
	if f.From != nil {
		conds = append(conds, sq.GtOrEq{"s.date": *f.From})
	}
	if f.To != nil {
		conds = append(conds, sq.LtOrEq{"s.date": *f.To})
	}
	return conds
}

func (r *repository) List(ctx context.Context, f Filter) ([]BookingWithDetails, int, error) {
	conds := filterConditions(f)
	conn := db.Conn(ctx, r.db)

	countQuery, countArgs, err := db.PSQL.Select("COUNT(*)").
		From("bookings b JOIN slots s ON s.id = b.slot_id").
		Where(conds).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	b := db.PSQL.Select(detailColumns...).From(detailJoins).Where(conds)
	b = db.OrderBy(b, f.SortBy, f.Order, sortColumns, "created_at").OrderBy("b.id DESC")
	b = db.Paginate(b, f.Page, f.Limit)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, err
	}

	bookings := []BookingWithDetails{}
	if err := conn.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, total, nil
}
