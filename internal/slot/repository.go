package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportbook/internal/db"
	"sportbook/internal/pricing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var ErrSlotNotFound = errors.New("slot not found")

const slotColumns = `id, venue_id, date, start_time, end_time, status, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(conn *sqlx.DB) Repository {
	return &repository{db: conn}
}

func (r *repository) Create(ctx context.Context, s *Slot) (*Slot, error) {
	query := `INSERT INTO slots (venue_id, date, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5) RETURNING ` + slotColumns

	var created Slot
	err := db.Conn(ctx, r.db).GetContext(ctx, &created, query, s.VenueID, s.Date, s.StartTime, s.EndTime, s.Status)
	if err != nil {
		return nil, fmt.Errorf("insert slot: %w", err)
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Slot, error) {
	return r.getOne(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id int) (*Slot, error) {
	return r.getOne(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1 FOR UPDATE`, id)
}

func (r *repository) getOne(ctx context.Context, query string, id int) (*Slot, error) {
	var s Slot
	err := db.Conn(ctx, r.db).GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListByVenueAndDate(ctx context.Context, venueID int, date pricing.Date) ([]Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE venue_id = $1 AND date = $2 ORDER BY start_time`

	slots := []Slot{}
	if err := db.Conn(ctx, r.db).SelectContext(ctx, &slots, query, venueID, date); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repository) List(ctx context.Context, venueID int, f Filter) ([]Slot, int, error) {
	conds := sq.And{sq.Eq{"venue_id": venueID}}
	if f.Date != nil {
		conds = append(conds, sq.Eq{"date": *f.Date})
	}
	if f.From != nil {
		conds = append(conds, sq.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		conds = append(conds, sq.LtOrEq{"date": *f.To})
	}
	if f.Status != nil {
		conds = append(conds, sq.Eq{"status": *f.Status})
	}

	conn := db.Conn(ctx, r.db)

	countQuery, countArgs, err := db.PSQL.Select("COUNT(*)").From("slots").Where(conds).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count slots: %w", err)
	}

	b := db.PSQL.Select(slotColumns).From("slots").Where(conds).OrderBy("date", "start_time", "id")
	query, args, err := db.Paginate(b, f.Page, f.Limit).ToSql()
	if err != nil {
		return nil, 0, err
	}

	slots := []Slot{}
	if err := conn.SelectContext(ctx, &slots, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list slots: %w", err)
	}
	return slots, total, nil
}

func (r *repository) Update(ctx context.Context, s *Slot) (*Slot, error) {
	query := `
		UPDATE slots
		SET date = $1, start_time = $2, end_time = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + slotColumns

	var updated Slot
	err := db.Conn(ctx, r.db).GetContext(ctx, &updated, query, s.Date, s.StartTime, s.EndTime, s.Status, s.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}
	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *repository) HasActiveBooking(ctx context.Context, slotID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE slot_id = $1 AND status IN ('PENDING', 'CONFIRMED'))`, slotID)
}

func (r *repository) HasUncancelledBooking(ctx context.Context, slotID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE slot_id = $1 AND status <> 'CANCELLED')`, slotID)
}

func (r *repository) UpdateStatusIfCurrent(ctx context.Context, id int, from, to Status) (bool, error) {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE slots SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) SetStatus(ctx context.Context, id int, to Status) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE slots SET status = $1, updated_at = NOW() WHERE id = $2`, to, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSlotNotFound
	}
	return nil
}
