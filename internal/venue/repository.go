package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportbook/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrVenueNotFound = errors.New("venue not found")

const ratingJoin = `(SELECT venue_id, ROUND(AVG(rating)::numeric, 2) AS avg_rating, COUNT(*) AS review_count
	FROM reviews GROUP BY venue_id) r ON r.venue_id = v.id`

var venueColumns = []string{
	"v.id", "v.name", "v.description", "v.sport_type", "v.address", "v.city",
	"v.price_per_hour", "v.amenities", "v.is_active", "v.created_at", "v.updated_at",
	"COALESCE(r.avg_rating, 0) AS average_rating",
	"COALESCE(r.review_count, 0) AS review_count",
}

var sortColumns = map[string]string{
	"name":       "v.name",
	"price":      "v.price_per_hour",
	"rating":     "average_rating",
	"created_at": "v.created_at",
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(conn *sqlx.DB) Repository {
	return &repository{db: conn}
}

func (r *repository) Create(ctx context.Context, v *Venue) (*Venue, error) {
	query := `
		INSERT INTO venues (name, description, sport_type, address, city, price_per_hour, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int
	err := db.Conn(ctx, r.db).GetContext(ctx, &id, query,
		v.Name, v.Description, v.SportType, v.Address, v.City, v.PricePerHour, pq.StringArray(v.Amenities))
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *repository) GetByID(ctx context.Context, id int) (*Venue, error) {
	query, args, err := db.PSQL.Select(venueColumns...).
		From("venues v").
		LeftJoin(ratingJoin).
		Where(sq.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var v Venue
	err = db.Conn(ctx, r.db).GetContext(ctx, &v, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) Update(ctx context.Context, v *Venue) (*Venue, error) {
	query := `
		UPDATE venues
		SET name = $1, description = $2, sport_type = $3, address = $4, city = $5,
			price_per_hour = $6, amenities = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
	`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query,
		v.Name, v.Description, v.SportType, v.Address, v.City, v.PricePerHour,
		pq.StringArray(v.Amenities), v.IsActive, v.ID)
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrVenueNotFound
	}
	return r.GetByID(ctx, v.ID)
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE venues SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func filterConditions(f Filter) sq.And {
	conds := sq.And{}
	if !f.IncludeInactive {
		conds = append(conds, sq.Eq{"v.is_active": true})
	}
	if f.SportType != nil {
		conds = append(conds, sq.Eq{"v.sport_type": *f.SportType})
	}
	if f.City != nil {
		conds = append(conds, sq.ILike{"v.city": *f.City})
	}
	if f.Search != nil {
		pattern := "%" + *f.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"v.name": pattern},
			sq.ILike{"v.description": pattern},
		})
	}
	if f.MinPrice != nil {
		conds = append(conds, sq.GtOrEq{"v.price_per_hour": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		conds = append(conds, sq.LtOrEq{"v.price_per_hour": *f.MaxPrice})
	}
	return conds
}

func (r *repository) List(ctx context.Context, f Filter) ([]Venue, int, error) {
	conds := filterConditions(f)
	conn := db.Conn(ctx, r.db)

	countQuery, countArgs, err := db.PSQL.Select("COUNT(*)").From("venues v").Where(conds).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count venues: %w", err)
	}

	b := db.PSQL.Select(venueColumns...).From("venues v").LeftJoin(ratingJoin).Where(conds)
	b = db.OrderBy(b, f.SortBy, f.Order, sortColumns, "created_at").OrderBy("v.id")
	b = db.Paginate(b, f.Page, f.Limit)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, err
	}

	venues := []Venue{}
	if err := conn.SelectContext(ctx, &venues, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}
	return venues, total, nil
}
