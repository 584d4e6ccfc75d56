package booking

import (
	"context"
	"fmt"

	"sportbook/internal/db"
	"sportbook/internal/pricing"
)

// Buckets are by booking creation day; to is inclusive.

func (r *repository) StatsByDay(ctx context.Context, from, to pricing.Date) ([]StatsByDay, error) {
	query := `
SELECT
  DATE(created_at) AS bucket,
  COUNT(*) AS bookings_created,
  COUNT(*) FILTER (WHERE status = 'CANCELLED') AS bookings_cancelled,
  COUNT(*) FILTER (WHERE status = 'COMPLETED') AS bookings_completed,
  COALESCE(SUM(total_price) FILTER (WHERE status IN ('CONFIRMED', 'COMPLETED')), 0) AS revenue
FROM bookings
WHERE created_at >= $1 AND created_at < $2
GROUP BY DATE(created_at)
ORDER BY bucket;
`
	stats := []StatsByDay{}
	if err := db.Conn(ctx, r.db).SelectContext(ctx, &stats, query, from, to.AddDays(1)); err != nil {
		return nil, fmt.Errorf("booking stats by day: %w", err)
	}
	return stats, nil
}

func (r *repository) StatsByVenue(ctx context.Context, from, to pricing.Date) ([]StatsByVenue, error) {
	query := `
SELECT
  v.id   AS venue_id,
  v.name AS venue_name,
  COUNT(b.id) AS bookings_created,
  COUNT(b.id) FILTER (WHERE b.status = 'CANCELLED') AS bookings_cancelled,
  COUNT(b.id) FILTER (WHERE b.status = 'COMPLETED') AS bookings_completed,
  COALESCE(SUM(b.total_price) FILTER (WHERE b.status IN ('CONFIRMED', 'COMPLETED')), 0) AS revenue
FROM venues v
JOIN slots s ON s.venue_id = v.id
JOIN bookings b ON b.slot_id = s.id
WHERE b.created_at >= $1 AND b.created_at < $2
GROUP BY v.id, v.name
ORDER BY v.id;
`
	stats := []StatsByVenue{}
	if err := db.Conn(ctx, r.db).SelectContext(ctx, &stats, query, from, to.AddDays(1)); err != nil {
		return nil, fmt.Errorf("booking stats by venue: %w", err)
	}
	return stats, nil
}
