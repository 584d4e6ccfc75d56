package venue

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var venueRowColumns = []string{
	"id", "name", "description", "sport_type", "address", "city", "price_per_hour",
	"amenities", "is_active", "created_at", "updated_at", "average_rating", "review_count",
}

func setupVenueMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func venueRow(rows *sqlmock.Rows, id int, name string, active bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, name, "indoor courts", "BADMINTON", "MG Road 1", "Pune", 40.0,
		"{wifi,parking}", active, now, now, 4.5, 2)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := setupVenueMock(t)

	mock.ExpectQuery(`FROM venues v LEFT JOIN .* WHERE v\.id = \$1`).
		WithArgs(3).
		WillReturnRows(venueRow(sqlmock.NewRows(venueRowColumns), 3, "Smash Arena", true))

	v, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Smash Arena", v.Name)
	assert.Equal(t, SportBadminton, v.SportType)
	assert.Equal(t, []string{"wifi", "parking"}, []string(v.Amenities))
	assert.Equal(t, 4.5, v.AverageRating)
	assert.Equal(t, 2, v.ReviewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupVenueMock(t)

	mock.ExpectQuery(`FROM venues v LEFT JOIN`).WithArgs(9).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := setupVenueMock(t)
	city := "Pune"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM venues v WHERE (v.is_active = $1 AND v.city ILIKE $2)`)).
		WithArgs(true, "Pune").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`WHERE \(v\.is_active = \$1 AND v\.city ILIKE \$2\) ORDER BY v\.name ASC, v\.id LIMIT 10 OFFSET 0`).
		WithArgs(true, "Pune").
		WillReturnRows(venueRow(sqlmock.NewRows(venueRowColumns), 1, "Smash Arena", true))

	venues, total, err := repo.List(context.Background(), Filter{
		City: &city, SortBy: "name", Order: "asc", Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, venues, 1)
	assert.Equal(t, 1, venues[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := setupVenueMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE venues SET is_active = FALSE, updated_at = NOW() WHERE id = $1`)).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Deactivate(context.Background(), 2))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE venues SET is_active = FALSE`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Deactivate(context.Background(), 3), ErrVenueNotFound)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupVenueMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO venues (name, description, sport_type, address, city, price_per_hour, amenities)`)).
		WithArgs("Smash Arena", "indoor courts", "BADMINTON", "MG Road 1", "Pune", 40.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`FROM venues v LEFT JOIN .* WHERE v\.id = \$1`).
		WithArgs(1).
		WillReturnRows(venueRow(sqlmock.NewRows(venueRowColumns), 1, "Smash Arena", true))

	v, err := repo.Create(context.Background(), &Venue{
		Name: "Smash Arena", Description: "indoor courts", SportType: SportBadminton,
		Address: "MG Road 1", City: "Pune", PricePerHour: 40, Amenities: []string{"wifi", "parking"},
	})
	require.NoError(t, err)
	assert.True(t, v.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
