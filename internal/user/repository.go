package user

import (
	"context"
	"database/sql"
	"errors"

	"sportbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(conn *sqlx.DB) Repository {
	return &repository{db: conn}
}

const userColumns = `id, name, email, password_hash, role, created_at`

func (r *repository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	query := `INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING ` + userColumns

	var u User
	if err := db.Conn(ctx, r.db).GetContext(ctx, &u, query, name, email, passwordHash, role); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, query string, arg interface{}) (*User, error) {
	var u User
	err := db.Conn(ctx, r.db).GetContext(ctx, &u, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *repository) UpdateRole(ctx context.Context, id int, role string) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
