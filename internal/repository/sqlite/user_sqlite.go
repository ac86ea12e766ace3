package sqlite

import (
	"context"
	"database/sql"
	"time"

	"dictapi/internal/model"
	"dictapi/internal/repository"
)

// UserSQLite is a SQLite implementation of repository.UserRepository.
// created_at is stored as unix seconds.
type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ repository.UserRepository = (*UserSQLite)(nil)

func (r *UserSQLite) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)
		RETURNING id, username, password, created_at`,
		username, passwordHash, time.Now().Unix())
	u, err := scanUser(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (r *UserSQLite) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = ?`, username))
}

func (r *UserSQLite) FindUserByID(ctx context.Context, id int64) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = ?`, id))
}

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		u       model.User
		created int64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		return nil, err
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	return &u, nil
}
