package postgres

import (
	"context"
	"database/sql"

	"dictapi/internal/model"
	"dictapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func (r *UserPostgres) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const q = `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password, created_at
	`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, username, passwordHash))
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (r *UserPostgres) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT id, username, password, created_at FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

func (r *UserPostgres) FindUserByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT id, username, password, created_at FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
