package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/starwars-api/internal/models"
)

// UserRepository implements user persistence.
type UserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository using the provided *sql.DB.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// ListUsers returns every user ordered by id. Favorites are not loaded.
func (r *UserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, username, email, is_active FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.IsActive); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// UserExists reports whether a user with the given id exists.
func (r *UserRepository) UserExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("UserExists: %w", err)
	}
	return exists, nil
}

// CreateUser inserts u and sets its ID. u.Password must already be hashed.
// Duplicate usernames or emails yield ErrConflict.
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password, is_active) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Username, u.Email, u.Password, u.IsActive,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", classify(err))
	}
	return nil
}
