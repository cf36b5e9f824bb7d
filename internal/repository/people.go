package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/starwars-api/internal/models"
)

// PeopleRepository implements character persistence.
type PeopleRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPeopleRepository creates a new PeopleRepository using the provided *sql.DB.
func NewPeopleRepository(db *sql.DB) *PeopleRepository {
	return &PeopleRepository{DB: db}
}

// ListPeople returns every character ordered by id.
func (r *PeopleRepository) ListPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, lastname, side FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListPeople: %w", err)
	}
	defer rows.Close()

	people := make([]models.Person, 0)
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.LastName, &p.Side); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPeople: %w", err)
	}
	return people, nil
}

// GetPerson fetches a character by primary key. It returns ErrNotFound
// when no such row exists.
func (r *PeopleRepository) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	var p models.Person
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, lastname, side FROM people WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.LastName, &p.Side)
	if err != nil {
		return nil, classify(err)
	}
	return &p, nil
}

// CreatePerson inserts p and sets its ID.
func (r *PeopleRepository) CreatePerson(ctx context.Context, p *models.Person) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO people (name, lastname, side) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.LastName, p.Side,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert person: %w", classify(err))
	}
	return nil
}

// DeletePerson removes a character together with the favorites that
// reference it. It returns ErrNotFound if the character does not exist.
func (r *PeopleRepository) DeletePerson(ctx context.Context, id int64) error {
	return deleteWithFavorites(ctx, r.DB, "people", "people_id", id)
}
