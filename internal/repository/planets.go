package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/starwars-api/internal/models"
)

// PlanetRepository implements planet persistence.
type PlanetRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPlanetRepository creates a new PlanetRepository using the provided *sql.DB.
func NewPlanetRepository(db *sql.DB) *PlanetRepository {
	return &PlanetRepository{DB: db}
}

// ListPlanets returns every planet ordered by id.
func (r *PlanetRepository) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, terrain, population, galaxy FROM planets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListPlanets: %w", err)
	}
	defer rows.Close()

	planets := make([]models.Planet, 0)
	for rows.Next() {
		var p models.Planet
		if err := rows.Scan(&p.ID, &p.Name, &p.Terrain, &p.Population, &p.Galaxy); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPlanets: %w", err)
	}
	return planets, nil
}

// GetPlanet fetches a planet by primary key or returns ErrNotFound.
func (r *PlanetRepository) GetPlanet(ctx context.Context, id int64) (*models.Planet, error) {
	var p models.Planet
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, terrain, population, galaxy FROM planets WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Terrain, &p.Population, &p.Galaxy)
	if err != nil {
		return nil, classify(err)
	}
	return &p, nil
}

// CreatePlanet inserts p and sets its ID.
func (r *PlanetRepository) CreatePlanet(ctx context.Context, p *models.Planet) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO planets (name, terrain, population, galaxy) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Name, p.Terrain, p.Population, p.Galaxy,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert planet: %w", classify(err))
	}
	return nil
}

// DeletePlanet removes a planet together with the favorites that reference
// it. It returns ErrNotFound if the planet does not exist.
func (r *PlanetRepository) DeletePlanet(ctx context.Context, id int64) error {
	return deleteWithFavorites(ctx, r.DB, "planets", "planet_id", id)
}
