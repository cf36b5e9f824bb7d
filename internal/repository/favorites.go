package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/starwars-api/internal/models"
)

// FavoriteRepository implements persistence for the user favorites join table.
type FavoriteRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository using the provided *sql.DB.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// CreateFavorite inserts f as given and sets its ID. References are not
// checked beforehand; a missing user, planet or person surfaces as
// ErrInvalidReference when the store enforces foreign keys.
func (r *FavoriteRepository) CreateFavorite(ctx context.Context, f *models.Favorite) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, planet_id, people_id) VALUES ($1, $2, $3) RETURNING id`,
		f.UserID, nullable(f.PlanetID), nullable(f.PeopleID),
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", classify(err))
	}
	return nil
}

// ListFavorites returns all favorites ordered by id.
func (r *FavoriteRepository) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return r.queryFavorites(ctx,
		`SELECT id, user_id, planet_id, people_id FROM favorites ORDER BY id`)
}

// ListFavoritesByUser returns the favorites owned by userID ordered by id.
func (r *FavoriteRepository) ListFavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return r.queryFavorites(ctx,
		`SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *FavoriteRepository) queryFavorites(ctx context.Context, query string, args ...any) ([]models.Favorite, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var (
			f        models.Favorite
			planetID sql.NullInt64
			peopleID sql.NullInt64
		)
		if err := rows.Scan(&f.ID, &f.UserID, &planetID, &peopleID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		f.PlanetID = pointer(planetID)
		f.PeopleID = pointer(peopleID)
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	return favorites, nil
}
