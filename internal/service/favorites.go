package service

import (
	"context"

	"github.com/atinyakov/starwars-api/internal/models"
)

// FavoriteRepository defines the persistence operations on favorites.
type FavoriteRepository interface {
	// CreateFavorite inserts f and assigns its ID.
	CreateFavorite(ctx context.Context, f *models.Favorite) error
	// ListFavorites returns every favorite.
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	// ListFavoritesByUser returns the favorites owned by userID.
	ListFavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

// FavoriteService implements favorite creation.
type FavoriteService struct {
	repo FavoriteRepository
}

// NewFavoriteService constructs a FavoriteService with the provided repository.
func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// Create stores f without checking that its references exist; the store
// rejects dangling ids when it enforces foreign keys.
func (s *FavoriteService) Create(ctx context.Context, f *models.Favorite) error {
	return s.repo.CreateFavorite(ctx, f)
}
