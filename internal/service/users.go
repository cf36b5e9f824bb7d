package service

import (
	"context"
	"fmt"

	"github.com/atinyakov/starwars-api/internal/models"
	"github.com/atinyakov/starwars-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the persistence operations on users.
type UserRepository interface {
	// ListUsers returns every user without favorites.
	ListUsers(ctx context.Context) ([]models.User, error)
	// UserExists reports whether the user exists.
	UserExists(ctx context.Context, id int64) (bool, error)
	// CreateUser inserts u and assigns its ID.
	CreateUser(ctx context.Context, u *models.User) error
}

// UserService implements user operations. It needs the favorites
// repository to resolve the user -> favorites relationship.
type UserService struct {
	users     UserRepository
	favorites FavoriteRepository
	cost      int
}

// NewUserService constructs a UserService.
func NewUserService(users UserRepository, favorites FavoriteRepository) *UserService {
	return &UserService{users: users, favorites: favorites, cost: bcrypt.DefaultCost}
}

// List returns every user with its favorites attached.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favorites.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[int64][]models.Favorite, len(users))
	for _, f := range favorites {
		byUser[f.UserID] = append(byUser[f.UserID], f)
	}
	for i := range users {
		users[i].Favorites = byUser[users[i].ID]
		if users[i].Favorites == nil {
			users[i].Favorites = []models.Favorite{}
		}
	}
	return users, nil
}

// Favorites returns the favorites owned by userID, or
// repository.ErrNotFound if the user does not exist.
func (s *UserService) Favorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}
	return s.favorites.ListFavoritesByUser(ctx, userID)
}

// Create hashes password, stores the user and returns it with an empty
// favorites list.
func (s *UserService) Create(ctx context.Context, u *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)

	if err := s.users.CreateUser(ctx, u); err != nil {
		return err
	}
	u.Favorites = []models.Favorite{}
	return nil
}
