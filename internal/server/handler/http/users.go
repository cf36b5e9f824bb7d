package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/starwars-api/internal/models"
	"go.uber.org/zap"
)

// UserService defines the user operations required by UserHandler.
type UserService interface {
	// List returns every user with favorites attached.
	List(ctx context.Context) ([]models.User, error)
	// Favorites returns the favorites of a user or repository.ErrNotFound.
	Favorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	// Create hashes password and stores u.
	Create(ctx context.Context, u *models.User, password string) error
}

// UserHandler serves the user endpoints.
type UserHandler struct {
	UserService UserService
	Logger      *zap.Logger
}

// CreateUserRequest is the body of POST /users. IsActive defaults to true.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=25"`
	Email    string `json:"email" validate:"required,max=120"`
	// bcrypt ignores input beyond 72 bytes.
	Password string `json:"password" validate:"required,max=72"`
	IsActive *bool  `json:"is_active"`
}

const userNotFound = "user not found"

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, err, userNotFound)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.Logger, err, userNotFound)
		return
	}

	user := &models.User{Username: req.Username, Email: req.Email, IsActive: true}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := h.UserService.Create(r.Context(), user, req.Password); err != nil {
		writeError(w, r, h.Logger, err, userNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Favorites handles GET /users/{id}/favorites.
func (h *UserHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err, userNotFound)
		return
	}
	favorites, err := h.UserService.Favorites(r.Context(), id)
	if err != nil {
		writeError(w, r, h.Logger, err, userNotFound)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// Hello handles GET /user.
func (h *UserHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"msg": "Hello, this is your GET /user response",
	})
}
