package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/atinyakov/starwars-api/internal/errs"
	"github.com/atinyakov/starwars-api/internal/models"
	"go.uber.org/zap"
)

// FavoriteService defines the favorite operations required by FavoriteHandler.
type FavoriteService interface {
	Create(ctx context.Context, f *models.Favorite) error
}

// FavoriteHandler serves the favorites endpoint.
type FavoriteHandler struct {
	FavoriteService FavoriteService
	Logger          *zap.Logger
}

// CreateFavoriteRequest is the body of POST /favorites.
type CreateFavoriteRequest struct {
	UserID   int64  `json:"user_id"`
	PlanetID *int64 `json:"planet_id"`
	PeopleID *int64 `json:"people_id"`
}

// Create handles POST /favorites. The ids are stored as given; references
// to missing rows are rejected by the store and reported as 400.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Logger, errs.NewBadRequestError("invalid request body", nil), "")
		return
	}

	favorite := &models.Favorite{UserID: req.UserID, PlanetID: req.PlanetID, PeopleID: req.PeopleID}
	if err := h.FavoriteService.Create(r.Context(), favorite); err != nil {
		writeError(w, r, h.Logger, err, "favorite not found")
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}
