package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/starwars-api/internal/models"
	"go.uber.org/zap"
)

// PlanetService defines the planet operations required by PlanetHandler.
type PlanetService interface {
	List(ctx context.Context) ([]models.Planet, error)
	Get(ctx context.Context, id int64) (*models.Planet, error)
	Create(ctx context.Context, p *models.Planet) error
	Delete(ctx context.Context, id int64) error
}

// PlanetHandler serves the planet endpoints.
type PlanetHandler struct {
	PlanetService PlanetService
	Logger        *zap.Logger
}

// CreatePlanetRequest is the body of POST /planets. Population is a
// pointer so that an explicit 0 counts as present.
type CreatePlanetRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Terrain    string `json:"terrain" validate:"required,max=150"`
	Population *int64 `json:"population" validate:"required"`
	Galaxy     string `json:"galaxy" validate:"required,max=150"`
}

const planetNotFound = "planet not found"

// List handles GET /planets.
func (h *PlanetHandler) List(w http.ResponseWriter, r *http.Request) {
	planets, err := h.PlanetService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, planets)
}

// Get handles GET /planets/{id}.
func (h *PlanetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}
	planet, err := h.PlanetService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, planet)
}

// Create handles POST /planets. Nothing is persisted unless every field is present.
func (h *PlanetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanetRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}

	planet := &models.Planet{
		Name:       req.Name,
		Terrain:    req.Terrain,
		Population: *req.Population,
		Galaxy:     req.Galaxy,
	}
	if err := h.PlanetService.Create(r.Context(), planet); err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, planet)
}

// Delete handles DELETE /planets/{id}.
func (h *PlanetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}
	if err := h.PlanetService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.Logger, err, planetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "planet deleted"})
}
