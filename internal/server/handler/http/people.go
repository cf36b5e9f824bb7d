package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/starwars-api/internal/models"
	"go.uber.org/zap"
)

// PeopleService defines the character operations required by PeopleHandler.
type PeopleService interface {
	List(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, id int64) (*models.Person, error)
	Create(ctx context.Context, p *models.Person) error
	Delete(ctx context.Context, id int64) error
}

// PeopleHandler serves the character endpoints.
type PeopleHandler struct {
	PeopleService PeopleService
	Logger        *zap.Logger
}

// CreatePersonRequest is the body of POST /newpeople.
type CreatePersonRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	LastName string `json:"lastname" validate:"required,max=150"`
	Side     string `json:"side" validate:"required,max=150"`
}

type createPersonResponse struct {
	Message string         `json:"message"`
	Person  *models.Person `json:"person"`
}

const personNotFound = "person not found"

// List handles GET /people.
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.PeopleService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}
	writeJSON(w, http.StatusOK, people)
}

// Get handles GET /people/{id}.
func (h *PeopleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}
	person, err := h.PeopleService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// Create handles POST /newpeople. name, lastname and side are required.
func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}

	person := &models.Person{Name: req.Name, LastName: req.LastName, Side: req.Side}
	if err := h.PeopleService.Create(r.Context(), person); err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, createPersonResponse{Message: "person created", Person: person})
}

// Delete handles DELETE /deletepeople/{id}.
func (h *PeopleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}
	if err := h.PeopleService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.Logger, err, personNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "person deleted"})
}
