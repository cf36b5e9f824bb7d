// Package service provides the business logic for the blog API,
// delegating persistence to repository interfaces.
package service

import (
	"context"

	"github.com/atinyakov/starwars-api/internal/models"
)

// PeopleRepository defines the persistence operations needed by PeopleService.
type PeopleRepository interface {
	// ListPeople returns every character.
	ListPeople(ctx context.Context) ([]models.Person, error)
	// GetPerson returns the character with the given id or repository.ErrNotFound.
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	// CreatePerson inserts p and assigns its ID.
	CreatePerson(ctx context.Context, p *models.Person) error
	// DeletePerson removes a character and the favorites pointing at it.
	DeletePerson(ctx context.Context, id int64) error
}

// PeopleService implements character operations.
type PeopleService struct {
	repo PeopleRepository
}

// NewPeopleService constructs a PeopleService with the provided repository.
func NewPeopleService(repo PeopleRepository) *PeopleService {
	return &PeopleService{repo: repo}
}

// List returns every character.
func (s *PeopleService) List(ctx context.Context) ([]models.Person, error) {
	return s.repo.ListPeople(ctx)
}

// Get returns a single character by id.
func (s *PeopleService) Get(ctx context.Context, id int64) (*models.Person, error) {
	return s.repo.GetPerson(ctx, id)
}

// Create stores a new character.
func (s *PeopleService) Create(ctx context.Context, p *models.Person) error {
	return s.repo.CreatePerson(ctx, p)
}

// Delete removes a character by id.
func (s *PeopleService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeletePerson(ctx, id)
}
