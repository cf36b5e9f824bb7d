package service

import (
	"context"

	"github.com/atinyakov/starwars-api/internal/models"
)

// PlanetRepository defines the persistence operations needed by PlanetService.
type PlanetRepository interface {
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (*models.Planet, error)
	CreatePlanet(ctx context.Context, p *models.Planet) error
	DeletePlanet(ctx context.Context, id int64) error
}

// PlanetService implements planet operations.
type PlanetService struct {
	repo PlanetRepository
}

// NewPlanetService constructs a PlanetService with the provided repository.
func NewPlanetService(repo PlanetRepository) *PlanetService {
	return &PlanetService{repo: repo}
}

// List returns every planet.
func (s *PlanetService) List(ctx context.Context) ([]models.Planet, error) {
	return s.repo.ListPlanets(ctx)
}

// Get returns a single planet by id.
func (s *PlanetService) Get(ctx context.Context, id int64) (*models.Planet, error) {
	return s.repo.GetPlanet(ctx, id)
}

// Create stores a new planet.
func (s *PlanetService) Create(ctx context.Context, p *models.Planet) error {
	return s.repo.CreatePlanet(ctx, p)
}

// Delete removes a planet by id.
func (s *PlanetService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeletePlanet(ctx, id)
}
