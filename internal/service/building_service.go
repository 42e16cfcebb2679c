package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// BuildingService handles building business logic.
type BuildingService struct {
	buildingRepo *repository.BuildingRepository
}

// NewBuildingService creates a new BuildingService.
func NewBuildingService(buildingRepo *repository.BuildingRepository) *BuildingService {
	return &BuildingService{buildingRepo: buildingRepo}
}

// GetByID retrieves a building by its ID.
func (s *BuildingService) GetByID(ctx context.Context, id int) (*model.Building, error) {
	return s.buildingRepo.GetByID(ctx, id)
}

// List retrieves all buildings.
func (s *BuildingService) List(ctx context.Context) ([]model.Building, error) {
	return s.buildingRepo.List(ctx)
}

// Create creates a new building.
func (s *BuildingService) Create(ctx context.Context, b *model.Building) error {
	return s.buildingRepo.Create(ctx, b)
}

// Update modifies an existing building.
func (s *BuildingService) Update(ctx context.Context, b *model.Building) error {
	return s.buildingRepo.Update(ctx, b)
}

// Delete removes a building. The foreign key on rooms prevents deletion
// while rooms are still assigned to it.
func (s *BuildingService) Delete(ctx context.Context, id int) error {
	return s.buildingRepo.Delete(ctx, id)
}
