package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// HallService handles lecture hall business logic.
type HallService struct {
	hallRepo *repository.HallRepository
}

// NewHallService creates a new HallService.
func NewHallService(hallRepo *repository.HallRepository) *HallService {
	return &HallService{hallRepo: hallRepo}
}

// GetByID retrieves a hall by its ID.
func (s *HallService) GetByID(ctx context.Context, id int) (*model.Hall, error) {
	return s.hallRepo.GetByID(ctx, id)
}

// List retrieves all halls.
func (s *HallService) List(ctx context.Context) ([]model.Hall, error) {
	return s.hallRepo.List(ctx)
}

// Create creates a new hall.
func (s *HallService) Create(ctx context.Context, h *model.Hall) error {
	return s.hallRepo.Create(ctx, h)
}

// Update modifies an existing hall.
func (s *HallService) Update(ctx context.Context, h *model.Hall) error {
	return s.hallRepo.Update(ctx, h)
}

// Delete removes a hall.
func (s *HallService) Delete(ctx context.Context, id int) error {
	return s.hallRepo.Delete(ctx, id)
}
