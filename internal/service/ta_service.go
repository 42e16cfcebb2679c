package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// TAService handles teaching assistant business logic.
type TAService struct {
	taRepo *repository.TARepository
}

// NewTAService creates a new TAService.
func NewTAService(taRepo *repository.TARepository) *TAService {
	return &TAService{taRepo: taRepo}
}

// GetByID retrieves a teaching assistant by ID.
func (s *TAService) GetByID(ctx context.Context, id int) (*model.TA, error) {
	return s.taRepo.GetByID(ctx, id)
}

// List retrieves all teaching assistants.
func (s *TAService) List(ctx context.Context) ([]model.TA, error) {
	return s.taRepo.List(ctx)
}

// Create creates a new teaching assistant.
func (s *TAService) Create(ctx context.Context, t *model.TA) error {
	return s.taRepo.Create(ctx, t)
}

// Update modifies an existing teaching assistant.
func (s *TAService) Update(ctx context.Context, t *model.TA) error {
	return s.taRepo.Update(ctx, t)
}

// Delete removes a teaching assistant.
func (s *TAService) Delete(ctx context.Context, id int) error {
	return s.taRepo.Delete(ctx, id)
}
