package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// LevelService handles academic level business logic.
type LevelService struct {
	levelRepo *repository.LevelRepository
}

// NewLevelService creates a new LevelService.
func NewLevelService(levelRepo *repository.LevelRepository) *LevelService {
	return &LevelService{levelRepo: levelRepo}
}

// GetByID retrieves a level by its ID.
func (s *LevelService) GetByID(ctx context.Context, id int) (*model.Level, error) {
	return s.levelRepo.GetByID(ctx, id)
}

// List retrieves all levels in ID order, which is also the column order
// of the rendered grid.
func (s *LevelService) List(ctx context.Context) ([]model.Level, error) {
	return s.levelRepo.List(ctx)
}

// Create creates a new level.
func (s *LevelService) Create(ctx context.Context, l *model.Level) error {
	return s.levelRepo.Create(ctx, l)
}

// Update modifies an existing level.
func (s *LevelService) Update(ctx context.Context, l *model.Level) error {
	return s.levelRepo.Update(ctx, l)
}

// Delete removes a level and cascades to its groups and sections.
func (s *LevelService) Delete(ctx context.Context, id int) error {
	return s.levelRepo.Delete(ctx, id)
}
