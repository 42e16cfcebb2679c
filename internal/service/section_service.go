package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// SectionService handles section business logic.
type SectionService struct {
	sectionRepo *repository.SectionRepository
}

// NewSectionService creates a new SectionService.
func NewSectionService(sectionRepo *repository.SectionRepository) *SectionService {
	return &SectionService{sectionRepo: sectionRepo}
}

// GetByID retrieves a section by its ID.
func (s *SectionService) GetByID(ctx context.Context, id int) (*model.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// List retrieves sections, optionally filtered by level or group.
func (s *SectionService) List(ctx context.Context, levelID, groupID int) ([]model.Section, error) {
	return s.sectionRepo.List(ctx, levelID, groupID)
}

// Create creates a new section.
func (s *SectionService) Create(ctx context.Context, sec *model.Section) error {
	return s.sectionRepo.Create(ctx, sec)
}

// Update modifies an existing section.
func (s *SectionService) Update(ctx context.Context, sec *model.Section) error {
	return s.sectionRepo.Update(ctx, sec)
}

// Delete removes a section.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	return s.sectionRepo.Delete(ctx, id)
}
