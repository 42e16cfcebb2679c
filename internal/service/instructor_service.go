package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// InstructorService handles instructor business logic.
type InstructorService struct {
	instructorRepo *repository.InstructorRepository
}

// NewInstructorService creates a new InstructorService.
func NewInstructorService(instructorRepo *repository.InstructorRepository) *InstructorService {
	return &InstructorService{instructorRepo: instructorRepo}
}

// GetByID retrieves an instructor by ID.
func (s *InstructorService) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, id)
}

// List retrieves all instructors.
func (s *InstructorService) List(ctx context.Context) ([]model.Instructor, error) {
	return s.instructorRepo.List(ctx)
}

// Create creates a new instructor.
func (s *InstructorService) Create(ctx context.Context, i *model.Instructor) error {
	return s.instructorRepo.Create(ctx, i)
}

// Update modifies an existing instructor.
func (s *InstructorService) Update(ctx context.Context, i *model.Instructor) error {
	return s.instructorRepo.Update(ctx, i)
}

// Delete removes an instructor.
func (s *InstructorService) Delete(ctx context.Context, id int) error {
	return s.instructorRepo.Delete(ctx, id)
}
