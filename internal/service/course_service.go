package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetByID retrieves a course with its staff assignments.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves courses, optionally filtered by level.
func (s *CourseService) List(ctx context.Context, levelID int) ([]model.Course, error) {
	return s.courseRepo.List(ctx, levelID)
}

// Create creates a new course together with its staff assignments.
func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Create(ctx, c)
}

// Update modifies an existing course and replaces its staff assignments.
func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Update(ctx, c)
}

// Delete removes a course. Schedule entries referencing it block deletion
// through the foreign key.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}
