package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// GroupService handles student group business logic.
type GroupService struct {
	groupRepo *repository.GroupRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// GetByID retrieves a group by its ID.
func (s *GroupService) GetByID(ctx context.Context, id int) (*model.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// List retrieves groups, optionally filtered by level.
func (s *GroupService) List(ctx context.Context, levelID int) ([]model.Group, error) {
	return s.groupRepo.List(ctx, levelID)
}

// Create creates a new group.
func (s *GroupService) Create(ctx context.Context, g *model.Group) error {
	return s.groupRepo.Create(ctx, g)
}

// Update modifies an existing group.
func (s *GroupService) Update(ctx context.Context, g *model.Group) error {
	return s.groupRepo.Update(ctx, g)
}

// Delete removes a group and cascades to its sections.
func (s *GroupService) Delete(ctx context.Context, id int) error {
	return s.groupRepo.Delete(ctx, id)
}
