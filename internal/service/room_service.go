package service

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
)

// RoomService handles room business logic.
type RoomService struct {
	roomRepo *repository.RoomRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// GetByID retrieves a room by its ID.
func (s *RoomService) GetByID(ctx context.Context, id int) (*model.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// List retrieves rooms, optionally filtered by building.
func (s *RoomService) List(ctx context.Context, buildingID int) ([]model.Room, error) {
	return s.roomRepo.List(ctx, buildingID)
}

// Create creates a new room.
func (s *RoomService) Create(ctx context.Context, rm *model.Room) error {
	return s.roomRepo.Create(ctx, rm)
}

// Update modifies an existing room.
func (s *RoomService) Update(ctx context.Context, rm *model.Room) error {
	return s.roomRepo.Update(ctx, rm)
}

// Delete removes a room. Schedule entries referencing it block deletion
// through the foreign key.
func (s *RoomService) Delete(ctx context.Context, id int) error {
	return s.roomRepo.Delete(ctx, id)
}
