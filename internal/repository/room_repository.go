package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomRepository handles room data access.
type RoomRepository struct {
	pool *pgxpool.Pool
}

// NewRoomRepository creates a new RoomRepository.
func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

const roomSelect = `
	SELECT r.id, r.building_id, r.number, r.type, r.capacity, r.created_at, r.updated_at, b.name
	FROM rooms r
	JOIN buildings b ON b.id = r.building_id`

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var rm model.Room
	err := row.Scan(&rm.ID, &rm.BuildingID, &rm.Number, &rm.Type, &rm.Capacity,
		&rm.CreatedAt, &rm.UpdatedAt, &rm.BuildingName)
	return rm, err
}

// GetByID retrieves a room with its building name.
func (r *RoomRepository) GetByID(ctx context.Context, id int) (*model.Room, error) {
	rm, err := scanRoom(r.pool.QueryRow(ctx, roomSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

// List retrieves all rooms, optionally filtered by building.
func (r *RoomRepository) List(ctx context.Context, buildingID int) ([]model.Room, error) {
	query := roomSelect
	args := []any{}
	if buildingID > 0 {
		query += ` WHERE r.building_id = $1`
		args = append(args, buildingID)
	}
	query += ` ORDER BY b.name, r.number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

// Create inserts a new room.
func (r *RoomRepository) Create(ctx context.Context, rm *model.Room) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO rooms (building_id, number, type, capacity)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		rm.BuildingID, rm.Number, rm.Type, rm.Capacity,
	).Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)
}

// Update modifies an existing room.
func (r *RoomRepository) Update(ctx context.Context, rm *model.Room) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE rooms SET building_id = $1, number = $2, type = $3, capacity = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		rm.BuildingID, rm.Number, rm.Type, rm.Capacity, rm.ID,
	)
	return err
}

// Delete removes a room by its ID.
func (r *RoomRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return err
}
