package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BuildingRepository handles building data access.
type BuildingRepository struct {
	pool *pgxpool.Pool
}

// NewBuildingRepository creates a new BuildingRepository.
func NewBuildingRepository(pool *pgxpool.Pool) *BuildingRepository {
	return &BuildingRepository{pool: pool}
}

// GetByID retrieves a building by its ID.
func (r *BuildingRepository) GetByID(ctx context.Context, id int) (*model.Building, error) {
	b := &model.Building{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM buildings WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List retrieves all buildings.
func (r *BuildingRepository) List(ctx context.Context) ([]model.Building, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM buildings ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buildings []model.Building
	for rows.Next() {
		var b model.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

// Create inserts a new building.
func (r *BuildingRepository) Create(ctx context.Context, b *model.Building) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO buildings (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		b.Name,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update modifies an existing building.
func (r *BuildingRepository) Update(ctx context.Context, b *model.Building) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE buildings SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		b.Name, b.ID,
	)
	return err
}

// Delete removes a building by its ID. Rooms inside it cascade.
func (r *BuildingRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	return err
}
