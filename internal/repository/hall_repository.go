package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HallRepository handles standalone lecture hall data access.
type HallRepository struct {
	pool *pgxpool.Pool
}

// NewHallRepository creates a new HallRepository.
func NewHallRepository(pool *pgxpool.Pool) *HallRepository {
	return &HallRepository{pool: pool}
}

// GetByID retrieves a hall by its ID.
func (r *HallRepository) GetByID(ctx context.Context, id int) (*model.Hall, error) {
	h := &model.Hall{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, capacity, created_at, updated_at FROM halls WHERE id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.Capacity, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// List retrieves all halls.
func (r *HallRepository) List(ctx context.Context) ([]model.Hall, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, capacity, created_at, updated_at FROM halls ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var halls []model.Hall
	for rows.Next() {
		var h model.Hall
		if err := rows.Scan(&h.ID, &h.Name, &h.Capacity, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		halls = append(halls, h)
	}
	return halls, rows.Err()
}

// Create inserts a new hall.
func (r *HallRepository) Create(ctx context.Context, h *model.Hall) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO halls (name, capacity) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		h.Name, h.Capacity,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

// Update modifies an existing hall.
func (r *HallRepository) Update(ctx context.Context, h *model.Hall) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE halls SET name = $1, capacity = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		h.Name, h.Capacity, h.ID,
	)
	return err
}

// Delete removes a hall by its ID.
func (r *HallRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM halls WHERE id = $1`, id)
	return err
}
