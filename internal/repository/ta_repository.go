package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TARepository handles teaching assistant data access.
type TARepository struct {
	pool *pgxpool.Pool
}

// NewTARepository creates a new TARepository.
func NewTARepository(pool *pgxpool.Pool) *TARepository {
	return &TARepository{pool: pool}
}

// GetByID retrieves a TA by its ID.
func (r *TARepository) GetByID(ctx context.Context, id int) (*model.TA, error) {
	t := &model.TA{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM tas WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List retrieves all TAs.
func (r *TARepository) List(ctx context.Context) ([]model.TA, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM tas ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tas []model.TA
	for rows.Next() {
		var t model.TA
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tas = append(tas, t)
	}
	return tas, rows.Err()
}

// Create inserts a new TA.
func (r *TARepository) Create(ctx context.Context, t *model.TA) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO tas (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		t.Name,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update modifies an existing TA.
func (r *TARepository) Update(ctx context.Context, t *model.TA) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE tas SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		t.Name, t.ID,
	)
	return err
}

// Delete removes a TA by its ID.
func (r *TARepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tas WHERE id = $1`, id)
	return err
}
