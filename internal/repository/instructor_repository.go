package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InstructorRepository handles instructor data access.
type InstructorRepository struct {
	pool *pgxpool.Pool
}

// NewInstructorRepository creates a new InstructorRepository.
func NewInstructorRepository(pool *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{pool: pool}
}

// GetByID retrieves an instructor by its ID.
func (r *InstructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	i := &model.Instructor{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM instructors WHERE id = $1`, id,
	).Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// List retrieves all instructors.
func (r *InstructorRepository) List(ctx context.Context) ([]model.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM instructors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []model.Instructor
	for rows.Next() {
		var i model.Instructor
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

// Create inserts a new instructor.
func (r *InstructorRepository) Create(ctx context.Context, i *model.Instructor) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO instructors (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		i.Name,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

// Update modifies an existing instructor.
func (r *InstructorRepository) Update(ctx context.Context, i *model.Instructor) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE instructors SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		i.Name, i.ID,
	)
	return err
}

// Delete removes an instructor by its ID.
func (r *InstructorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	return err
}
