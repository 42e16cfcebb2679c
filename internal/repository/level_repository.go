package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LevelRepository handles academic level data access.
type LevelRepository struct {
	pool *pgxpool.Pool
}

// NewLevelRepository creates a new LevelRepository.
func NewLevelRepository(pool *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{pool: pool}
}

// GetByID retrieves a level by its ID.
func (r *LevelRepository) GetByID(ctx context.Context, id int) (*model.Level, error) {
	l := &model.Level{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, specialization, num_sections, num_groups_per_section, total_students, created_at, updated_at
		 FROM levels WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Specialization, &l.NumSections, &l.NumGroupsPerSection,
		&l.TotalStudents, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List retrieves all levels in id order, which is also the grid column order.
func (r *LevelRepository) List(ctx context.Context) ([]model.Level, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, specialization, num_sections, num_groups_per_section, total_students, created_at, updated_at
		 FROM levels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []model.Level
	for rows.Next() {
		var l model.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.Specialization, &l.NumSections,
			&l.NumGroupsPerSection, &l.TotalStudents, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// Create inserts a new level.
func (r *LevelRepository) Create(ctx context.Context, l *model.Level) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO levels (name, specialization, num_sections, num_groups_per_section, total_students)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		l.Name, l.Specialization, l.NumSections, l.NumGroupsPerSection, l.TotalStudents,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update modifies an existing level.
func (r *LevelRepository) Update(ctx context.Context, l *model.Level) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE levels SET name = $1, specialization = $2, num_sections = $3,
		        num_groups_per_section = $4, total_students = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		l.Name, l.Specialization, l.NumSections, l.NumGroupsPerSection, l.TotalStudents, l.ID,
	)
	return err
}

// Delete removes a level by its ID. Groups, sections and courses cascade.
func (r *LevelRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM levels WHERE id = $1`, id)
	return err
}
