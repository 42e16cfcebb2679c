package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SectionRepository handles section data access.
type SectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

// GetByID retrieves a section by its ID.
func (r *SectionRepository) GetByID(ctx context.Context, id int) (*model.Section, error) {
	s := &model.Section{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, level_id, group_id, number, num_students, created_at, updated_at
		 FROM sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.LevelID, &s.GroupID, &s.Number, &s.NumStudents, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves sections, optionally filtered by level or group.
func (r *SectionRepository) List(ctx context.Context, levelID, groupID int) ([]model.Section, error) {
	query := `SELECT id, level_id, group_id, number, num_students, created_at, updated_at FROM sections`
	args := []any{}
	switch {
	case groupID > 0:
		query += ` WHERE group_id = $1`
		args = append(args, groupID)
	case levelID > 0:
		query += ` WHERE level_id = $1`
		args = append(args, levelID)
	}
	query += ` ORDER BY level_id, group_id, number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.LevelID, &s.GroupID, &s.Number, &s.NumStudents, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, s *model.Section) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sections (level_id, group_id, number, num_students)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.LevelID, s.GroupID, s.Number, s.NumStudents,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing section.
func (r *SectionRepository) Update(ctx context.Context, s *model.Section) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sections SET level_id = $1, group_id = $2, number = $3, num_students = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		s.LevelID, s.GroupID, s.Number, s.NumStudents, s.ID,
	)
	return err
}

// Delete removes a section by its ID.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	return err
}
