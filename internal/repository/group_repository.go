package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GroupRepository handles lecture group data access.
type GroupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

// GetByID retrieves a group by its ID.
func (r *GroupRepository) GetByID(ctx context.Context, id int) (*model.Group, error) {
	g := &model.Group{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, level_id, number, num_students, created_at, updated_at
		 FROM groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.LevelID, &g.Number, &g.NumStudents, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// List retrieves groups, optionally filtered by level.
func (r *GroupRepository) List(ctx context.Context, levelID int) ([]model.Group, error) {
	query := `SELECT id, level_id, number, num_students, created_at, updated_at FROM groups`
	args := []any{}
	if levelID > 0 {
		query += ` WHERE level_id = $1`
		args = append(args, levelID)
	}
	query += ` ORDER BY level_id, number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.LevelID, &g.Number, &g.NumStudents, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, g *model.Group) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO groups (level_id, number, num_students)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		g.LevelID, g.Number, g.NumStudents,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// Update modifies an existing group.
func (r *GroupRepository) Update(ctx context.Context, g *model.Group) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE groups SET level_id = $1, number = $2, num_students = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		g.LevelID, g.Number, g.NumStudents, g.ID,
	)
	return err
}

// Delete removes a group by its ID. Its sections cascade.
func (r *GroupRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	return err
}
