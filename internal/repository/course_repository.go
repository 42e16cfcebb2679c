package repository

import (
	"context"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access, including the qualified
// instructor and TA link tables.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByID retrieves a course with its staff qualification sets.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, name, level_id, lecture_slots, lab_slots, tutorial_slots, created_at, updated_at
		 FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.Code, &c.Name, &c.LevelID, &c.LectureSlots, &c.LabSlots,
		&c.TutorialSlots, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := r.loadStaff(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all courses with their staff qualification sets.
func (r *CourseRepository) List(ctx context.Context, levelID int) ([]model.Course, error) {
	query := `SELECT id, code, name, level_id, lecture_slots, lab_slots, tutorial_slots, created_at, updated_at
	          FROM courses`
	args := []any{}
	if levelID > 0 {
		query += ` WHERE level_id = $1`
		args = append(args, levelID)
	}
	query += ` ORDER BY code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.LevelID, &c.LectureSlots,
			&c.LabSlots, &c.TutorialSlots, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range courses {
		if err := r.loadStaff(ctx, &courses[i]); err != nil {
			return nil, err
		}
	}
	return courses, nil
}

// Create inserts a new course and its staff links in one transaction.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO courses (code, name, level_id, lecture_slots, lab_slots, tutorial_slots)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, created_at, updated_at`,
			c.Code, c.Name, c.LevelID, c.LectureSlots, c.LabSlots, c.TutorialSlots,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return err
		}
		return r.replaceStaff(ctx, tx, c)
	})
}

// Update modifies a course and replaces its staff links in one transaction.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE courses SET code = $1, name = $2, level_id = $3, lecture_slots = $4,
			        lab_slots = $5, tutorial_slots = $6, updated_at = CURRENT_TIMESTAMP
			 WHERE id = $7`,
			c.Code, c.Name, c.LevelID, c.LectureSlots, c.LabSlots, c.TutorialSlots, c.ID,
		)
		if err != nil {
			return err
		}
		return r.replaceStaff(ctx, tx, c)
	})
}

// Delete removes a course by its ID. Links and schedule entries cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

func (r *CourseRepository) loadStaff(ctx context.Context, c *model.Course) error {
	instructorIDs, err := r.collectIDs(ctx,
		`SELECT instructor_id FROM course_instructors WHERE course_id = $1 ORDER BY instructor_id`, c.ID)
	if err != nil {
		return err
	}
	taIDs, err := r.collectIDs(ctx,
		`SELECT ta_id FROM course_tas WHERE course_id = $1 ORDER BY ta_id`, c.ID)
	if err != nil {
		return err
	}
	c.InstructorIDs, c.TAIDs = instructorIDs, taIDs
	return nil
}

func (r *CourseRepository) collectIDs(ctx context.Context, query string, courseID int) ([]int, error) {
	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *CourseRepository) replaceStaff(ctx context.Context, tx pgx.Tx, c *model.Course) error {
	if _, err := tx.Exec(ctx, `DELETE FROM course_instructors WHERE course_id = $1`, c.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM course_tas WHERE course_id = $1`, c.ID); err != nil {
		return err
	}
	for _, id := range c.InstructorIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO course_instructors (course_id, instructor_id) VALUES ($1, $2)`, c.ID, id); err != nil {
			return err
		}
	}
	for _, id := range c.TAIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO course_tas (course_id, ta_id) VALUES ($1, $2)`, c.ID, id); err != nil {
			return err
		}
	}
	return nil
}
