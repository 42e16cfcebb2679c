package repository

import (
	"context"
	"fmt"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleFilter narrows a schedule listing. Zero values mean "no filter".
type ScheduleFilter struct {
	Day          string
	LevelID      int
	GroupID      int
	SectionID    int
	RoomID       int
	CourseID     int
	InstructorID int
	TAID         int
}

// ScheduleRepository handles persisted session assignments.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// ListViews returns the denormalized session records matching the filter,
// in insertion order. Insertion order is the scheduler's declaration order,
// which the grid builder's first-match lookup relies on.
func (r *ScheduleRepository) ListViews(ctx context.Context, f ScheduleFilter) ([]model.SessionView, error) {
	query := `
		SELECT e.day, e.start_block, e.duration_blocks, e.session_type,
		       c.code, c.name,
		       COALESCE(i.name, t.name, 'N/A'),
		       rm.number, rm.type, b.name,
		       l.id, l.name, g.number, s.number
		FROM schedule_entries e
		JOIN courses c   ON c.id = e.course_id
		JOIN groups g    ON g.id = e.group_id
		JOIN levels l    ON l.id = g.level_id
		LEFT JOIN sections s     ON s.id = e.section_id
		LEFT JOIN instructors i  ON i.id = e.instructor_id
		LEFT JOIN tas t          ON t.id = e.ta_id
		JOIN rooms rm    ON rm.id = e.room_id
		JOIN buildings b ON b.id = rm.building_id`

	where := []string{}
	args := []any{}
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.Day != "" {
		add("e.day = $%d", f.Day)
	}
	if f.LevelID > 0 {
		add("l.id = $%d", f.LevelID)
	}
	if f.GroupID > 0 {
		add("e.group_id = $%d", f.GroupID)
	}
	if f.SectionID > 0 {
		add("e.section_id = $%d", f.SectionID)
	}
	if f.RoomID > 0 {
		add("e.room_id = $%d", f.RoomID)
	}
	if f.CourseID > 0 {
		add("e.course_id = $%d", f.CourseID)
	}
	if f.InstructorID > 0 {
		add("e.instructor_id = $%d", f.InstructorID)
	}
	if f.TAID > 0 {
		add("e.ta_id = $%d", f.TAID)
	}

	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY e.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []model.SessionView
	for rows.Next() {
		var v model.SessionView
		if err := rows.Scan(&v.Day, &v.StartBlock, &v.DurationBlocks, &v.SessionType,
			&v.CourseCode, &v.CourseName, &v.InstructorOrTA,
			&v.RoomNumber, &v.RoomType, &v.BuildingName,
			&v.LevelID, &v.LevelName, &v.GroupNumber, &v.SectionNumber); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// Replace atomically swaps the whole schedule for the given entries. The
// previous schedule is dropped first — the upstream scheduler always emits a
// complete week, never a delta.
func (r *ScheduleRepository) Replace(ctx context.Context, entries []model.ScheduleEntry) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM schedule_entries`); err != nil {
			return err
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"schedule_entries"},
			[]string{"course_id", "group_id", "section_id", "instructor_id", "ta_id",
				"room_id", "day", "start_block", "duration_blocks", "session_type"},
			pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
				e := entries[i]
				return []any{e.CourseID, e.GroupID, e.SectionID, e.InstructorID, e.TAID,
					e.RoomID, e.Day, e.StartBlock, e.DurationBlocks, e.SessionType}, nil
			}),
		)
		return err
	})
}

// Clear removes every schedule entry.
func (r *ScheduleRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM schedule_entries`)
	return err
}

// Count returns the number of persisted schedule entries.
func (r *ScheduleRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM schedule_entries`).Scan(&n)
	return n, err
}
