package service

import (
	"context"
	"fmt"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
	"github.com/campusgrid/timetable-backend/internal/timegrid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// AssignmentError reports a session assignment that violates the block
// system contract. Index is the position in the submitted batch.
type AssignmentError struct {
	Index  int
	Reason string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.Index, e.Reason)
}

// ScheduleService handles schedule ingestion and listing. Every mutation
// bumps the grid version and queues a prerender so readers never see a
// stale rendered grid for long.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(scheduleRepo *repository.ScheduleRepository, rdb *redis.Client, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "schedule_service").Logger(),
	}
}

// ListViews returns the denormalized sessions matching the filter, with
// wall-clock times filled in from the block table.
func (s *ScheduleService) ListViews(ctx context.Context, f repository.ScheduleFilter) ([]model.SessionView, error) {
	views, err := s.scheduleRepo.ListViews(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range views {
		fillClockTimes(&views[i])
	}
	return views, nil
}

// Replace validates and atomically swaps the whole schedule. The upstream
// scheduler always emits a complete week, never a delta.
func (s *ScheduleService) Replace(ctx context.Context, entries []model.ScheduleEntry) error {
	for i := range entries {
		if err := validateEntry(i, &entries[i]); err != nil {
			return err
		}
	}

	if err := s.scheduleRepo.Replace(ctx, entries); err != nil {
		return err
	}

	s.log.Info().Int("entries", len(entries)).Msg("Schedule replaced")
	s.invalidate(ctx)
	return nil
}

// Clear removes every schedule entry. The grid falls back to the empty
// placeholder until a new schedule is published.
func (s *ScheduleService) Clear(ctx context.Context) error {
	if err := s.scheduleRepo.Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("Schedule cleared")
	s.invalidate(ctx)
	return nil
}

// Count returns the number of persisted schedule entries.
func (s *ScheduleService) Count(ctx context.Context) (int, error) {
	return s.scheduleRepo.Count(ctx)
}

// invalidate bumps the grid version and queues a prerender. Cache upkeep is
// best-effort: a Redis failure here only delays the rebuilt grid, it never
// fails the ingest that already committed.
func (s *ScheduleService) invalidate(ctx context.Context) {
	pipe := s.rdb.Pipeline()
	pipe.Incr(ctx, config.CacheKey.GridVersionKey())
	pipe.LPush(ctx, config.WorkerKey.PrerenderQueue, "rebuild")
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Failed to queue grid prerender")
	}
}

func validateEntry(i int, e *model.ScheduleEntry) error {
	if !timegrid.ValidDay(e.Day) {
		return &AssignmentError{Index: i, Reason: fmt.Sprintf("unknown day %q", e.Day)}
	}
	if e.StartBlock < 0 || e.StartBlock >= timegrid.BlocksPerDay {
		return &AssignmentError{Index: i, Reason: fmt.Sprintf("start_block %d out of range", e.StartBlock)}
	}
	if e.DurationBlocks < 1 || e.DurationBlocks > 2 {
		return &AssignmentError{Index: i, Reason: fmt.Sprintf("duration_blocks %d out of range", e.DurationBlocks)}
	}
	if e.StartBlock+e.DurationBlocks > timegrid.BlocksPerDay {
		return &AssignmentError{Index: i, Reason: "session runs past the end of the day"}
	}

	switch e.SessionType {
	case model.SessionLecture:
		// Lectures span the whole group; a section reference is meaningless.
		if e.SectionID != nil {
			return &AssignmentError{Index: i, Reason: "lecture must not reference a section"}
		}
	case model.SessionLab, model.SessionTutorial:
		if e.SectionID == nil {
			return &AssignmentError{Index: i, Reason: fmt.Sprintf("%s requires a section", e.SessionType)}
		}
	default:
		return &AssignmentError{Index: i, Reason: fmt.Sprintf("unknown session_type %q", e.SessionType)}
	}
	return nil
}

// fillClockTimes derives start and end wall-clock times from the block
// table. Out-of-range blocks are left blank rather than panicking; the DB
// check constraints make them unreachable in practice.
func fillClockTimes(v *model.SessionView) {
	if v.StartBlock < 0 || v.StartBlock >= timegrid.BlocksPerDay {
		return
	}
	last := v.StartBlock + v.DurationBlocks - 1
	if last < v.StartBlock || last >= timegrid.BlocksPerDay {
		last = v.StartBlock
	}
	v.StartTime = timegrid.BlockTimes[v.StartBlock].Start
	v.EndTime = timegrid.BlockTimes[last].End
}
