package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
	"github.com/campusgrid/timetable-backend/internal/timegrid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// GridService builds and caches the weekly schedule grid. Rendered grids
// are cached in Redis keyed by schedule version plus filter fingerprint, so
// a version bump implicitly invalidates every cached variant.
type GridService struct {
	levelRepo    *repository.LevelRepository
	groupRepo    *repository.GroupRepository
	sectionRepo  *repository.SectionRepository
	scheduleRepo *repository.ScheduleRepository
	rdb          *redis.Client
	cacheTTL     time.Duration
	log          zerolog.Logger
}

// NewGridService creates a new GridService.
func NewGridService(
	levelRepo *repository.LevelRepository,
	groupRepo *repository.GroupRepository,
	sectionRepo *repository.SectionRepository,
	scheduleRepo *repository.ScheduleRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *GridService {
	return &GridService{
		levelRepo:    levelRepo,
		groupRepo:    groupRepo,
		sectionRepo:  sectionRepo,
		scheduleRepo: scheduleRepo,
		rdb:          rdb,
		cacheTTL:     cacheTTL,
		log:          log.With().Str("component", "grid_service").Logger(),
	}
}

// Grid returns the weekly grid for the given filter, serving from cache
// when possible. A cache read failure degrades to a fresh build.
func (s *GridService) Grid(ctx context.Context, f repository.ScheduleFilter) (*timegrid.Grid, error) {
	key := config.CacheKey.GridKey(s.fingerprint(ctx, f))

	if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var g timegrid.Grid
		if err := json.Unmarshal(data, &g); err == nil {
			return &g, nil
		}
		s.log.Warn().Str("key", key).Msg("Corrupt cached grid, rebuilding")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Grid cache read failed, building fresh")
	}

	g, err := s.build(ctx, f)
	if err != nil {
		return nil, err
	}

	s.cache(ctx, key, g)
	return g, nil
}

// Warm rebuilds the unfiltered grid and refreshes its cache entry. The
// prerender worker calls this after every schedule mutation so the common
// request is always a cache hit.
func (s *GridService) Warm(ctx context.Context) (*timegrid.Grid, error) {
	g, err := s.build(ctx, repository.ScheduleFilter{})
	if err != nil {
		return nil, err
	}
	s.cache(ctx, config.CacheKey.GridKey(s.fingerprint(ctx, repository.ScheduleFilter{})), g)
	return g, nil
}

// build fetches the roster and sessions concurrently and assembles the grid.
// The four queries are independent reads, so the latency is the slowest
// query rather than the sum.
func (s *GridService) build(ctx context.Context, f repository.ScheduleFilter) (*timegrid.Grid, error) {
	var (
		roster   timegrid.Roster
		sessions []model.SessionView
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		roster.Levels, err = s.levelRepo.List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		roster.Groups, err = s.groupRepo.List(egCtx, 0)
		return err
	})
	eg.Go(func() error {
		var err error
		roster.Sections, err = s.sectionRepo.List(egCtx, 0, 0)
		return err
	})
	eg.Go(func() error {
		views, err := s.scheduleRepo.ListViews(egCtx, f)
		if err != nil {
			return err
		}
		sessions = views
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return timegrid.Build(roster, sessions), nil
}

func (s *GridService) cache(ctx context.Context, key string, g *timegrid.Grid) {
	data, err := json.Marshal(g)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to marshal grid for cache")
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Grid cache write failed")
	}
}

// fingerprint builds the cache key suffix: the current schedule version
// plus the normalized filter. "full" stands for the unfiltered grid.
func (s *GridService) fingerprint(ctx context.Context, f repository.ScheduleFilter) string {
	version, err := s.rdb.Get(ctx, config.CacheKey.GridVersionKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Grid version read failed, assuming 0")
	}

	var parts []string
	add := func(name string, v int) {
		if v > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", name, v))
		}
	}
	if f.Day != "" {
		parts = append(parts, "day="+f.Day)
	}
	add("level", f.LevelID)
	add("group", f.GroupID)
	add("section", f.SectionID)
	add("room", f.RoomID)
	add("course", f.CourseID)
	add("instructor", f.InstructorID)
	add("ta", f.TAID)

	suffix := "full"
	if len(parts) > 0 {
		suffix = strings.Join(parts, ",")
	}
	return fmt.Sprintf("v%d:%s", version, suffix)
}
