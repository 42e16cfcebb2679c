package worker

import (
	"context"
	"time"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// PrerenderPollTimeout bounds each BLPop so shutdown is prompt.
	PrerenderPollTimeout = 1 * time.Second

	// prerenderCoalesceWindow lets rapid successive publishes collapse
	// into a single rebuild.
	prerenderCoalesceWindow = 200 * time.Millisecond
)

// PrerenderWorker rebuilds and caches the weekly grid off the request path.
// Schedule mutations enqueue a job; the worker rebuilds the unfiltered grid,
// warms its cache entry and notifies live boards over Pub/Sub.
type PrerenderWorker struct {
	gridService *service.GridService
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewPrerenderWorker creates a new PrerenderWorker.
func NewPrerenderWorker(gridService *service.GridService, rdb *redis.Client, log zerolog.Logger) *PrerenderWorker {
	return &PrerenderWorker{
		gridService: gridService,
		rdb:         rdb,
		log:         log.With().Str("component", "prerender_worker").Logger(),
	}
}

// Start runs the worker loop until the context is cancelled.
func (w *PrerenderWorker) Start(ctx context.Context) {
	w.log.Info().Msg("PrerenderWorker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested")
			return
		default:
			item, err := w.rdb.BLPop(ctx, PrerenderPollTimeout, config.WorkerKey.PrerenderQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			w.drainPending(ctx)
			w.rebuild(ctx)
		}
	}
}

// drainPending collapses queued duplicates so a burst of publishes costs
// one rebuild instead of one per job.
func (w *PrerenderWorker) drainPending(ctx context.Context) {
	time.Sleep(prerenderCoalesceWindow)
	for {
		if _, err := w.rdb.LPop(ctx, config.WorkerKey.PrerenderQueue).Result(); err != nil {
			return
		}
	}
}

func (w *PrerenderWorker) rebuild(ctx context.Context) {
	start := time.Now()

	grid, err := w.gridService.Warm(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Grid prerender failed")
		return
	}

	// Boards re-fetch from the warmed cache on this signal; the payload
	// itself is irrelevant.
	if err := w.rdb.Publish(ctx, config.CacheKey.BoardChannel(), "refresh").Err(); err != nil {
		w.log.Warn().Err(err).Msg("Board refresh publish failed")
	}

	w.log.Info().
		Bool("empty", grid.Empty).
		Int("columns", grid.Columns).
		Dur("took", time.Since(start)).
		Msg("Grid prerendered")
}
