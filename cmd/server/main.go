package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/database"
	"github.com/campusgrid/timetable-backend/internal/handler"
	"github.com/campusgrid/timetable-backend/internal/logger"
	"github.com/campusgrid/timetable-backend/internal/repository"
	"github.com/campusgrid/timetable-backend/internal/router"
	"github.com/campusgrid/timetable-backend/internal/service"
	"github.com/campusgrid/timetable-backend/internal/validator"
	"github.com/campusgrid/timetable-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CampusGrid Timetable Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	buildingRepo := repository.NewBuildingRepository(pool)
	hallRepo := repository.NewHallRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	levelRepo := repository.NewLevelRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	taRepo := repository.NewTARepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	buildingService := service.NewBuildingService(buildingRepo)
	hallService := service.NewHallService(hallRepo)
	roomService := service.NewRoomService(roomRepo)
	levelService := service.NewLevelService(levelRepo)
	groupService := service.NewGroupService(groupRepo)
	sectionService := service.NewSectionService(sectionRepo)
	courseService := service.NewCourseService(courseRepo)
	instructorService := service.NewInstructorService(instructorRepo)
	taService := service.NewTAService(taRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, rdb, log)
	gridService := service.NewGridService(levelRepo, groupRepo, sectionRepo, scheduleRepo, rdb, cfg.GridCacheTTL, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Building:   handler.NewBuildingHandler(buildingService),
		Hall:       handler.NewHallHandler(hallService),
		Room:       handler.NewRoomHandler(roomService),
		Level:      handler.NewLevelHandler(levelService),
		Group:      handler.NewGroupHandler(groupService),
		Section:    handler.NewSectionHandler(sectionService),
		Course:     handler.NewCourseHandler(courseService),
		Instructor: handler.NewInstructorHandler(instructorService),
		TA:         handler.NewTAHandler(taService),
		Schedule:   handler.NewScheduleHandler(scheduleService, gridService, log),
		Board:      handler.NewBoardHandler(rdb, gridService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	prerenderWorker := worker.NewPrerenderWorker(gridService, rdb, log)
	go prerenderWorker.Start(workerCtx)

	// ─── Prewarm Grid Cache ───────────────────────────────────────────
	// Build the unfiltered grid BEFORE accepting traffic so the first
	// board to connect gets a cache hit.
	if _, err := gridService.Warm(ctx); err != nil {
		log.Warn().Err(err).Msg("Grid prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the prerender worker and let in-flight rebuilds finish.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
