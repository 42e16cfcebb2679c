package router

import (
	"net/http"
	"time"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/handler"
	"github.com/campusgrid/timetable-backend/internal/middleware"
	"github.com/campusgrid/timetable-backend/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Building   *handler.BuildingHandler
	Hall       *handler.HallHandler
	Room       *handler.RoomHandler
	Level      *handler.LevelHandler
	Group      *handler.GroupHandler
	Section    *handler.SectionHandler
	Course     *handler.CourseHandler
	Instructor *handler.InstructorHandler
	TA         *handler.TAHandler
	Schedule   *handler.ScheduleHandler
	Board      *handler.BoardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally. Grid JSON and HTML payloads are
	// the biggest responses and compress very well.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for schedule publishing: each publish rewrites the whole
	// week, so a handful per minute per IP is plenty.
	publishLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := router.Group("/api/v1")
	{
		// ─── Roster management ─────────────────────────────────────────
		buildings := api.Group("/buildings")
		{
			buildings.GET("", handlers.Building.ListBuildings)
			buildings.GET("/:id", handlers.Building.GetBuilding)
			buildings.POST("", handlers.Building.CreateBuilding)
			buildings.PUT("/:id", handlers.Building.UpdateBuilding)
			buildings.DELETE("/:id", handlers.Building.DeleteBuilding)
		}

		halls := api.Group("/halls")
		{
			halls.GET("", handlers.Hall.ListHalls)
			halls.GET("/:id", handlers.Hall.GetHall)
			halls.POST("", handlers.Hall.CreateHall)
			halls.PUT("/:id", handlers.Hall.UpdateHall)
			halls.DELETE("/:id", handlers.Hall.DeleteHall)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", handlers.Room.ListRooms)
			rooms.GET("/:id", handlers.Room.GetRoom)
			rooms.POST("", handlers.Room.CreateRoom)
			rooms.PUT("/:id", handlers.Room.UpdateRoom)
			rooms.DELETE("/:id", handlers.Room.DeleteRoom)
		}

		levels := api.Group("/levels")
		{
			levels.GET("", handlers.Level.ListLevels)
			levels.GET("/:id", handlers.Level.GetLevel)
			levels.POST("", handlers.Level.CreateLevel)
			levels.PUT("/:id", handlers.Level.UpdateLevel)
			levels.DELETE("/:id", handlers.Level.DeleteLevel)
		}

		groups := api.Group("/groups")
		{
			groups.GET("", handlers.Group.ListGroups)
			groups.GET("/:id", handlers.Group.GetGroup)
			groups.POST("", handlers.Group.CreateGroup)
			groups.PUT("/:id", handlers.Group.UpdateGroup)
			groups.DELETE("/:id", handlers.Group.DeleteGroup)
		}

		sections := api.Group("/sections")
		{
			sections.GET("", handlers.Section.ListSections)
			sections.GET("/:id", handlers.Section.GetSection)
			sections.POST("", handlers.Section.CreateSection)
			sections.PUT("/:id", handlers.Section.UpdateSection)
			sections.DELETE("/:id", handlers.Section.DeleteSection)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", handlers.Course.ListCourses)
			courses.GET("/:id", handlers.Course.GetCourse)
			courses.POST("", handlers.Course.CreateCourse)
			courses.PUT("/:id", handlers.Course.UpdateCourse)
			courses.DELETE("/:id", handlers.Course.DeleteCourse)
		}

		instructors := api.Group("/instructors")
		{
			instructors.GET("", handlers.Instructor.ListInstructors)
			instructors.GET("/:id", handlers.Instructor.GetInstructor)
			instructors.POST("", handlers.Instructor.CreateInstructor)
			instructors.PUT("/:id", handlers.Instructor.UpdateInstructor)
			instructors.DELETE("/:id", handlers.Instructor.DeleteInstructor)
		}

		tas := api.Group("/tas")
		{
			tas.GET("", handlers.TA.ListTAs)
			tas.GET("/:id", handlers.TA.GetTA)
			tas.POST("", handlers.TA.CreateTA)
			tas.PUT("/:id", handlers.TA.UpdateTA)
			tas.DELETE("/:id", handlers.TA.DeleteTA)
		}

		// ─── Schedule & grid ───────────────────────────────────────────
		schedule := api.Group("/schedule")
		{
			schedule.GET("", handlers.Schedule.ListSchedule)
			schedule.POST("", publishLimiter.Middleware(), handlers.Schedule.PublishSchedule)
			schedule.DELETE("", handlers.Schedule.ClearSchedule)
			schedule.GET("/grid", middleware.CacheControl(30), handlers.Schedule.GetGrid)
			schedule.GET("/grid/html", middleware.CacheControl(30), handlers.Schedule.GetGridHTML)
		}
	}

	// ─── WebSocket Group ───────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/board", handlers.Board.BoardStream)
	}

	return router
}
