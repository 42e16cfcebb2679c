package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/render"
	"github.com/campusgrid/timetable-backend/internal/repository"
	"github.com/campusgrid/timetable-backend/internal/response"
	"github.com/campusgrid/timetable-backend/internal/service"
	"github.com/campusgrid/timetable-backend/internal/timegrid"
	"github.com/campusgrid/timetable-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// ScheduleHandler handles schedule ingestion, listing and grid rendering.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	gridService     *service.GridService
	log             zerolog.Logger
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService, gridService *service.GridService, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		gridService:     gridService,
		log:             log.With().Str("component", "schedule_handler").Logger(),
	}
}

// parseFilter extracts the optional schedule filter from query parameters.
func parseFilter(c *gin.Context) (repository.ScheduleFilter, bool) {
	var f repository.ScheduleFilter

	f.Day = c.Query("day")
	if f.Day != "" && !timegrid.ValidDay(f.Day) {
		return f, false
	}

	f.LevelID, _ = strconv.Atoi(c.Query("level_id"))
	f.GroupID, _ = strconv.Atoi(c.Query("group_id"))
	f.SectionID, _ = strconv.Atoi(c.Query("section_id"))
	f.RoomID, _ = strconv.Atoi(c.Query("room_id"))
	f.CourseID, _ = strconv.Atoi(c.Query("course_id"))
	f.InstructorID, _ = strconv.Atoi(c.Query("instructor_id"))
	f.TAID, _ = strconv.Atoi(c.Query("ta_id"))
	return f, true
}

// ListSchedule godoc
// GET /api/v1/schedule
// Lists sessions in scheduler declaration order, optionally filtered by
// day, level, group, section, room, course, instructor or TA.
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	sessions, err := h.scheduleService.ListViews(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if sessions == nil {
		sessions = []model.SessionView{}
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// ScheduleEntryRequest is one session assignment in a publish payload.
// StartBlock is a pointer so block 0 survives required-field validation.
type ScheduleEntryRequest struct {
	CourseID       int    `json:"course_id" binding:"required,min=1"`
	GroupID        int    `json:"group_id" binding:"required,min=1"`
	SectionID      *int   `json:"section_id"`
	InstructorID   *int   `json:"instructor_id"`
	TAID           *int   `json:"ta_id"`
	RoomID         int    `json:"room_id" binding:"required,min=1"`
	Day            string `json:"day" binding:"required"`
	StartBlock     *int   `json:"start_block" binding:"required,min=0,max=7"`
	DurationBlocks int    `json:"duration_blocks" binding:"required,min=1,max=2"`
	SessionType    string `json:"session_type" binding:"required,oneof=LECTURE LAB TUTORIAL"`
}

// PublishScheduleRequest is the full-week payload emitted by the scheduler.
type PublishScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" binding:"required,dive"`
}

// PublishSchedule godoc
// POST /api/v1/schedule
// Atomically replaces the whole schedule with the submitted week.
func (h *ScheduleHandler) PublishSchedule(c *gin.Context) {
	var req PublishScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entries := make([]model.ScheduleEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = model.ScheduleEntry{
			CourseID:       e.CourseID,
			GroupID:        e.GroupID,
			SectionID:      e.SectionID,
			InstructorID:   e.InstructorID,
			TAID:           e.TAID,
			RoomID:         e.RoomID,
			Day:            e.Day,
			StartBlock:     *e.StartBlock,
			DurationBlocks: e.DurationBlocks,
			SessionType:    e.SessionType,
		}
	}

	if err := h.scheduleService.Replace(c.Request.Context(), entries); err != nil {
		var ae *service.AssignmentError
		if errors.As(err, &ae) {
			response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrInvalidSession,
				map[string]string{"entry_" + strconv.Itoa(ae.Index): ae.Reason})
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // unknown course/group/room reference
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidSession)
			return
		}
		h.log.Error().Err(err).Msg("Schedule publish failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"published": len(entries)})
}

// ClearSchedule godoc
// DELETE /api/v1/schedule
// Removes every session; the grid reverts to the empty placeholder.
func (h *ScheduleHandler) ClearSchedule(c *gin.Context) {
	if err := h.scheduleService.Clear(c.Request.Context()); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "schedule cleared successfully"})
}

// GetGrid godoc
// GET /api/v1/schedule/grid
// Returns the weekly grid intermediate representation as JSON.
func (h *ScheduleHandler) GetGrid(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	grid, err := h.gridService.Grid(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Grid build failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"grid": grid})
}

// GetGridHTML godoc
// GET /api/v1/schedule/grid/html
// Returns the grid rendered as a ready-to-embed HTML table.
func (h *ScheduleHandler) GetGridHTML(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	grid, err := h.gridService.Grid(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Grid build failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.HTML(grid)))
}
