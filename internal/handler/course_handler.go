package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/response"
	"github.com/campusgrid/timetable-backend/internal/service"
	"github.com/campusgrid/timetable-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CourseHandler handles course management (CRUD).
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses godoc
// GET /api/v1/courses?level_id=N
func (h *CourseHandler) ListCourses(c *gin.Context) {
	levelID, _ := strconv.Atoi(c.Query("level_id"))

	courses, err := h.courseService.List(c.Request.Context(), levelID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// GetCourse godoc
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// CreateCourseRequest is the payload for creating or updating a course.
// Lab and tutorial slots accept half values (e.g. 1.5 means a biweekly
// alternation) the same way the upstream scheduler encodes them.
type CreateCourseRequest struct {
	Code          string  `json:"code" binding:"required,min=1,max=20"`
	Name          string  `json:"name" binding:"required,min=1,max=200"`
	LevelID       int     `json:"level_id" binding:"required,min=1"`
	LectureSlots  int     `json:"lecture_slots" binding:"min=0"`
	LabSlots      float64 `json:"lab_slots" binding:"min=0"`
	TutorialSlots float64 `json:"tutorial_slots" binding:"min=0"`
	InstructorIDs []int   `json:"instructor_ids"`
	TAIDs         []int   `json:"ta_ids"`
}

// CreateCourse godoc
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := &model.Course{
		Code:          req.Code,
		Name:          req.Name,
		LevelID:       req.LevelID,
		LectureSlots:  req.LectureSlots,
		LabSlots:      req.LabSlots,
		TutorialSlots: req.TutorialSlots,
		InstructorIDs: req.InstructorIDs,
		TAIDs:         req.TAIDs,
	}

	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // duplicate course code
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503": // unknown level, instructor or TA
				response.Fail(c, http.StatusBadRequest, response.ErrValidation)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// UpdateCourse godoc
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := &model.Course{
		ID:            id,
		Code:          req.Code,
		Name:          req.Name,
		LevelID:       req.LevelID,
		LectureSlots:  req.LectureSlots,
		LabSlots:      req.LabSlots,
		TutorialSlots: req.TutorialSlots,
		InstructorIDs: req.InstructorIDs,
		TAIDs:         req.TAIDs,
	}

	if err := h.courseService.Update(c.Request.Context(), course); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.courseService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"course": updated})
}

// DeleteCourse godoc
// DELETE /api/v1/courses/:id
// Fails while schedule entries still reference the course.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}
