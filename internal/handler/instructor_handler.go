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

// InstructorHandler handles instructor management (CRUD).
type InstructorHandler struct {
	instructorService *service.InstructorService
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(instructorService *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// ListInstructors godoc
// GET /api/v1/instructors
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.instructorService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// GetInstructor godoc
// GET /api/v1/instructors/:id
func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	instructor, err := h.instructorService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instructor": instructor})
}

// CreateInstructorRequest is the payload for creating or updating an instructor.
type CreateInstructorRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// CreateInstructor godoc
// POST /api/v1/instructors
func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := &model.Instructor{Name: req.Name}

	if err := h.instructorService.Create(c.Request.Context(), instructor); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"instructor": instructor})
}

// UpdateInstructor godoc
// PUT /api/v1/instructors/:id
func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := &model.Instructor{ID: id, Name: req.Name}

	if err := h.instructorService.Update(c.Request.Context(), instructor); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.instructorService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"instructor": updated})
}

// DeleteInstructor godoc
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.instructorService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "instructor deleted successfully"})
}
