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

// LevelHandler handles academic level management (CRUD).
type LevelHandler struct {
	levelService *service.LevelService
}

// NewLevelHandler creates a new LevelHandler.
func NewLevelHandler(levelService *service.LevelService) *LevelHandler {
	return &LevelHandler{levelService: levelService}
}

// ListLevels godoc
// GET /api/v1/levels
func (h *LevelHandler) ListLevels(c *gin.Context) {
	levels, err := h.levelService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"levels": levels})
}

// GetLevel godoc
// GET /api/v1/levels/:id
func (h *LevelHandler) GetLevel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	level, err := h.levelService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"level": level})
}

// CreateLevelRequest is the payload for creating or updating a level.
type CreateLevelRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=100"`
	Specialization      *string `json:"specialization" binding:"omitempty,max=100"`
	NumSections         int     `json:"num_sections" binding:"required,min=1"`
	NumGroupsPerSection int     `json:"num_groups_per_section" binding:"required,min=1"`
	TotalStudents       int     `json:"total_students" binding:"required,min=1"`
}

// CreateLevel godoc
// POST /api/v1/levels
func (h *LevelHandler) CreateLevel(c *gin.Context) {
	var req CreateLevelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	level := &model.Level{
		Name:                req.Name,
		Specialization:      req.Specialization,
		NumSections:         req.NumSections,
		NumGroupsPerSection: req.NumGroupsPerSection,
		TotalStudents:       req.TotalStudents,
	}

	if err := h.levelService.Create(c.Request.Context(), level); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"level": level})
}

// UpdateLevel godoc
// PUT /api/v1/levels/:id
func (h *LevelHandler) UpdateLevel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateLevelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	level := &model.Level{
		ID:                  id,
		Name:                req.Name,
		Specialization:      req.Specialization,
		NumSections:         req.NumSections,
		NumGroupsPerSection: req.NumGroupsPerSection,
		TotalStudents:       req.TotalStudents,
	}

	if err := h.levelService.Update(c.Request.Context(), level); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.levelService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"level": updated})
}

// DeleteLevel godoc
// DELETE /api/v1/levels/:id
// Cascades to the level's groups and sections; fails while courses still
// reference the level.
func (h *LevelHandler) DeleteLevel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.levelService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "level deleted successfully"})
}
