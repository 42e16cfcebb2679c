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

// SectionHandler handles section management (CRUD).
type SectionHandler struct {
	sectionService *service.SectionService
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sectionService *service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// ListSections godoc
// GET /api/v1/sections?level_id=N&group_id=N
func (h *SectionHandler) ListSections(c *gin.Context) {
	levelID, _ := strconv.Atoi(c.Query("level_id"))
	groupID, _ := strconv.Atoi(c.Query("group_id"))

	sections, err := h.sectionService.List(c.Request.Context(), levelID, groupID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// GetSection godoc
// GET /api/v1/sections/:id
func (h *SectionHandler) GetSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	section, err := h.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"section": section})
}

// CreateSectionRequest is the payload for creating or updating a section.
// Section numbers start at 0, matching the scheduler's numbering.
type CreateSectionRequest struct {
	LevelID     int  `json:"level_id" binding:"required,min=1"`
	GroupID     int  `json:"group_id" binding:"required,min=1"`
	Number      *int `json:"number" binding:"required,min=0"`
	NumStudents int  `json:"num_students" binding:"required,min=1"`
}

// CreateSection godoc
// POST /api/v1/sections
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{
		LevelID:     req.LevelID,
		GroupID:     req.GroupID,
		Number:      *req.Number,
		NumStudents: req.NumStudents,
	}

	if err := h.sectionService.Create(c.Request.Context(), section); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503": // level or group does not exist
				response.Fail(c, http.StatusBadRequest, response.ErrValidation)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"section": section})
}

// UpdateSection godoc
// PUT /api/v1/sections/:id
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{
		ID:          id,
		LevelID:     req.LevelID,
		GroupID:     req.GroupID,
		Number:      *req.Number,
		NumStudents: req.NumStudents,
	}

	if err := h.sectionService.Update(c.Request.Context(), section); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.sectionService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"section": updated})
}

// DeleteSection godoc
// DELETE /api/v1/sections/:id
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "section deleted successfully"})
}
