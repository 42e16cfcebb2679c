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

// HallHandler handles lecture hall management (CRUD).
type HallHandler struct {
	hallService *service.HallService
}

// NewHallHandler creates a new HallHandler.
func NewHallHandler(hallService *service.HallService) *HallHandler {
	return &HallHandler{hallService: hallService}
}

// ListHalls godoc
// GET /api/v1/halls
func (h *HallHandler) ListHalls(c *gin.Context) {
	halls, err := h.hallService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"halls": halls})
}

// GetHall godoc
// GET /api/v1/halls/:id
func (h *HallHandler) GetHall(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	hall, err := h.hallService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hall": hall})
}

// CreateHallRequest is the payload for creating or updating a hall.
type CreateHallRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

// CreateHall godoc
// POST /api/v1/halls
func (h *HallHandler) CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hall := &model.Hall{Name: req.Name, Capacity: req.Capacity}

	if err := h.hallService.Create(c.Request.Context(), hall); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hall": hall})
}

// UpdateHall godoc
// PUT /api/v1/halls/:id
func (h *HallHandler) UpdateHall(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateHallRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hall := &model.Hall{ID: id, Name: req.Name, Capacity: req.Capacity}

	if err := h.hallService.Update(c.Request.Context(), hall); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.hallService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"hall": updated})
}

// DeleteHall godoc
// DELETE /api/v1/halls/:id
func (h *HallHandler) DeleteHall(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.hallService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "hall deleted successfully"})
}
