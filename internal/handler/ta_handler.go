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

// TAHandler handles teaching assistant management (CRUD).
type TAHandler struct {
	taService *service.TAService
}

// NewTAHandler creates a new TAHandler.
func NewTAHandler(taService *service.TAService) *TAHandler {
	return &TAHandler{taService: taService}
}

// ListTAs godoc
// GET /api/v1/tas
func (h *TAHandler) ListTAs(c *gin.Context) {
	tas, err := h.taService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tas": tas})
}

// GetTA godoc
// GET /api/v1/tas/:id
func (h *TAHandler) GetTA(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ta, err := h.taService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ta": ta})
}

// CreateTARequest is the payload for creating or updating a TA.
type CreateTARequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// CreateTA godoc
// POST /api/v1/tas
func (h *TAHandler) CreateTA(c *gin.Context) {
	var req CreateTARequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ta := &model.TA{Name: req.Name}

	if err := h.taService.Create(c.Request.Context(), ta); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"ta": ta})
}

// UpdateTA godoc
// PUT /api/v1/tas/:id
func (h *TAHandler) UpdateTA(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateTARequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ta := &model.TA{ID: id, Name: req.Name}

	if err := h.taService.Update(c.Request.Context(), ta); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.taService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"ta": updated})
}

// DeleteTA godoc
// DELETE /api/v1/tas/:id
func (h *TAHandler) DeleteTA(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.taService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "teaching assistant deleted successfully"})
}
