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

// BuildingHandler handles building management (CRUD).
type BuildingHandler struct {
	buildingService *service.BuildingService
}

// NewBuildingHandler creates a new BuildingHandler.
func NewBuildingHandler(buildingService *service.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService}
}

// ListBuildings godoc
// GET /api/v1/buildings
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"buildings": buildings})
}

// GetBuilding godoc
// GET /api/v1/buildings/:id
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	building, err := h.buildingService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"building": building})
}

// CreateBuildingRequest is the payload for creating or updating a building.
type CreateBuildingRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateBuilding godoc
// POST /api/v1/buildings
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req CreateBuildingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	building := &model.Building{Name: req.Name}

	if err := h.buildingService.Create(c.Request.Context(), building); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"building": building})
}

// UpdateBuilding godoc
// PUT /api/v1/buildings/:id
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateBuildingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	building := &model.Building{ID: id, Name: req.Name}

	if err := h.buildingService.Update(c.Request.Context(), building); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.buildingService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"building": updated})
}

// DeleteBuilding godoc
// DELETE /api/v1/buildings/:id
// Fails while rooms are still attached to the building.
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.buildingService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "building deleted successfully"})
}
