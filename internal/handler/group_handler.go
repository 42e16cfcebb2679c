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

// GroupHandler handles student group management (CRUD).
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// ListGroups godoc
// GET /api/v1/groups?level_id=N
func (h *GroupHandler) ListGroups(c *gin.Context) {
	levelID, _ := strconv.Atoi(c.Query("level_id"))

	groups, err := h.groupService.List(c.Request.Context(), levelID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"groups": groups})
}

// GetGroup godoc
// GET /api/v1/groups/:id
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	group, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"group": group})
}

// CreateGroupRequest is the payload for creating or updating a group.
type CreateGroupRequest struct {
	LevelID     int `json:"level_id" binding:"required,min=1"`
	Number      int `json:"number" binding:"required,min=1"`
	NumStudents int `json:"num_students" binding:"required,min=1"`
}

// CreateGroup godoc
// POST /api/v1/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group := &model.Group{
		LevelID:     req.LevelID,
		Number:      req.Number,
		NumStudents: req.NumStudents,
	}

	if err := h.groupService.Create(c.Request.Context(), group); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503": // level does not exist
				response.Fail(c, http.StatusBadRequest, response.ErrValidation)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"group": group})
}

// UpdateGroup godoc
// PUT /api/v1/groups/:id
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group := &model.Group{
		ID:          id,
		LevelID:     req.LevelID,
		Number:      req.Number,
		NumStudents: req.NumStudents,
	}

	if err := h.groupService.Update(c.Request.Context(), group); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.groupService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"group": updated})
}

// DeleteGroup godoc
// DELETE /api/v1/groups/:id
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "group deleted successfully"})
}
