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

// RoomHandler handles room management (CRUD).
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// ListRooms godoc
// GET /api/v1/rooms?building_id=N
func (h *RoomHandler) ListRooms(c *gin.Context) {
	buildingID, _ := strconv.Atoi(c.Query("building_id"))

	rooms, err := h.roomService.List(c.Request.Context(), buildingID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoom godoc
// GET /api/v1/rooms/:id
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

// CreateRoomRequest is the payload for creating or updating a room.
type CreateRoomRequest struct {
	BuildingID int    `json:"building_id" binding:"required,min=1"`
	Number     string `json:"number" binding:"required,min=1,max=20"`
	Type       string `json:"type" binding:"required,oneof=Theater Classroom Lab 'Drawing Studio' Hall"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}

// CreateRoom godoc
// POST /api/v1/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	room := &model.Room{
		BuildingID: req.BuildingID,
		Number:     req.Number,
		Type:       req.Type,
		Capacity:   req.Capacity,
	}

	if err := h.roomService.Create(c.Request.Context(), room); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503": // building does not exist
				response.Fail(c, http.StatusBadRequest, response.ErrValidation)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

// UpdateRoom godoc
// PUT /api/v1/rooms/:id
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	room := &model.Room{
		ID:         id,
		BuildingID: req.BuildingID,
		Number:     req.Number,
		Type:       req.Type,
		Capacity:   req.Capacity,
	}

	if err := h.roomService.Update(c.Request.Context(), room); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.roomService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"room": updated})
}

// DeleteRoom godoc
// DELETE /api/v1/rooms/:id
// Fails while schedule entries still reference the room.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "room deleted successfully"})
}
