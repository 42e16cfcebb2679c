package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/repository"
	"github.com/campusgrid/timetable-backend/internal/service"
	ws "github.com/campusgrid/timetable-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow-list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// BoardHandler streams live grid updates to display boards. Each client
// receives the current grid on connect and a fresh grid after every
// schedule publish, signalled over Redis Pub/Sub.
type BoardHandler struct {
	rdb         *redis.Client
	gridService *service.GridService
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(rdb *redis.Client, gridService *service.GridService, log zerolog.Logger, allowedOrigins []string) *BoardHandler {
	return &BoardHandler{
		rdb:         rdb,
		gridService: gridService,
		log:         log.With().Str("component", "board_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// BoardStream godoc
// WS /ws/v1/board
// Upgrades to WebSocket and pushes the full grid on connect and on every
// schedule change.
func (h *BoardHandler) BoardStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Gorilla permits one concurrent writer; the pong path and the grid
	// push path share this mutex.
	var writeMu sync.Mutex
	write := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return ws.WriteTyped(conn, v)
	}

	grid, err := h.gridService.Grid(ctx, repository.ScheduleFilter{})
	if err != nil {
		h.log.Error().Err(err).Msg("Initial grid build failed")
		_ = ws.WriteError(conn, "failed to load grid")
		return
	}
	if err := write(ws.GridResponse{Event: ws.EventGrid, Grid: grid}); err != nil {
		return
	}

	pubsub := h.rdb.Subscribe(ctx, config.CacheKey.BoardChannel())
	defer pubsub.Close()

	h.log.Info().Str("remote", c.ClientIP()).Msg("Board connected")

	// Reader: answers pings and tears the stream down when the client
	// disconnects.
	go func() {
		defer cancel()
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.log.Warn().Err(err).Msg("Unexpected close")
				}
				return
			}
			if msg.Action == ws.ActionPing {
				_ = write(ws.PongResponse{Event: ws.EventPong})
			}
		}
	}()

	refreshes := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-refreshes:
			if !ok {
				return
			}
			grid, err := h.gridService.Grid(ctx, repository.ScheduleFilter{})
			if err != nil {
				h.log.Warn().Err(err).Msg("Grid refresh failed, keeping stale board")
				continue
			}
			if err := write(ws.GridResponse{Event: ws.EventGrid, Grid: grid}); err != nil {
				return
			}
		}
	}
}
