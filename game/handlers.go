package game

import (
	"errors"
	"net/http"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
	"github.com/Nickolas-Loukas/the-secret-word/storage"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// GameHandler exposes the thin resource surface (rooms, players) and the /ws
// upgrade that hands connections to the orchestrator.
type GameHandler struct {
	store    storage.Store
	service  *Service
	upgrader websocket.Upgrader
}

func NewGameHandler(store storage.Store, service *Service) *GameHandler {
	return &GameHandler{
		store:   store,
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the server's origin middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *GameHandler) RegisterRoutes(r *gin.Engine) {
	// gin needs one wildcard name per position, so the code and roomId
	// segments share :id.
	r.POST("/api/rooms", h.CreateRoomHandler)
	r.GET("/api/rooms/:id", h.GetRoomByCodeHandler)
	r.POST("/api/players", h.CreatePlayerHandler)
	r.GET("/api/rooms/:id/players", h.ListPlayersHandler)
	r.GET("/ws", h.WebsocketHandler)
}

type createRoomRequest struct {
	HostId string `json:"hostId" binding:"required"`
}

func (h *GameHandler) CreateRoomHandler(ctx *gin.Context) {
	var req createRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid room data"})
		return
	}

	room, err := h.store.CreateRoom(ctx.Request.Context(), req.HostId)
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, room)
}

func (h *GameHandler) GetRoomByCodeHandler(ctx *gin.Context) {
	room, err := h.store.GetRoomByCode(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		log.Error().Err(err).Msg("failed to fetch room by code")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, room)
}

type createPlayerRequest struct {
	Name   string `json:"name" binding:"required"`
	RoomId string `json:"roomId" binding:"required"`
}

func (h *GameHandler) CreatePlayerHandler(ctx *gin.Context) {
	var req createPlayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid player data"})
		return
	}

	if _, err := h.store.GetRoomById(ctx.Request.Context(), req.RoomId); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		log.Error().Err(err).Msg("failed to fetch room for player creation")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	existingPlayers, err := h.store.GetPlayersByRoom(ctx.Request.Context(), req.RoomId)
	if err != nil {
		log.Error().Err(err).Msg("failed to list players for player creation")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if len(existingPlayers) >= MAX_PLAYERS {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Room is full"})
		return
	}

	player, err := h.store.CreatePlayer(ctx.Request.Context(), req.Name, req.RoomId)
	if err != nil {
		log.Error().Err(err).Msg("failed to create player")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, player)
}

func (h *GameHandler) ListPlayersHandler(ctx *gin.Context) {
	players, err := h.store.GetPlayersByRoom(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list players")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, players)
}

func (h *GameHandler) WebsocketHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("ip", ctx.ClientIP()).Msg("websocket upgrade failed")
		return
	}

	wc := NewWebsocketConnection(conn)
	h.service.ServeConnection(ctx.Request.Context(), wc)
}
