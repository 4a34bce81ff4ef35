package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomhub/internal/api/http/converter"
	"github.com/immxrtalbeast/roomhub/internal/service"
)

type RoomController struct {
	rooms service.RoomInteractor
}

func NewRoomController(rooms service.RoomInteractor) *RoomController {
	return &RoomController{rooms: rooms}
}

func (c *RoomController) ListRooms(ctx *gin.Context) {
	rooms, err := c.rooms.ListRooms(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "error loading rooms")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rooms": converter.RoomsToApi(rooms)})
}

func (c *RoomController) FindRoom(ctx *gin.Context) {
	guid := ctx.Query("guid")
	if guid == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "guid is required"})
		return
	}

	room, err := c.rooms.FindByGUID(ctx.Request.Context(), guid)
	if err != nil {
		respondError(ctx, err, "error loading room")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room": converter.RoomToApi(room)})
}

func (c *RoomController) RoomsByUser(ctx *gin.Context) {
	username := ctx.Query("username")
	if username == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	rooms, err := c.rooms.FindByUser(ctx.Request.Context(), username)
	if err != nil {
		respondError(ctx, err, "error loading room")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rooms": converter.RoomsToApi(rooms)})
}

func (c *RoomController) CreateRoom(ctx *gin.Context) {
	type request struct {
		Name  string `json:"name"`
		Limit int    `json:"limit"`
	}

	callerID, ok := CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no token provided"})
		return
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	room, err := c.rooms.CreateRoom(ctx.Request.Context(), callerID, req.Name, req.Limit)
	if err != nil {
		respondError(ctx, err, "error creating room")
		return
	}

	ctx.JSON(http.StatusOK, converter.RoomToApi(room))
}

func (c *RoomController) TransferHost(ctx *gin.Context) {
	type request struct {
		Username string `json:"username"`
		GUID     string `json:"guid"`
	}

	callerID, ok := CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no token provided"})
		return
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := c.rooms.TransferHost(ctx.Request.Context(), callerID, req.Username, req.GUID); err != nil {
		respondError(ctx, err, "error updating room")
		return
	}

	ctx.String(http.StatusOK, "Host user changed")
}

func (c *RoomController) JoinRoom(ctx *gin.Context) {
	type request struct {
		GUID string `json:"guid"`
	}

	callerID, ok := CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no token provided"})
		return
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := c.rooms.Join(ctx.Request.Context(), callerID, req.GUID); err != nil {
		respondError(ctx, err, "error joining room")
		return
	}

	ctx.String(http.StatusOK, "User has joined the room")
}

func (c *RoomController) LeaveRoom(ctx *gin.Context) {
	type request struct {
		GUID string `json:"guid"`
	}

	callerID, ok := CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no token provided"})
		return
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := c.rooms.Leave(ctx.Request.Context(), callerID, req.GUID); err != nil {
		respondError(ctx, err, "error leaving room")
		return
	}

	ctx.String(http.StatusOK, "User has left the room")
}
