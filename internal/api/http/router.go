package http

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomhub/internal/service"
)

func SetupRouter(auth service.AuthInteractor, userController *UserController, roomController *RoomController, log *slog.Logger) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	authGate := Auth(auth, log)

	users := router.Group("/users")
	users.POST("/register", userController.Register)
	users.POST("/login", userController.Login)
	users.GET("", userController.ListUsers)
	users.GET("/:username", userController.GetUser)
	users.PUT("", authGate, userController.UpdateSelf)
	users.DELETE("", authGate, userController.DeleteSelf)

	rooms := router.Group("/rooms")
	rooms.GET("", roomController.ListRooms)
	rooms.GET("/find", roomController.FindRoom)
	rooms.GET("/user", roomController.RoomsByUser)
	rooms.POST("", authGate, roomController.CreateRoom)
	rooms.PUT("", authGate, roomController.TransferHost)
	rooms.POST("/join", authGate, roomController.JoinRoom)
	rooms.POST("/leave", authGate, roomController.LeaveRoom)

	return router
}
