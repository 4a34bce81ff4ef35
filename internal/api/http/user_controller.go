package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomhub/internal/api/http/converter"
	"github.com/immxrtalbeast/roomhub/internal/service"
)

type UserController struct {
	auth  service.AuthInteractor
	users service.UserInteractor
}

func NewUserController(auth service.AuthInteractor, users service.UserInteractor) *UserController {
	return &UserController{auth: auth, users: users}
}

func (c *UserController) Register(ctx *gin.Context) {
	type request struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		MobileToken string `json:"mobile_token"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := c.auth.Register(ctx.Request.Context(), req.Username, req.Password, req.MobileToken)
	if err != nil {
		respondError(ctx, err, "registration failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": converter.UserToApi(user), "token": token})
}

func (c *UserController) Login(ctx *gin.Context) {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := c.auth.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(ctx, err, "error logging in")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": converter.UserToApi(user), "token": token})
}

func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.users.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "error loading users")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": converter.UsersToApi(users)})
}

func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.users.GetUser(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		respondError(ctx, err, "error loading user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": converter.UserToApi(user)})
}

func (c *UserController) UpdateSelf(ctx *gin.Context) {
	type request struct {
		Password    string `json:"password"`
		MobileToken string `json:"mobile_token"`
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

	if err := c.users.UpdateSelf(ctx.Request.Context(), callerID, req.Password, req.MobileToken); err != nil {
		respondError(ctx, err, "update failed")
		return
	}

	ctx.String(http.StatusOK, "User updated")
}

func (c *UserController) DeleteSelf(ctx *gin.Context) {
	callerID, ok := CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no token provided"})
		return
	}

	if err := c.users.DeleteSelf(ctx.Request.Context(), callerID); err != nil {
		respondError(ctx, err, "delete failed")
		return
	}

	ctx.String(http.StatusOK, "User removed successfully")
}
