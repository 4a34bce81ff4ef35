package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/service"
)

const callerIDKey = "caller_id"

// Auth returns the bearer-token gate. It extracts and verifies the token,
// then attaches the resolved user id to the request context. Every failure
// is a 400 with the uniform error envelope, matching the rest of the API.
func Auth(auth service.AuthInteractor, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "no token provided"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "token is malformed"})
			return
		}

		callerID, err := auth.ParseToken(parts[1])
		if err != nil {
			log.Warn("rejected token", slog.String("path", ctx.FullPath()))
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "token is invalid"})
			return
		}

		ctx.Set(callerIDKey, callerID)
		ctx.Next()
	}
}

// CallerID returns the identity attached by the Auth middleware.
func CallerID(ctx *gin.Context) (uuid.UUID, bool) {
	v, ok := ctx.Get(callerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
