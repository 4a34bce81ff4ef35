package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomhub/internal/domain"
	"github.com/immxrtalbeast/roomhub/internal/service"
)

// clientErrors are the failures whose message may reach the caller. Any
// other error is replaced by the per-operation fallback so store and
// crypto detail never leaks.
var clientErrors = []error{
	service.ErrUsernameRequired,
	service.ErrPasswordRequired,
	service.ErrRoomNameRequired,
	service.ErrNothingToUpdate,
	service.ErrUserExists,
	service.ErrUserNotFound,
	service.ErrRoomNotFound,
	service.ErrInvalidPassword,
	service.ErrNotHost,
	domain.ErrAlreadyMember,
	domain.ErrNotMember,
	domain.ErrRoomFull,
}

// respondError writes the uniform 400 failure envelope.
func respondError(ctx *gin.Context, err error, fallback string) {
	msg := fallback
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			msg = known.Error()
			break
		}
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
