package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
)

type AuthInteractor interface {
	Register(ctx context.Context, username, password, mobileToken string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	ParseToken(token string) (uuid.UUID, error)
}

type UserInteractor interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	UpdateSelf(ctx context.Context, callerID uuid.UUID, password, mobileToken string) error
	DeleteSelf(ctx context.Context, callerID uuid.UUID) error
}

type RoomInteractor interface {
	CreateRoom(ctx context.Context, callerID uuid.UUID, name string, limit int) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	FindByGUID(ctx context.Context, guid string) (*domain.Room, error)
	FindByUser(ctx context.Context, username string) ([]*domain.Room, error)
	TransferHost(ctx context.Context, callerID uuid.UUID, targetUsername, guid string) error
	Join(ctx context.Context, callerID uuid.UUID, guid string) error
	Leave(ctx context.Context, callerID uuid.UUID, guid string) error
}
