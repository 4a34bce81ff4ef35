package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByGUID(ctx context.Context, guid string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	ListByParticipant(ctx context.Context, username string) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, guid string) error
}
