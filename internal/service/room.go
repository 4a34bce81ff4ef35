package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
	"github.com/immxrtalbeast/roomhub/internal/repository"
	"github.com/immxrtalbeast/roomhub/lib/logger/sl"
)

// RoomService owns the room lifecycle: creation, discovery, host transfer
// and membership changes. Membership mutations on the same room are
// serialized through a per-guid lock so a capacity check and the write it
// guards cannot interleave with a concurrent request.
type RoomService struct {
	rooms repository.RoomRepository
	users repository.UserRepository
	log   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRoomService(rooms repository.RoomRepository, users repository.UserRepository, log *slog.Logger) *RoomService {
	if log == nil {
		log = slog.Default()
	}
	return &RoomService{
		rooms: rooms,
		users: users,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, callerID uuid.UUID, name string, limit int) (*domain.Room, error) {
	const op = "service.room.create"
	log := s.log.With(slog.String("op", op), slog.String("caller_id", callerID.String()))

	if name == "" {
		return nil, ErrRoomNameRequired
	}

	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		log.Error("failed to resolve caller", sl.Err(err))
		return nil, err
	}

	room := domain.NewRoom(name, caller.Username, limit)

	if err := s.rooms.Create(ctx, room); err != nil {
		log.Error("failed to create room", sl.Err(err))
		return nil, err
	}

	log.Info("room created",
		slog.String("guid", room.GUID),
		slog.String("host", room.HostName),
		slog.Int("limit", room.Limit),
	)
	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *RoomService) FindByGUID(ctx context.Context, guid string) (*domain.Room, error) {
	room, err := s.rooms.GetByGUID(ctx, guid)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) FindByUser(ctx context.Context, username string) ([]*domain.Room, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.rooms.ListByParticipant(ctx, user.Username)
}

// TransferHost reassigns hosting rights for the room named by guid to
// targetUsername. The caller must be the current host of that room.
func (s *RoomService) TransferHost(ctx context.Context, callerID uuid.UUID, targetUsername, guid string) error {
	const op = "service.room.transferHost"
	log := s.log.With(slog.String("op", op), slog.String("guid", guid))

	if _, err := s.users.GetByUsername(ctx, targetUsername); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to look up target user", sl.Err(err))
		return err
	}

	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		log.Error("failed to resolve caller", sl.Err(err))
		return err
	}

	unlock := s.lockRoom(guid)
	defer unlock()

	room, err := s.FindByGUID(ctx, guid)
	if err != nil {
		return err
	}

	if room.HostName != caller.Username {
		return ErrNotHost
	}

	room.SetHost(targetUsername)

	if err := s.rooms.Update(ctx, room); err != nil {
		log.Error("failed to update room", sl.Err(err))
		return err
	}

	log.Info("host changed",
		slog.String("from", caller.Username),
		slog.String("to", targetUsername),
	)
	return nil
}

func (s *RoomService) Join(ctx context.Context, callerID uuid.UUID, guid string) error {
	const op = "service.room.join"
	log := s.log.With(slog.String("op", op), slog.String("guid", guid))

	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		log.Error("failed to resolve caller", sl.Err(err))
		return err
	}

	unlock := s.lockRoom(guid)
	defer unlock()

	room, err := s.FindByGUID(ctx, guid)
	if err != nil {
		return err
	}

	if err := room.Join(caller.Username); err != nil {
		return err
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		log.Error("failed to update room", sl.Err(err))
		return err
	}

	log.Info("user joined room",
		slog.String("username", caller.Username),
		slog.Int("num_participants", room.NumParticipants),
	)
	return nil
}

func (s *RoomService) Leave(ctx context.Context, callerID uuid.UUID, guid string) error {
	const op = "service.room.leave"
	log := s.log.With(slog.String("op", op), slog.String("guid", guid))

	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		log.Error("failed to resolve caller", sl.Err(err))
		return err
	}

	unlock := s.lockRoom(guid)
	defer unlock()

	room, err := s.FindByGUID(ctx, guid)
	if err != nil {
		return err
	}

	if err := room.Leave(caller.Username); err != nil {
		return err
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		log.Error("failed to update room", sl.Err(err))
		return err
	}

	log.Info("user left room",
		slog.String("username", caller.Username),
		slog.Int("num_participants", room.NumParticipants),
	)
	return nil
}

func (s *RoomService) resolveCaller(ctx context.Context, callerID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// lockRoom serializes membership mutations per guid. Lock entries are kept
// for the lifetime of the service; the per-room footprint is one mutex.
func (s *RoomService) lockRoom(guid string) func() {
	s.mu.Lock()
	lock, ok := s.locks[guid]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[guid] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
