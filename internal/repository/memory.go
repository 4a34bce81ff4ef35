package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
)

// InMemoryUserRepository keeps user records in process memory. It backs the
// service tests and local runs without a database. Records are copied on
// the way in and out so callers never share state with the store.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
	names map[string]uuid.UUID
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[uuid.UUID]*domain.User),
		names: make(map[string]uuid.UUID),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[user.Username]; ok {
		return ErrUserExists
	}

	r.users[user.ID] = cloneUser(user)
	r.names[user.Username] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *InMemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.names[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	return cloneUser(r.users[id]), nil
}

func (r *InMemoryUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, cloneUser(user))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}

	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *InMemoryUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}

	delete(r.names, user.Username)
	delete(r.users, id)
	return nil
}

// InMemoryRoomRepository keeps room records in process memory, keyed by guid.
type InMemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
	order []string
}

func NewInMemoryRoomRepository() *InMemoryRoomRepository {
	return &InMemoryRoomRepository{
		rooms: make(map[string]*domain.Room),
	}
}

func (r *InMemoryRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.GUID] = cloneRoom(room)
	r.order = append(r.order, room.GUID)
	return nil
}

func (r *InMemoryRoomRepository) GetByGUID(ctx context.Context, guid string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[guid]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return cloneRoom(room), nil
}

func (r *InMemoryRoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, 0, len(r.order))
	for _, guid := range r.order {
		if room, ok := r.rooms[guid]; ok {
			result = append(result, cloneRoom(room))
		}
	}

	return result, nil
}

func (r *InMemoryRoomRepository) ListByParticipant(ctx context.Context, username string) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, 0)
	for _, guid := range r.order {
		room, ok := r.rooms[guid]
		if ok && room.HasParticipant(username) {
			result = append(result, cloneRoom(room))
		}
	}

	return result, nil
}

func (r *InMemoryRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[room.GUID]; !ok {
		return ErrRoomNotFound
	}

	r.rooms[room.GUID] = cloneRoom(room)
	return nil
}

func (r *InMemoryRoomRepository) Delete(ctx context.Context, guid string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[guid]; !ok {
		return ErrRoomNotFound
	}

	delete(r.rooms, guid)
	for i, g := range r.order {
		if g == guid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneUser(user *domain.User) *domain.User {
	c := *user
	return &c
}

func cloneRoom(room *domain.Room) *domain.Room {
	c := *room
	c.Participants = make([]string, len(room.Participants))
	copy(c.Participants, room.Participants)
	return &c
}
