package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
	"github.com/immxrtalbeast/roomhub/internal/repository"
	"github.com/immxrtalbeast/roomhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomFixture struct {
	rooms   *service.RoomService
	users   *repository.InMemoryUserRepository
	userIDs map[string]uuid.UUID
}

func newRoomFixture(t *testing.T, usernames ...string) *roomFixture {
	t.Helper()

	userRepo := repository.NewInMemoryUserRepository()
	roomRepo := repository.NewInMemoryRoomRepository()

	f := &roomFixture{
		rooms:   service.NewRoomService(roomRepo, userRepo, discardLogger()),
		users:   userRepo,
		userIDs: make(map[string]uuid.UUID),
	}

	for _, name := range usernames {
		user := domain.NewUser(name, "hash", "")
		require.NoError(t, userRepo.Create(context.Background(), user))
		f.userIDs[name] = user.ID
	}

	return f
}

func (f *roomFixture) id(username string) uuid.UUID {
	return f.userIDs[username]
}

func TestRoomService_CreateRoom_DefaultLimit(t *testing.T) {
	f := newRoomFixture(t, "alice")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "Trivia Night", 0)
	require.NoError(t, err)
	assert.Equal(t, "alice", room.HostName)
	assert.Equal(t, 5, room.Limit)

	// retrieved record carries the default too
	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Limit)
	assert.Equal(t, 0, found.NumParticipants)
	assert.Empty(t, found.Participants)
}

func TestRoomService_CreateRoom_RequiresName(t *testing.T) {
	f := newRoomFixture(t, "alice")

	_, err := f.rooms.CreateRoom(context.Background(), f.id("alice"), "", 3)
	assert.ErrorIs(t, err, service.ErrRoomNameRequired)
}

func TestRoomService_CreateRoom_UnknownCaller(t *testing.T) {
	f := newRoomFixture(t, "alice")

	_, err := f.rooms.CreateRoom(context.Background(), uuid.New(), "room", 3)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestRoomService_JoinUpToLimit(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob", "carol", "dave")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "duo", 2)
	require.NoError(t, err)

	require.NoError(t, f.rooms.Join(ctx, f.id("bob"), room.GUID))
	require.NoError(t, f.rooms.Join(ctx, f.id("carol"), room.GUID))

	err = f.rooms.Join(ctx, f.id("dave"), room.GUID)
	require.ErrorIs(t, err, domain.ErrRoomFull)

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, found.Participants)
	assert.Equal(t, 2, found.NumParticipants)
}

func TestRoomService_JoinTwice(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "standup", 0)
	require.NoError(t, err)

	require.NoError(t, f.rooms.Join(ctx, f.id("bob"), room.GUID))

	err = f.rooms.Join(ctx, f.id("bob"), room.GUID)
	require.ErrorIs(t, err, domain.ErrAlreadyMember)

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, found.Participants)
	assert.Equal(t, 1, found.NumParticipants)
}

func TestRoomService_JoinUnknownRoom(t *testing.T) {
	f := newRoomFixture(t, "alice")

	err := f.rooms.Join(context.Background(), f.id("alice"), "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestRoomService_LeaveNotMember(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "standup", 0)
	require.NoError(t, err)

	err = f.rooms.Leave(ctx, f.id("bob"), room.GUID)
	require.ErrorIs(t, err, domain.ErrNotMember)

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Empty(t, found.Participants)
	assert.Equal(t, 0, found.NumParticipants)
}

func TestRoomService_JoinLeaveScenario(t *testing.T) {
	// alice creates "Trivia Night"; bob joins, then leaves
	f := newRoomFixture(t, "alice", "bob")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "Trivia Night", 0)
	require.NoError(t, err)

	require.NoError(t, f.rooms.Join(ctx, f.id("bob"), room.GUID))

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.NumParticipants)
	assert.Equal(t, []string{"bob"}, found.Participants)

	require.NoError(t, f.rooms.Leave(ctx, f.id("bob"), room.GUID))

	found, err = f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.NumParticipants)
	assert.Empty(t, found.Participants)
}

func TestRoomService_FindByUser(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob")
	ctx := context.Background()

	first, err := f.rooms.CreateRoom(ctx, f.id("alice"), "first", 0)
	require.NoError(t, err)
	second, err := f.rooms.CreateRoom(ctx, f.id("alice"), "second", 0)
	require.NoError(t, err)

	require.NoError(t, f.rooms.Join(ctx, f.id("bob"), first.GUID))
	require.NoError(t, f.rooms.Join(ctx, f.id("bob"), second.GUID))

	rooms, err := f.rooms.FindByUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, first.GUID, rooms[0].GUID)
	assert.Equal(t, second.GUID, rooms[1].GUID)

	// the host is not a participant, so alice is in no room
	rooms, err = f.rooms.FindByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRoomService_FindByUser_Unknown(t *testing.T) {
	f := newRoomFixture(t, "alice")

	_, err := f.rooms.FindByUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestRoomService_TransferHost(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "standup", 0)
	require.NoError(t, err)

	require.NoError(t, f.rooms.TransferHost(ctx, f.id("alice"), "bob", room.GUID))

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, "bob", found.HostName)

	// alice no longer hosts the room
	err = f.rooms.TransferHost(ctx, f.id("alice"), "bob", room.GUID)
	assert.ErrorIs(t, err, service.ErrNotHost)
}

func TestRoomService_TransferHost_NotHost(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob", "carol")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "standup", 0)
	require.NoError(t, err)

	err = f.rooms.TransferHost(ctx, f.id("bob"), "carol", room.GUID)
	require.ErrorIs(t, err, service.ErrNotHost)

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.HostName)
}

func TestRoomService_TransferHost_UnknownTarget(t *testing.T) {
	f := newRoomFixture(t, "alice")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "standup", 0)
	require.NoError(t, err)

	err = f.rooms.TransferHost(ctx, f.id("alice"), "nobody", room.GUID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestRoomService_TransferHost_UnknownRoom(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob")

	err := f.rooms.TransferHost(context.Background(), f.id("alice"), "bob", "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestRoomService_ListRooms(t *testing.T) {
	f := newRoomFixture(t, "alice")
	ctx := context.Background()

	rooms, err := f.rooms.ListRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	_, err = f.rooms.CreateRoom(ctx, f.id("alice"), "first", 0)
	require.NoError(t, err)
	_, err = f.rooms.CreateRoom(ctx, f.id("alice"), "second", 3)
	require.NoError(t, err)

	rooms, err = f.rooms.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomService_ConcurrentJoinsRespectLimit(t *testing.T) {
	f := newRoomFixture(t, "alice", "bob", "carol", "dave", "erin")
	ctx := context.Background()

	room, err := f.rooms.CreateRoom(ctx, f.id("alice"), "duo", 2)
	require.NoError(t, err)

	joiners := []string{"bob", "carol", "dave", "erin"}
	errs := make(chan error, len(joiners))
	for _, name := range joiners {
		go func(name string) {
			errs <- f.rooms.Join(ctx, f.id(name), room.GUID)
		}(name)
	}

	var joined, full int
	for range joiners {
		switch err := <-errs; {
		case err == nil:
			joined++
		default:
			require.ErrorIs(t, err, domain.ErrRoomFull)
			full++
		}
	}

	assert.Equal(t, 2, joined)
	assert.Equal(t, 2, full)

	found, err := f.rooms.FindByGUID(ctx, room.GUID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.NumParticipants)
	assert.Len(t, found.Participants, 2)
}
