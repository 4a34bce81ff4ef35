package domain

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
	"time"
)

const DefaultRoomLimit = 5

// Room represents a named, capacity-bounded group of participants with a
// designated host. Membership order is join order.
type Room struct {
	GUID            string
	Name            string
	HostName        string
	Limit           int
	NumParticipants int
	Participants    []string
	CreatedAt       time.Time
}

// NewRoom constructs a room with a generated identifier and an empty
// membership list. The creator becomes host but does not join.
func NewRoom(name string, hostName string, limit int) *Room {
	if limit <= 0 {
		limit = DefaultRoomLimit
	}
	return &Room{
		GUID:         generateGUID(),
		Name:         name,
		HostName:     hostName,
		Limit:        limit,
		Participants: []string{},
		CreatedAt:    time.Now().UTC(),
	}
}

// HasParticipant reports whether username is currently a member.
func (r *Room) HasParticipant(username string) bool {
	return slices.Contains(r.Participants, username)
}

// Join appends username to the membership list, enforcing uniqueness and
// the capacity limit.
func (r *Room) Join(username string) error {
	if r.HasParticipant(username) {
		return ErrAlreadyMember
	}
	if r.NumParticipants >= r.Limit {
		return ErrRoomFull
	}
	r.Participants = append(r.Participants, username)
	r.NumParticipants++
	return nil
}

// Leave removes username from the membership list, preserving the relative
// order of the remaining participants.
func (r *Room) Leave(username string) error {
	idx := slices.Index(r.Participants, username)
	if idx < 0 {
		return ErrNotMember
	}
	r.Participants = slices.Delete(r.Participants, idx, idx+1)
	r.NumParticipants--
	return nil
}

// SetHost reassigns hosting rights to username.
func (r *Room) SetHost(username string) {
	r.HostName = username
}

// generateGUID returns 128 bits of entropy, hex-encoded. Collisions are
// treated as negligible, so there is no uniqueness retry loop.
func generateGUID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("domain: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
