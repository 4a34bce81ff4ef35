package domain

import "errors"

var (
	ErrAlreadyMember = errors.New("user is already in the room")
	ErrNotMember     = errors.New("user is not in this room")
	ErrRoomFull      = errors.New("room has reached the limit of participants")
)
