package service

import "errors"

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrRoomNameRequired = errors.New("room name is required")
	ErrNothingToUpdate  = errors.New("please inform a password and/or mobile_token")

	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("cannot find user")
	ErrRoomNotFound    = errors.New("cannot find room")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNotHost         = errors.New("you are not the host of this room")

	ErrTokenInvalid = errors.New("token is invalid")
)
