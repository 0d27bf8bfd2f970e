package domain

import "errors"

var (
	ErrRoomNotFound   = errors.New("room-not-found")
	ErrPlayerNotFound = errors.New("player-not-found")
)

var UnexpectedDatabaseError = errors.New("database-error")
