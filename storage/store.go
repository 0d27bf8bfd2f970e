package storage

import (
	"context"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
)

// RoomUpdate carries a partial room mutation. Nil fields are left untouched.
type RoomUpdate struct {
	IsActive      *bool
	SecretWord    *string
	SecretAgentId *string
	GameState     *domain.GameState
	CurrentRound  *int
}

// PlayerUpdate carries a partial player mutation. Nil fields are left untouched.
type PlayerUpdate struct {
	IsConnected *bool
	Score       *int
}

// Store is the persistence boundary for rooms, players and votes. All methods
// are safe for concurrent use. The orchestrator is the only mutator of game
// state and serializes its own read-modify-write sequences per room.
type Store interface {
	CreateRoom(ctx context.Context, hostId string) (domain.Room, error)
	GetRoomById(ctx context.Context, id string) (domain.Room, error)
	GetRoomByCode(ctx context.Context, code string) (domain.Room, error)
	UpdateRoom(ctx context.Context, id string, updates RoomUpdate) (domain.Room, error)
	// DeleteRoom cascades to the room's players and votes.
	DeleteRoom(ctx context.Context, id string) error

	CreatePlayer(ctx context.Context, name, roomId string) (domain.Player, error)
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	GetPlayersByRoom(ctx context.Context, roomId string) ([]domain.Player, error)
	UpdatePlayer(ctx context.Context, id string, updates PlayerUpdate) (domain.Player, error)
	DeletePlayer(ctx context.Context, id string) error

	CreateVote(ctx context.Context, roomId, playerId, suspectId string, round int) (domain.Vote, error)
	GetVotesByRoom(ctx context.Context, roomId string) ([]domain.Vote, error)
	GetVotesByRoomAndRound(ctx context.Context, roomId string, round int) ([]domain.Vote, error)
	DeleteVotesByRoom(ctx context.Context, roomId string) error
}
