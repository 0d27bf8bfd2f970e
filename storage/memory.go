package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
	"github.com/google/uuid"
)

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const roomCodeLength = 6

// MemoryStore keeps all game state in process memory. It is the default
// backing when no database is configured.
type MemoryStore struct {
	locker  sync.RWMutex
	rooms   map[string]domain.Room
	players map[string]domain.Player
	votes   map[string]domain.Vote
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:   make(map[string]domain.Room),
		players: make(map[string]domain.Player),
		votes:   make(map[string]domain.Vote),
	}
}

func (ms *MemoryStore) CreateRoom(ctx context.Context, hostId string) (domain.Room, error) {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	room := domain.Room{
		Id:        uuid.NewString(),
		Code:      ms.generateRoomCode(),
		HostId:    hostId,
		IsActive:  true,
		GameState: domain.STATE_LOBBY,
		CreatedAt: time.Now(),
	}
	ms.rooms[room.Id] = room
	return room, nil
}

func (ms *MemoryStore) GetRoomById(ctx context.Context, id string) (domain.Room, error) {
	ms.locker.RLock()
	defer ms.locker.RUnlock()

	room, ok := ms.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return room, nil
}

func (ms *MemoryStore) GetRoomByCode(ctx context.Context, code string) (domain.Room, error) {
	ms.locker.RLock()
	defer ms.locker.RUnlock()

	for _, room := range ms.rooms {
		if room.Code == code {
			return room, nil
		}
	}
	return domain.Room{}, domain.ErrRoomNotFound
}

func (ms *MemoryStore) UpdateRoom(ctx context.Context, id string, updates RoomUpdate) (domain.Room, error) {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	room, ok := ms.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	if updates.IsActive != nil {
		room.IsActive = *updates.IsActive
	}
	if updates.SecretWord != nil {
		room.SecretWord = *updates.SecretWord
	}
	if updates.SecretAgentId != nil {
		room.SecretAgentId = *updates.SecretAgentId
	}
	if updates.GameState != nil {
		room.GameState = *updates.GameState
	}
	if updates.CurrentRound != nil {
		room.CurrentRound = *updates.CurrentRound
	}
	ms.rooms[id] = room
	return room, nil
}

func (ms *MemoryStore) DeleteRoom(ctx context.Context, id string) error {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	if _, ok := ms.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(ms.rooms, id)
	for playerId, player := range ms.players {
		if player.RoomId == id {
			delete(ms.players, playerId)
		}
	}
	for voteId, vote := range ms.votes {
		if vote.RoomId == id {
			delete(ms.votes, voteId)
		}
	}
	return nil
}

func (ms *MemoryStore) CreatePlayer(ctx context.Context, name, roomId string) (domain.Player, error) {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	if _, ok := ms.rooms[roomId]; !ok {
		return domain.Player{}, domain.ErrRoomNotFound
	}

	player := domain.Player{
		Id:          uuid.NewString(),
		Name:        name,
		RoomId:      roomId,
		IsConnected: true,
		JoinedAt:    time.Now(),
	}
	ms.players[player.Id] = player
	return player, nil
}

func (ms *MemoryStore) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	ms.locker.RLock()
	defer ms.locker.RUnlock()

	player, ok := ms.players[id]
	if !ok {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return player, nil
}

func (ms *MemoryStore) GetPlayersByRoom(ctx context.Context, roomId string) ([]domain.Player, error) {
	ms.locker.RLock()
	defer ms.locker.RUnlock()

	players := []domain.Player{}
	for _, player := range ms.players {
		if player.RoomId == roomId {
			players = append(players, player)
		}
	}
	sortPlayers(players)
	return players, nil
}

func (ms *MemoryStore) UpdatePlayer(ctx context.Context, id string, updates PlayerUpdate) (domain.Player, error) {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	player, ok := ms.players[id]
	if !ok {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	if updates.IsConnected != nil {
		player.IsConnected = *updates.IsConnected
	}
	if updates.Score != nil {
		player.Score = *updates.Score
	}
	ms.players[id] = player
	return player, nil
}

func (ms *MemoryStore) DeletePlayer(ctx context.Context, id string) error {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	if _, ok := ms.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(ms.players, id)
	return nil
}

func (ms *MemoryStore) CreateVote(ctx context.Context, roomId, playerId, suspectId string, round int) (domain.Vote, error) {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	vote := domain.Vote{
		Id:        uuid.NewString(),
		RoomId:    roomId,
		PlayerId:  playerId,
		SuspectId: suspectId,
		Round:     round,
		CreatedAt: time.Now(),
	}
	ms.votes[vote.Id] = vote
	return vote, nil
}

func (ms *MemoryStore) GetVotesByRoom(ctx context.Context, roomId string) ([]domain.Vote, error) {
	ms.locker.RLock()
	defer ms.locker.RUnlock()

	votes := []domain.Vote{}
	for _, vote := range ms.votes {
		if vote.RoomId == roomId {
			votes = append(votes, vote)
		}
	}
	sortVotes(votes)
	return votes, nil
}

func (ms *MemoryStore) GetVotesByRoomAndRound(ctx context.Context, roomId string, round int) ([]domain.Vote, error) {
	ms.locker.RLock()
	defer ms.locker.RUnlock()

	votes := []domain.Vote{}
	for _, vote := range ms.votes {
		if vote.RoomId == roomId && vote.Round == round {
			votes = append(votes, vote)
		}
	}
	sortVotes(votes)
	return votes, nil
}

func (ms *MemoryStore) DeleteVotesByRoom(ctx context.Context, roomId string) error {
	ms.locker.Lock()
	defer ms.locker.Unlock()

	for voteId, vote := range ms.votes {
		if vote.RoomId == roomId {
			delete(ms.votes, voteId)
		}
	}
	return nil
}

// generateRoomCode returns a code unique among active rooms. Caller must hold
// the write lock.
func (ms *MemoryStore) generateRoomCode() string {
	for {
		code := randomRoomCode()
		if !ms.activeCodeTaken(code) {
			return code
		}
	}
}

func (ms *MemoryStore) activeCodeTaken(code string) bool {
	for _, room := range ms.rooms {
		if room.IsActive && room.Code == code {
			return true
		}
	}
	return false
}

func sortPlayers(players []domain.Player) {
	sort.Slice(players, func(i, j int) bool {
		if players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].Id < players[j].Id
		}
		return players[i].JoinedAt.Before(players[j].JoinedAt)
	})
}

func sortVotes(votes []domain.Vote) {
	sort.Slice(votes, func(i, j int) bool {
		if votes[i].CreatedAt.Equal(votes[j].CreatedAt) {
			return votes[i].Id < votes[j].Id
		}
		return votes[i].CreatedAt.Before(votes[j].CreatedAt)
	})
}
