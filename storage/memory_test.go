package storage

import (
	"context"
	"testing"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoomLifecycle(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	room, err := store.CreateRoom(ctx, "host-1")
	require.NoError(t, err)
	assert.Len(t, room.Code, 6)
	assert.Regexp(t, "^[A-Z0-9]{6}$", room.Code)
	assert.Equal(t, domain.STATE_LOBBY, room.GameState)
	assert.True(t, room.IsActive)
	assert.Empty(t, room.SecretWord)

	byId, err := store.GetRoomById(ctx, room.Id)
	require.NoError(t, err)
	assert.Equal(t, room, byId)

	byCode, err := store.GetRoomByCode(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.Id, byCode.Id)

	_, err = store.GetRoomById(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = store.GetRoomByCode(ctx, "NOPE01")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestMemoryStore_UpdateRoomMergesFields(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	room, err := store.CreateRoom(ctx, "host-1")
	require.NoError(t, err)

	word := "ramen"
	state := domain.STATE_PLAYING
	updated, err := store.UpdateRoom(ctx, room.Id, RoomUpdate{SecretWord: &word, GameState: &state})
	require.NoError(t, err)
	assert.Equal(t, "ramen", updated.SecretWord)
	assert.Equal(t, domain.STATE_PLAYING, updated.GameState)

	// Fields not named in the update keep their values.
	assert.Equal(t, room.HostId, updated.HostId)
	assert.True(t, updated.IsActive)
	assert.Equal(t, room.CurrentRound, updated.CurrentRound)

	round := 2
	updated, err = store.UpdateRoom(ctx, room.Id, RoomUpdate{CurrentRound: &round})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentRound)
	assert.Equal(t, "ramen", updated.SecretWord)

	_, err = store.UpdateRoom(ctx, "nope", RoomUpdate{CurrentRound: &round})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestMemoryStore_PlayerLifecycle(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	room, err := store.CreateRoom(ctx, "host-1")
	require.NoError(t, err)

	naruto, err := store.CreatePlayer(ctx, "naruto", room.Id)
	require.NoError(t, err)
	assert.True(t, naruto.IsConnected)
	assert.Zero(t, naruto.Score)

	sasuke, err := store.CreatePlayer(ctx, "sasuke", room.Id)
	require.NoError(t, err)

	players, err := store.GetPlayersByRoom(ctx, room.Id)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, naruto.Id, players[0].Id)
	assert.Equal(t, sasuke.Id, players[1].Id)

	disconnected := false
	updated, err := store.UpdatePlayer(ctx, naruto.Id, PlayerUpdate{IsConnected: &disconnected})
	require.NoError(t, err)
	assert.False(t, updated.IsConnected)
	assert.Equal(t, "naruto", updated.Name)

	require.NoError(t, store.DeletePlayer(ctx, sasuke.Id))
	_, err = store.GetPlayer(ctx, sasuke.Id)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = store.CreatePlayer(ctx, "ghost", "no-such-room")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestMemoryStore_VotesFilteredByRound(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	room, err := store.CreateRoom(ctx, "host-1")
	require.NoError(t, err)
	naruto, err := store.CreatePlayer(ctx, "naruto", room.Id)
	require.NoError(t, err)
	sasuke, err := store.CreatePlayer(ctx, "sasuke", room.Id)
	require.NoError(t, err)

	_, err = store.CreateVote(ctx, room.Id, naruto.Id, sasuke.Id, 1)
	require.NoError(t, err)
	_, err = store.CreateVote(ctx, room.Id, sasuke.Id, naruto.Id, 2)
	require.NoError(t, err)

	all, err := store.GetVotesByRoom(ctx, room.Id)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	firstRound, err := store.GetVotesByRoomAndRound(ctx, room.Id, 1)
	require.NoError(t, err)
	require.Len(t, firstRound, 1)
	assert.Equal(t, naruto.Id, firstRound[0].PlayerId)
	assert.Equal(t, sasuke.Id, firstRound[0].SuspectId)

	require.NoError(t, store.DeleteVotesByRoom(ctx, room.Id))
	all, err = store.GetVotesByRoom(ctx, room.Id)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryStore_DeleteRoomCascades(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	room, err := store.CreateRoom(ctx, "host-1")
	require.NoError(t, err)
	naruto, err := store.CreatePlayer(ctx, "naruto", room.Id)
	require.NoError(t, err)
	sasuke, err := store.CreatePlayer(ctx, "sasuke", room.Id)
	require.NoError(t, err)
	_, err = store.CreateVote(ctx, room.Id, naruto.Id, sasuke.Id, 1)
	require.NoError(t, err)

	require.NoError(t, store.DeleteRoom(ctx, room.Id))

	_, err = store.GetRoomById(ctx, room.Id)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = store.GetPlayer(ctx, naruto.Id)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	votes, err := store.GetVotesByRoom(ctx, room.Id)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestMemoryStore_RoomCodesUniqueAmongActive(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		room, err := store.CreateRoom(ctx, "host")
		require.NoError(t, err)
		assert.False(t, seen[room.Code], "duplicate code %s", room.Code)
		seen[room.Code] = true
	}
}
