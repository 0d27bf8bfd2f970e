package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
	"github.com/Nickolas-Loukas/the-secret-word/storage"
	"github.com/Nickolas-Loukas/the-secret-word/words"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	service := NewService(store, NewRegistry(), words.Dictionary{}, words.LanguageGreek)
	handler := NewGameHandler(store, service)

	r := gin.New()
	handler.RegisterRoutes(r)
	return r, store
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateRoomHandler(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	testCases := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{name: "valid", body: `{"hostId":"host-1"}`, expectedCode: http.StatusOK},
		{name: "missing hostId", body: `{}`, expectedCode: http.StatusBadRequest},
		{name: "invalid json", body: `{invalid}`, expectedCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := doJSON(r, http.MethodPost, "/api/rooms", tc.body)
			assert.Equal(t, tc.expectedCode, recorder.Code)

			if tc.expectedCode == http.StatusOK {
				var room domain.Room
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &room))
				assert.Len(t, room.Code, 6)
				assert.Equal(t, "host-1", room.HostId)
				assert.Equal(t, domain.STATE_LOBBY, room.GameState)
				assert.True(t, room.IsActive)
			}
		})
	}
}

func TestGetRoomByCodeHandler(t *testing.T) {
	t.Parallel()
	r, store := newTestRouter(t)

	room, err := store.CreateRoom(context.Background(), "host-1")
	require.NoError(t, err)

	recorder := doJSON(r, http.MethodGet, "/api/rooms/"+room.Code, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var fetched domain.Room
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Equal(t, room.Id, fetched.Id)

	recorder = doJSON(r, http.MethodGet, "/api/rooms/ZZZZZZ", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreatePlayerHandler(t *testing.T) {
	t.Parallel()
	r, store := newTestRouter(t)

	room, err := store.CreateRoom(context.Background(), "host-1")
	require.NoError(t, err)

	recorder := doJSON(r, http.MethodPost, "/api/players",
		fmt.Sprintf(`{"name":"naruto","roomId":"%s"}`, room.Id))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var player domain.Player
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &player))
	assert.Equal(t, "naruto", player.Name)
	assert.Equal(t, room.Id, player.RoomId)
	assert.True(t, player.IsConnected)

	recorder = doJSON(r, http.MethodPost, "/api/players", `{"name":"ghost","roomId":"nowhere"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(r, http.MethodPost, "/api/players", `{"roomId":"missing-name"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreatePlayerHandler_RoomCap(t *testing.T) {
	t.Parallel()
	r, store := newTestRouter(t)

	room, err := store.CreateRoom(context.Background(), "host-1")
	require.NoError(t, err)

	for i := 0; i < MAX_PLAYERS; i++ {
		recorder := doJSON(r, http.MethodPost, "/api/players",
			fmt.Sprintf(`{"name":"player-%d","roomId":"%s"}`, i, room.Id))
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	// The ninth attempt bounces and the roster is untouched.
	recorder := doJSON(r, http.MethodPost, "/api/players",
		fmt.Sprintf(`{"name":"too-many","roomId":"%s"}`, room.Id))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Room is full")

	players, err := store.GetPlayersByRoom(context.Background(), room.Id)
	require.NoError(t, err)
	assert.Len(t, players, MAX_PLAYERS)
}

func TestListPlayersHandler(t *testing.T) {
	t.Parallel()
	r, store := newTestRouter(t)

	room, err := store.CreateRoom(context.Background(), "host-1")
	require.NoError(t, err)
	for _, name := range []string{"naruto", "sasuke"} {
		_, err := store.CreatePlayer(context.Background(), name, room.Id)
		require.NoError(t, err)
	}

	recorder := doJSON(r, http.MethodGet, "/api/rooms/"+room.Id+"/players", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var players []domain.Player
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &players))
	require.Len(t, players, 2)
	assert.Equal(t, "naruto", players[0].Name)
	assert.Equal(t, "sasuke", players[1].Name)
}
