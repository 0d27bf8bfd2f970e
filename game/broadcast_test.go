package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_FailedRecipientDoesNotAbortDelivery(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry)

	dead := &recorderConn{failSend: true}
	alive1 := &recorderConn{}
	alive2 := &recorderConn{}
	registry.Register(dead, "p1", "r1")
	registry.Register(alive1, "p2", "r1")
	registry.Register(alive2, "p3", "r1")

	broadcaster.BroadcastToRoom("r1", MakeMessage(MSG_ERROR, ErrorPayload{Message: "ping"}))

	assert.Equal(t, 1, alive1.count())
	assert.Equal(t, 1, alive2.count())
	assert.Equal(t, 0, dead.count())
}

func TestBroadcaster_SendToPlayer(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry)

	conn := &recorderConn{}
	registry.Register(conn, "p1", "r1")

	broadcaster.SendToPlayer("p1", MakeMessage(MSG_ERROR, ErrorPayload{Message: "hello"}))
	assert.Equal(t, 1, conn.count())

	// A transiently disconnected player is silently skipped.
	broadcaster.SendToPlayer("ghost", MakeMessage(MSG_ERROR, ErrorPayload{Message: "hello"}))
}

func TestBroadcaster_ScopedToRoom(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	broadcaster := NewBroadcaster(registry)

	inRoom := &recorderConn{}
	elsewhere := &recorderConn{}
	registry.Register(inRoom, "p1", "r1")
	registry.Register(elsewhere, "p2", "r2")

	broadcaster.BroadcastToRoom("r1", MakeMessage(MSG_ERROR, ErrorPayload{Message: "ping"}))

	assert.Equal(t, 1, inRoom.count())
	assert.Equal(t, 0, elsewhere.count())
}
