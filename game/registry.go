package game

import "sync"

// Connection is the transport-facing surface the orchestrator writes to.
// gorilla/websocket connections satisfy it through websocketConnection;
// tests substitute their own.
type Connection interface {
	Send(data []byte) error
	Close(reason string)
}

type binding struct {
	playerId string
	roomId   string
}

// Registry tracks which live connection belongs to which player and room.
// It owns the mapping in both directions, independent of the transport
// object's lifetime.
type Registry struct {
	locker   sync.RWMutex
	byConn   map[Connection]binding
	byPlayer map[string]Connection
}

func NewRegistry() *Registry {
	return &Registry{
		byConn:   make(map[Connection]binding),
		byPlayer: make(map[string]Connection),
	}
}

// Register associates conn with (playerId, roomId). A later registration for
// the same player supersedes the former, which models reconnection: the stale
// connection keeps its transport alive but is no longer addressed.
func (r *Registry) Register(conn Connection, playerId, roomId string) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if old, ok := r.byPlayer[playerId]; ok && old != conn {
		delete(r.byConn, old)
	}
	r.byConn[conn] = binding{playerId: playerId, roomId: roomId}
	r.byPlayer[playerId] = conn
}

// Unregister removes conn and reports the binding it held. A connection that
// was superseded or never registered reports ok == false.
func (r *Registry) Unregister(conn Connection) (playerId, roomId string, ok bool) {
	r.locker.Lock()
	defer r.locker.Unlock()

	b, exists := r.byConn[conn]
	if !exists {
		return "", "", false
	}
	delete(r.byConn, conn)
	if r.byPlayer[b.playerId] == conn {
		delete(r.byPlayer, b.playerId)
	}
	return b.playerId, b.roomId, true
}

// Lookup reports the binding currently held by conn.
func (r *Registry) Lookup(conn Connection) (playerId, roomId string, ok bool) {
	r.locker.RLock()
	defer r.locker.RUnlock()

	b, exists := r.byConn[conn]
	return b.playerId, b.roomId, exists
}

// FindByPlayer returns the single live connection for playerId, if any.
func (r *Registry) FindByPlayer(playerId string) (Connection, bool) {
	r.locker.RLock()
	defer r.locker.RUnlock()

	conn, ok := r.byPlayer[playerId]
	return conn, ok
}

// AllInRoom returns a snapshot of the connections registered to roomId.
// Connections registered after the snapshot is taken are not included.
func (r *Registry) AllInRoom(roomId string) []Connection {
	r.locker.RLock()
	defer r.locker.RUnlock()

	conns := []Connection{}
	for conn, b := range r.byConn {
		if b.roomId == roomId {
			conns = append(conns, conn)
		}
	}
	return conns
}
