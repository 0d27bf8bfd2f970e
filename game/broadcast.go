package game

import "github.com/rs/zerolog/log"

// Broadcaster fans messages out to room members through the registry.
// Delivery is best effort: a closed or erroring connection is logged and
// skipped, it never aborts delivery to the rest of the room.
type Broadcaster struct {
	registry *Registry
}

func NewBroadcaster(registry *Registry) *Broadcaster {
	return &Broadcaster{registry: registry}
}

func (b *Broadcaster) BroadcastToRoom(roomId string, data []byte) {
	for _, conn := range b.registry.AllInRoom(roomId) {
		if err := conn.Send(data); err != nil {
			log.Warn().Err(err).Str("room_id", roomId).Msg("dropping broadcast recipient")
		}
	}
}

// SendToPlayer delivers only if a live connection is registered for the
// player. A transiently disconnected player is not an error.
func (b *Broadcaster) SendToPlayer(playerId string, data []byte) {
	conn, ok := b.registry.FindByPlayer(playerId)
	if !ok {
		return
	}
	if err := conn.Send(data); err != nil {
		log.Warn().Err(err).Str("player_id", playerId).Msg("failed to send to player")
	}
}
