package game

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
	"github.com/Nickolas-Loukas/the-secret-word/storage"
	"github.com/Nickolas-Loukas/the-secret-word/words"
	"github.com/rs/zerolog/log"
)

// MAX_PLAYERS is the hard cap on room membership.
const MAX_PLAYERS = 8

// MIN_PLAYERS is how many players a game needs before it can start.
const MIN_PLAYERS = 3

// Service is the game orchestrator. It validates inbound messages against the
// current room phase, mutates the store, and fans resulting events out to the
// room. Every handler for a given room runs inside that room's lock, so
// read-modify-write sequences (vote counting against the roster, phase
// transitions) never interleave. Rooms never block each other.
type Service struct {
	store       storage.Store
	registry    *Registry
	broadcaster *Broadcaster
	supplier    words.Supplier
	language    string

	locks *roomLocks

	// pickIndex selects the secret agent from the roster. Swapped out in tests.
	pickIndex func(n int) int
}

func NewService(store storage.Store, registry *Registry, supplier words.Supplier, language string) *Service {
	return &Service{
		store:       store,
		registry:    registry,
		broadcaster: NewBroadcaster(registry),
		supplier:    supplier,
		language:    language,
		locks:       newRoomLocks(),
		pickIndex:   rand.IntN,
	}
}

// HandleMessage is the single entry point for an inbound envelope. Any
// rejection is reported to the sender alone and leaves state untouched.
func (s *Service) HandleMessage(ctx context.Context, conn Connection, raw []byte) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.sendError(conn, errInvalidMessage)
		return
	}

	switch envelope.Type {
	case MSG_JOIN_ROOM:
		var payload JoinRoomPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			s.sendError(conn, errInvalidMessage)
			return
		}
		s.handleJoinRoom(ctx, conn, payload)
	case MSG_START_GAME:
		s.withSenderRoom(ctx, conn, s.handleStartGame)
	case MSG_START_VOTING:
		s.withSenderRoom(ctx, conn, s.handleStartVoting)
	case MSG_SUBMIT_VOTE:
		var payload SubmitVotePayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			s.sendError(conn, errInvalidMessage)
			return
		}
		s.withSenderRoom(ctx, conn, func(ctx context.Context, conn Connection, playerId, roomId string) {
			s.handleSubmitVote(ctx, conn, playerId, roomId, payload)
		})
	case MSG_AGENT_GUESS:
		var payload AgentGuessPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			s.sendError(conn, errInvalidMessage)
			return
		}
		s.withSenderRoom(ctx, conn, func(ctx context.Context, conn Connection, playerId, roomId string) {
			s.handleAgentGuess(ctx, conn, playerId, roomId, payload)
		})
	default:
		s.sendError(conn, errUnknownMessageType)
	}
}

// withSenderRoom resolves the sender's registration and runs the handler under
// the room lock. Messages from unregistered connections are rejected.
func (s *Service) withSenderRoom(ctx context.Context, conn Connection, handler func(ctx context.Context, conn Connection, playerId, roomId string)) {
	playerId, roomId, ok := s.registry.Lookup(conn)
	if !ok {
		s.sendError(conn, errNotInRoom)
		return
	}

	lock := s.locks.get(roomId)
	lock.Lock()
	defer lock.Unlock()

	handler(ctx, conn, playerId, roomId)
}

func (s *Service) handleJoinRoom(ctx context.Context, conn Connection, payload JoinRoomPayload) {
	lock := s.locks.get(payload.RoomId)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.store.GetPlayer(ctx, payload.PlayerId)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	room, err := s.store.GetRoomById(ctx, payload.RoomId)
	if err != nil || player.RoomId != room.Id {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}

	player, err = s.store.UpdatePlayer(ctx, player.Id, storage.PlayerUpdate{IsConnected: ptr(true)})
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}

	s.registry.Register(conn, player.Id, room.Id)

	players, err := s.store.GetPlayersByRoom(ctx, room.Id)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.Id).Msg("failed to load roster after join")
		return
	}

	log.Info().Str("room_id", room.Id).Str("player_id", player.Id).Msg("player joined room")
	s.broadcaster.BroadcastToRoom(room.Id, MakeMessage(MSG_PLAYER_JOINED, PlayerJoinedPayload{
		Player:  player,
		Players: players,
	}))
}

func (s *Service) handleStartGame(ctx context.Context, conn Connection, playerId, roomId string) {
	room, err := s.store.GetRoomById(ctx, roomId)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	if room.GameState != domain.STATE_LOBBY && room.GameState != domain.STATE_FINISHED {
		s.sendError(conn, errGameNotRestartable)
		return
	}

	players, err := s.store.GetPlayersByRoom(ctx, roomId)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	if len(players) < MIN_PLAYERS {
		s.sendError(conn, errNotEnoughPlayers)
		return
	}

	// Replaying a finished room starts a clean cycle.
	if room.GameState == domain.STATE_FINISHED {
		if err := s.store.DeleteVotesByRoom(ctx, roomId); err != nil {
			log.Error().Err(err).Str("room_id", roomId).Msg("failed to purge votes on restart")
			s.sendError(conn, errPlayerOrRoomLost)
			return
		}
	}

	secretWord := s.supplier.Word(s.language)
	agent := players[s.pickIndex(len(players))]

	room, err = s.store.UpdateRoom(ctx, roomId, storage.RoomUpdate{
		GameState:     ptr(domain.STATE_PLAYING),
		SecretWord:    &secretWord,
		SecretAgentId: &agent.Id,
		CurrentRound:  ptr(0),
	})
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}

	log.Info().Str("room_id", roomId).Str("agent_id", agent.Id).Msg("game started")

	// Per-recipient payload: everyone learns who deals with the word, but the
	// agent's own payload carries no word.
	for _, player := range players {
		word := secretWord
		if player.Id == agent.Id {
			word = ""
		}
		s.broadcaster.SendToPlayer(player.Id, MakeMessage(MSG_GAME_STARTED, GameStartedPayload{
			SecretWord:    word,
			SecretAgentId: agent.Id,
			IsSecretAgent: player.Id == agent.Id,
		}))
	}
}

func (s *Service) handleStartVoting(ctx context.Context, conn Connection, playerId, roomId string) {
	room, err := s.store.GetRoomById(ctx, roomId)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	if room.GameState != domain.STATE_PLAYING {
		s.sendError(conn, errVotingNotPlaying)
		return
	}

	room, err = s.store.UpdateRoom(ctx, roomId, storage.RoomUpdate{
		GameState:    ptr(domain.STATE_VOTING),
		CurrentRound: ptr(room.CurrentRound + 1),
	})
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}

	players, err := s.store.GetPlayersByRoom(ctx, roomId)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomId).Msg("failed to load roster for voting")
		return
	}

	log.Info().Str("room_id", roomId).Int("round", room.CurrentRound).Msg("voting started")
	s.broadcaster.BroadcastToRoom(roomId, MakeMessage(MSG_VOTING_STARTED, VotingStartedPayload{
		Players: players,
	}))
}

func (s *Service) handleSubmitVote(ctx context.Context, conn Connection, playerId, roomId string, payload SubmitVotePayload) {
	room, err := s.store.GetRoomById(ctx, roomId)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	if room.GameState != domain.STATE_VOTING {
		s.sendError(conn, errNotVotingPhase)
		return
	}

	votes, err := s.store.GetVotesByRoomAndRound(ctx, roomId, room.CurrentRound)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	for _, vote := range votes {
		if vote.PlayerId == playerId {
			s.sendError(conn, errAlreadyVoted)
			return
		}
	}

	if _, err := s.store.CreateVote(ctx, roomId, playerId, payload.SuspectId, room.CurrentRound); err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}

	players, err := s.store.GetPlayersByRoom(ctx, roomId)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomId).Msg("failed to load roster for tally check")
		return
	}

	// One vote per player per round, so the counted votes are distinct voters.
	if len(votes)+1 == len(players) {
		s.endRound(ctx, room, players)
		return
	}

	s.broadcaster.BroadcastToRoom(roomId, MakeMessage(MSG_VOTE_SUBMITTED, VoteSubmittedPayload{
		PlayerId:  playerId,
		SuspectId: payload.SuspectId,
	}))
}

// endRound tallies the current round and finishes the game. The accused is the
// suspect with the most votes; on a tie the lexicographically smallest suspect
// id wins the accusation, so the outcome never depends on iteration order.
func (s *Service) endRound(ctx context.Context, room domain.Room, players []domain.Player) {
	votes, err := s.store.GetVotesByRoomAndRound(ctx, room.Id, room.CurrentRound)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.Id).Msg("failed to load votes for tally")
		return
	}

	voteCount := map[string]int{}
	for _, vote := range votes {
		voteCount[vote.SuspectId]++
	}

	suspects := make([]string, 0, len(voteCount))
	for suspectId := range voteCount {
		suspects = append(suspects, suspectId)
	}
	sort.Strings(suspects)

	mostVoted := ""
	for _, suspectId := range suspects {
		if mostVoted == "" || voteCount[suspectId] > voteCount[mostVoted] {
			mostVoted = suspectId
		}
	}

	winner := WINNER_SPY
	if mostVoted == room.SecretAgentId {
		winner = WINNER_AGENTS
	}

	if _, err := s.store.UpdateRoom(ctx, room.Id, storage.RoomUpdate{GameState: ptr(domain.STATE_FINISHED)}); err != nil {
		log.Error().Err(err).Str("room_id", room.Id).Msg("failed to finish room after tally")
		return
	}

	log.Info().Str("room_id", room.Id).Str("winner", winner).Str("most_voted", mostVoted).Msg("game ended by vote")
	s.broadcaster.BroadcastToRoom(room.Id, MakeMessage(MSG_GAME_ENDED, GameEndedPayload{
		SecretWord:    room.SecretWord,
		SecretAgentId: room.SecretAgentId,
		Votes:         votes,
		Winner:        winner,
		Players:       players,
	}))
}

func (s *Service) handleAgentGuess(ctx context.Context, conn Connection, playerId, roomId string, payload AgentGuessPayload) {
	room, err := s.store.GetRoomById(ctx, roomId)
	if err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}
	if room.GameState != domain.STATE_PLAYING || room.SecretAgentId != playerId {
		s.sendError(conn, errNotTheAgent)
		return
	}

	if !strings.EqualFold(payload.Guess, room.SecretWord) {
		if err := conn.Send(MakeMessage(MSG_GUESS_REJECTED, ErrorPayload{Message: errWrongGuess})); err != nil {
			log.Warn().Err(err).Str("player_id", playerId).Msg("failed to send guess rejection")
		}
		return
	}

	if _, err := s.store.UpdateRoom(ctx, roomId, storage.RoomUpdate{GameState: ptr(domain.STATE_FINISHED)}); err != nil {
		s.sendError(conn, errPlayerOrRoomLost)
		return
	}

	players, err := s.store.GetPlayersByRoom(ctx, roomId)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomId).Msg("failed to load roster after winning guess")
		return
	}

	log.Info().Str("room_id", roomId).Str("agent_id", playerId).Msg("secret agent guessed the word")
	s.broadcaster.BroadcastToRoom(roomId, MakeMessage(MSG_GAME_ENDED, GameEndedPayload{
		SecretWord:    room.SecretWord,
		SecretAgentId: room.SecretAgentId,
		Votes:         []domain.Vote{},
		Winner:        WINNER_SPY,
		Players:       players,
	}))
}

// HandleDisconnect runs when a transport closes. The player's already-cast
// votes stay in the store and keep counting toward the round.
func (s *Service) HandleDisconnect(ctx context.Context, conn Connection) {
	playerId, roomId, ok := s.registry.Unregister(conn)
	if !ok {
		return
	}

	lock := s.locks.get(roomId)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.store.UpdatePlayer(ctx, playerId, storage.PlayerUpdate{IsConnected: ptr(false)}); err != nil {
		log.Warn().Err(err).Str("player_id", playerId).Msg("failed to mark player disconnected")
	}

	players, err := s.store.GetPlayersByRoom(ctx, roomId)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomId).Msg("failed to load roster after disconnect")
		return
	}

	log.Info().Str("room_id", roomId).Str("player_id", playerId).Msg("player left room")
	s.broadcaster.BroadcastToRoom(roomId, MakeMessage(MSG_PLAYER_LEFT, PlayerLeftPayload{
		PlayerId: playerId,
		Players:  players,
	}))
}

func (s *Service) sendError(conn Connection, message string) {
	if err := conn.Send(MakeMessage(MSG_ERROR, ErrorPayload{Message: message})); err != nil {
		log.Warn().Err(err).Msg("failed to send error to client")
	}
}

func ptr[T any](v T) *T {
	return &v
}
