package game

import (
	"encoding/json"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
)

// Envelope is the wire format exchanged over the /ws connection, both ways.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client -> server message types.
const (
	MSG_JOIN_ROOM    = "JOIN_ROOM"
	MSG_START_GAME   = "START_GAME"
	MSG_START_VOTING = "START_VOTING"
	MSG_SUBMIT_VOTE  = "SUBMIT_VOTE"
	MSG_AGENT_GUESS  = "AGENT_GUESS"
)

// Server -> client message types.
const (
	MSG_PLAYER_JOINED  = "PLAYER_JOINED"
	MSG_PLAYER_LEFT    = "PLAYER_LEFT"
	MSG_GAME_STARTED   = "GAME_STARTED"
	MSG_VOTING_STARTED = "VOTING_STARTED"
	MSG_VOTE_SUBMITTED = "VOTE_SUBMITTED"
	MSG_GAME_ENDED     = "GAME_ENDED"
	MSG_GUESS_REJECTED = "GUESS_REJECTED"
	MSG_ERROR          = "ERROR"
)

const (
	WINNER_SPY    = "spy"
	WINNER_AGENTS = "agents"
)

type JoinRoomPayload struct {
	PlayerId string `json:"playerId"`
	RoomId   string `json:"roomId"`
}

type SubmitVotePayload struct {
	SuspectId string `json:"suspectId"`
}

type AgentGuessPayload struct {
	Guess string `json:"guess"`
}

type PlayerJoinedPayload struct {
	Player  domain.Player   `json:"player"`
	Players []domain.Player `json:"players"`
}

type PlayerLeftPayload struct {
	PlayerId string          `json:"playerId"`
	Players  []domain.Player `json:"players"`
}

// GameStartedPayload is built per recipient: the secret agent gets an empty
// SecretWord.
type GameStartedPayload struct {
	SecretWord    string `json:"secretWord"`
	SecretAgentId string `json:"secretAgent"`
	IsSecretAgent bool   `json:"isSecretAgent"`
}

type VotingStartedPayload struct {
	Players []domain.Player `json:"players"`
}

type VoteSubmittedPayload struct {
	PlayerId  string `json:"playerId"`
	SuspectId string `json:"suspectId"`
}

type GameEndedPayload struct {
	SecretWord    string          `json:"secretWord"`
	SecretAgentId string          `json:"secretAgent"`
	Votes         []domain.Vote   `json:"votes"`
	Winner        string          `json:"winner"`
	Players       []domain.Player `json:"players"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// MakeMessage marshals a typed payload into an envelope ready to write to a
// connection. Payload types above marshal without error, so failures are
// treated as programmer mistakes.
func MakeMessage(msgType string, payload any) []byte {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	data, err := json.Marshal(Envelope{Type: msgType, Payload: rawPayload})
	if err != nil {
		panic(err)
	}
	return data
}
