package domain

import "time"

type GameState string

const (
	STATE_LOBBY    GameState = "lobby"
	STATE_PLAYING  GameState = "playing"
	STATE_VOTING   GameState = "voting"
	STATE_FINISHED GameState = "finished"
)

type Room struct {
	Id            string    `json:"id"`
	Code          string    `json:"code"`
	HostId        string    `json:"hostId"`
	IsActive      bool      `json:"isActive"`
	SecretWord    string    `json:"secretWord"`
	SecretAgentId string    `json:"secretAgent"`
	GameState     GameState `json:"gameState"`
	CurrentRound  int       `json:"currentRound"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Player struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	RoomId      string    `json:"roomId"`
	IsConnected bool      `json:"isConnected"`
	Score       int       `json:"score"`
	JoinedAt    time.Time `json:"joinedAt"`
}

type Vote struct {
	Id        string    `json:"id"`
	RoomId    string    `json:"roomId"`
	PlayerId  string    `json:"playerId"`
	SuspectId string    `json:"suspectId"`
	Round     int       `json:"round"`
	CreatedAt time.Time `json:"createdAt"`
}
