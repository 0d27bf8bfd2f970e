package game

// Messages sent back to the offending client in an ERROR envelope. They never
// reach anyone else in the room.
const (
	errInvalidMessage     = "Invalid message format"
	errUnknownMessageType = "Unknown message type"
	errNotInRoom          = "You are not in a room"
	errPlayerOrRoomLost   = "Player or room not found"
	errGameNotRestartable = "The game can only start from the lobby or after a finished game"
	errNotEnoughPlayers   = "At least 3 players are needed to start the game"
	errVotingNotPlaying   = "Voting can only start while the game is in progress"
	errNotVotingPhase     = "Votes are only accepted during the voting phase"
	errAlreadyVoted       = "You have already voted this round"
	errNotTheAgent        = "Only the secret agent can guess the word"
	errWrongGuess         = "Wrong guess!"
)
