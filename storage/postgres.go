package storage

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Nickolas-Loukas/the-secret-word/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// "23505" is the PostgreSQL error code for unique_violation
const pgUniqueViolation = "23505"

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresRepo{pool: pool}, nil
}

func (pgr *PostgresRepo) Close() {
	pgr.pool.Close()
}

func (pgr *PostgresRepo) CreateRoom(ctx context.Context, hostId string) (domain.Room, error) {
	room := domain.Room{
		HostId:    hostId,
		IsActive:  true,
		GameState: domain.STATE_LOBBY,
	}

	// The partial unique index on active room codes makes collisions surface
	// as unique violations, so generation just retries on 23505.
	for {
		room.Code = randomRoomCode()
		row := pgr.pool.QueryRow(ctx,
			"INSERT INTO rooms(code, host_id) VALUES($1, $2) RETURNING id, created_at",
			room.Code, hostId)

		err := row.Scan(&room.Id, &room.CreatedAt)
		if err == nil {
			return room, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Room{}, err
		}
		return domain.Room{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
}

const roomColumns = "id, code, host_id, is_active, secret_word, secret_agent, game_state, current_round, created_at"

func scanRoom(row pgx.Row) (domain.Room, error) {
	var room domain.Room
	err := row.Scan(&room.Id, &room.Code, &room.HostId, &room.IsActive, &room.SecretWord,
		&room.SecretAgentId, &room.GameState, &room.CurrentRound, &room.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.Room{}, domain.ErrRoomNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return domain.Room{}, err
		default:
			return domain.Room{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}
	return room, nil
}

func (pgr *PostgresRepo) GetRoomById(ctx context.Context, id string) (domain.Room, error) {
	row := pgr.pool.QueryRow(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id = $1", id)
	return scanRoom(row)
}

func (pgr *PostgresRepo) GetRoomByCode(ctx context.Context, code string) (domain.Room, error) {
	row := pgr.pool.QueryRow(ctx, "SELECT "+roomColumns+" FROM rooms WHERE code = $1 AND is_active", code)
	return scanRoom(row)
}

func (pgr *PostgresRepo) UpdateRoom(ctx context.Context, id string, updates RoomUpdate) (domain.Room, error) {
	row := pgr.pool.QueryRow(ctx, `
		UPDATE rooms SET
			is_active     = COALESCE($2, is_active),
			secret_word   = COALESCE($3, secret_word),
			secret_agent  = COALESCE($4, secret_agent),
			game_state    = COALESCE($5, game_state),
			current_round = COALESCE($6, current_round)
		WHERE id = $1
		RETURNING `+roomColumns,
		id, updates.IsActive, updates.SecretWord, updates.SecretAgentId,
		(*string)(updates.GameState), updates.CurrentRound)
	return scanRoom(row)
}

func (pgr *PostgresRepo) DeleteRoom(ctx context.Context, id string) error {
	// Players and votes go with the room through ON DELETE CASCADE.
	tag, err := pgr.pool.Exec(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (pgr *PostgresRepo) CreatePlayer(ctx context.Context, name, roomId string) (domain.Player, error) {
	player := domain.Player{Name: name, RoomId: roomId, IsConnected: true}

	row := pgr.pool.QueryRow(ctx,
		"INSERT INTO players(name, room_id) VALUES($1, $2) RETURNING id, joined_at",
		name, roomId)

	err := row.Scan(&player.Id, &player.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return domain.Player{}, domain.ErrRoomNotFound
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Player{}, err
		}
		return domain.Player{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return player, nil
}

const playerColumns = "id, name, room_id, is_connected, score, joined_at"

func scanPlayer(row pgx.Row) (domain.Player, error) {
	var player domain.Player
	err := row.Scan(&player.Id, &player.Name, &player.RoomId, &player.IsConnected,
		&player.Score, &player.JoinedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.Player{}, domain.ErrPlayerNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return domain.Player{}, err
		default:
			return domain.Player{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}
	return player, nil
}

func (pgr *PostgresRepo) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	row := pgr.pool.QueryRow(ctx, "SELECT "+playerColumns+" FROM players WHERE id = $1", id)
	return scanPlayer(row)
}

func (pgr *PostgresRepo) GetPlayersByRoom(ctx context.Context, roomId string) ([]domain.Player, error) {
	rows, err := pgr.pool.Query(ctx,
		"SELECT "+playerColumns+" FROM players WHERE room_id = $1 ORDER BY joined_at, id", roomId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return players, nil
}

func (pgr *PostgresRepo) UpdatePlayer(ctx context.Context, id string, updates PlayerUpdate) (domain.Player, error) {
	row := pgr.pool.QueryRow(ctx, `
		UPDATE players SET
			is_connected = COALESCE($2, is_connected),
			score        = COALESCE($3, score)
		WHERE id = $1
		RETURNING `+playerColumns,
		id, updates.IsConnected, updates.Score)
	return scanPlayer(row)
}

func (pgr *PostgresRepo) DeletePlayer(ctx context.Context, id string) error {
	tag, err := pgr.pool.Exec(ctx, "DELETE FROM players WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (pgr *PostgresRepo) CreateVote(ctx context.Context, roomId, playerId, suspectId string, round int) (domain.Vote, error) {
	vote := domain.Vote{RoomId: roomId, PlayerId: playerId, SuspectId: suspectId, Round: round}

	row := pgr.pool.QueryRow(ctx,
		"INSERT INTO votes(room_id, player_id, suspect_id, round) VALUES($1, $2, $3, $4) RETURNING id, created_at",
		roomId, playerId, suspectId, round)

	err := row.Scan(&vote.Id, &vote.CreatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Vote{}, err
		}
		return domain.Vote{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return vote, nil
}

const voteColumns = "id, room_id, player_id, suspect_id, round, created_at"

func (pgr *PostgresRepo) queryVotes(ctx context.Context, query string, args ...any) ([]domain.Vote, error) {
	rows, err := pgr.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var vote domain.Vote
		err := rows.Scan(&vote.Id, &vote.RoomId, &vote.PlayerId, &vote.SuspectId,
			&vote.Round, &vote.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return votes, nil
}

func (pgr *PostgresRepo) GetVotesByRoom(ctx context.Context, roomId string) ([]domain.Vote, error) {
	return pgr.queryVotes(ctx,
		"SELECT "+voteColumns+" FROM votes WHERE room_id = $1 ORDER BY created_at, id", roomId)
}

func (pgr *PostgresRepo) GetVotesByRoomAndRound(ctx context.Context, roomId string, round int) ([]domain.Vote, error) {
	return pgr.queryVotes(ctx,
		"SELECT "+voteColumns+" FROM votes WHERE room_id = $1 AND round = $2 ORDER BY created_at, id",
		roomId, round)
}

func (pgr *PostgresRepo) DeleteVotesByRoom(ctx context.Context, roomId string) error {
	_, err := pgr.pool.Exec(ctx, "DELETE FROM votes WHERE room_id = $1", roomId)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return nil
}

func randomRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeAlphabet[rand.IntN(len(roomCodeAlphabet))]
	}
	return string(code)
}
