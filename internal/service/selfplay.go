package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Ply is a single move in a match.
type Ply struct {
	Side   entity.Mark   `json:"side"`
	Action entity.Action `json:"action"`
}

// Match records one bot-versus-bot game.
type Match struct {
	ID      string       `json:"id"`
	Start   entity.Board `json:"start"`
	Final   entity.Board `json:"final"`
	Plies   []Ply        `json:"plies"`
	Winner  entity.Mark  `json:"winner"`
	Utility int          `json:"utility"`
}

func (that *Match) IsDraw() bool {
	return that.Winner == entity.Empty
}

type SelfPlayService interface {
	Play(ctx context.Context, start entity.Board) (*Match, error)
}

type selfPlayService struct {
	logger *slog.Logger
	bot    BotService
}

func NewSelfPlayService(logger *slog.Logger, bot BotService) SelfPlayService {
	return &selfPlayService{
		logger: logger.With("component", "self-play"),
		bot:    bot,
	}
}

// Play - lets the bot play both sides from start until the game is over.
func (that *selfPlayService) Play(ctx context.Context, start entity.Board) (*Match, error) {
	match := &Match{
		ID:    uuid.NewString(),
		Start: start,
		Plies: make([]Ply, 0, start.Empties()),
	}

	log := that.logger.With("method", "Play", "matchID", match.ID)

	board := start
	for !tictactoe.Terminal(board) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("self-play interrupted: %w", err)
		}

		side := tictactoe.Player(board)

		next, action, err := that.bot.MakeTurn(ctx, board)
		if err != nil {
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}

		match.Plies = append(match.Plies, Ply{Side: side, Action: action})
		board = next
	}

	match.Final = board
	match.Winner, _ = tictactoe.Winner(board)
	match.Utility = tictactoe.Utility(board)

	log.InfoContext(ctx, "match finished", "plies", len(match.Plies), "winner", match.Winner.String(), "utility", match.Utility)

	return match, nil
}
