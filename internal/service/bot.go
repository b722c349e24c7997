package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	NextMove(ctx context.Context, board entity.Board) (entity.Action, error)
	MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Action, error)
}

type searcher interface {
	BestMove(board entity.Board) (entity.Action, int, bool)
}

type botService struct {
	logger   *slog.Logger
	searcher searcher
}

func NewBotService(logger *slog.Logger, searcher searcher) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
}

// NextMove - picks the optimal move for the side to move.
func (that *botService) NextMove(ctx context.Context, board entity.Board) (entity.Action, error) {
	log := that.logger.With("method", "NextMove")

	action, value, ok := that.searcher.BestMove(board)
	if !ok {
		return entity.Action{}, ErrNoAvailableMoves
	}

	log.DebugContext(ctx, "move chosen", "side", tictactoe.Player(board).String(), "action", action.String(), "value", value)

	return action, nil
}

// MakeTurn - plays the optimal move and returns the new board.
func (that *botService) MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Action, error) {
	action, err := that.NextMove(ctx, board)
	if err != nil {
		return board, entity.Action{}, err
	}

	next, err := tictactoe.Result(board, action)
	if err != nil {
		return board, entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, action, nil
}
