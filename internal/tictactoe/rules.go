package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// InitialState - returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// Player - returns the side to move. X opens on the nine-empty board, so an
// odd number of empty cells means X and an even number means O.
func Player(board entity.Board) entity.Mark {
	if board.Empties()%2 == 0 {
		return entity.O
	}

	return entity.X
}

// Actions - returns all empty cells in row-major order, or nothing when the game is over.
func Actions(board entity.Board) []entity.Action {
	if _, ok := Winner(board); ok {
		return []entity.Action{}
	}

	actions := make([]entity.Action, 0, board.Empties())
	for i, row := range board {
		for j, cell := range row {
			if cell == entity.Empty {
				actions = append(actions, entity.Action{Row: i, Col: j})
			}
		}
	}

	return actions
}

// Result - returns the board after the side to move plays the action.
// The given board is never changed.
func Result(board entity.Board, action entity.Action) (entity.Board, error) {
	if !action.Valid() {
		return board, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, action)
	}

	if board.At(action) != entity.Empty {
		return board, fmt.Errorf("%w: %s", apperror.ErrInvalidMove, action)
	}

	next := board
	next[action.Row][action.Col] = Player(board)

	return next, nil
}

// MustResult is like Result but panics if the move is illegal.
func MustResult(board entity.Board, action entity.Action) entity.Board {
	next, err := Result(board, action)
	if err != nil {
		panic(fmt.Errorf("tictactoe: %w", err))
	}

	return next
}

// Winner - returns the mark of the first complete line: rows, then columns, then diagonals.
func Winner(board entity.Board) (entity.Mark, bool) {
	for _, line := range entity.WinLines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.Empty && a == b && b == c {
			return a, true
		}
	}

	return entity.Empty, false
}

// Terminal - reports whether the game is over.
func Terminal(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return board.Empties() == 0
}

// Utility - scores the board from X's point of view: 1 for an X win, -1 for an
// O win and 0 otherwise. Non-terminal boards also score 0.
func Utility(board entity.Board) int {
	switch winner, _ := Winner(board); winner {
	case entity.X:
		return 1
	case entity.O:
		return -1
	default:
		return 0
	}
}
