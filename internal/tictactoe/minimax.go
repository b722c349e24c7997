package tictactoe

import (
	"math"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Minimax - returns the optimal action for the side to move, or false if the board is terminal.
// Among equally good actions the first one in row-major order is chosen.
func Minimax(board entity.Board) (entity.Action, bool) {
	action, _, ok := sequential.BestMove(board)
	return action, ok
}

// MaxValue - value of the board when X is to move.
func MaxValue(board entity.Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	v := math.MinInt
	for _, action := range Actions(board) {
		v = max(v, MinValue(MustResult(board, action)))
	}

	return v
}

// MinValue - value of the board when O is to move.
func MinValue(board entity.Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	v := math.MaxInt
	for _, action := range Actions(board) {
		v = min(v, MaxValue(MustResult(board, action)))
	}

	return v
}

var sequential = NewSearcher()

type Option func(*Searcher)

// WithParallel evaluates each top-level action in its own goroutine.
func WithParallel(parallel bool) Option {
	return func(s *Searcher) {
		s.parallel = parallel
	}
}

// Searcher runs the full minimax search. The zero value searches sequentially.
type Searcher struct {
	parallel bool
}

func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (that *Searcher) Parallel() bool {
	return that.parallel
}

// Evaluate - returns the game-theoretic value of the board from X's point of view.
func (that *Searcher) Evaluate(board entity.Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	_, value, _ := that.BestMove(board)

	return value
}

// BestMove - returns the optimal action together with its value.
func (that *Searcher) BestMove(board entity.Board) (entity.Action, int, bool) {
	if Terminal(board) {
		return entity.Action{}, Utility(board), false
	}

	actions := Actions(board)
	values := that.childValues(board, actions)

	maximizing := Player(board) == entity.X

	best := 0
	for i := 1; i < len(values); i++ {
		if (maximizing && values[i] > values[best]) || (!maximizing && values[i] < values[best]) {
			best = i
		}
	}

	return actions[best], values[best], true
}

// childValues - values[i] is the value of playing actions[i].
func (that *Searcher) childValues(board entity.Board, actions []entity.Action) []int {
	next := MinValue
	if Player(board) == entity.O {
		next = MaxValue
	}

	values := make([]int, len(actions))

	if !that.parallel {
		for i, action := range actions {
			values[i] = next(MustResult(board, action))
		}
		return values
	}

	var wg sync.WaitGroup
	for i, action := range actions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			values[i] = next(MustResult(board, action))
		}()
	}
	wg.Wait()

	return values
}
