package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

type mockSearcher struct {
	mock.Mock
}

func (that *mockSearcher) BestMove(board entity.Board) (entity.Action, int, bool) {
	args := that.Called(board)
	return args.Get(0).(entity.Action), args.Int(1), args.Bool(2)
}

func TestBotService_NextMove(t *testing.T) {
	t.Run("Returns the searcher's move", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a searcher that picks the centre
		searcher := &mockSearcher{}
		board := tictactoe.InitialState()
		searcher.On("BestMove", board).Return(entity.Action{Row: 1, Col: 1}, 0, true).Once()

		bot := NewBotService(st.Logger, searcher)

		// When: asking the bot for a move
		action, err := bot.NextMove(ctx, board)

		// Then: the centre is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Action{Row: 1, Col: 1}, action)
		searcher.AssertExpectations(t)
	})

	t.Run("Error when the board is terminal", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a searcher that finds nothing to play
		searcher := &mockSearcher{}
		searcher.On("BestMove", mock.Anything).Return(entity.Action{}, 1, false).Once()

		bot := NewBotService(st.Logger, searcher)

		// When: asking the bot for a move
		_, err := bot.NextMove(ctx, entity.Board{})

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
		searcher.AssertExpectations(t)
	})
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Applies the move", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a bot backed by the real search
		bot := NewBotService(st.Logger, tictactoe.NewSearcher())
		board := entity.Board{
			{entity.X, entity.X, entity.Empty},
			{entity.O, entity.O, entity.Empty},
			{entity.Empty, entity.Empty, entity.Empty},
		}

		// When: the bot makes a turn for X
		next, action, err := bot.MakeTurn(ctx, board)

		// Then: X completes the top row and the input is untouched
		require.NoError(t, err)
		assert.Equal(t, entity.Action{Row: 0, Col: 2}, action)
		assert.Equal(t, entity.X, next[0][2])
		assert.Equal(t, entity.Empty, board[0][2])
	})

	t.Run("Error on an illegal move from the searcher", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a searcher that suggests an occupied cell
		board := entity.Board{}
		board[1][1] = entity.X

		searcher := &mockSearcher{}
		searcher.On("BestMove", board).Return(entity.Action{Row: 1, Col: 1}, 0, true).Once()

		bot := NewBotService(st.Logger, searcher)

		// When: the bot makes a turn
		next, _, err := bot.MakeTurn(ctx, board)

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, board, next)
		searcher.AssertExpectations(t)
	})

	t.Run("Terminal board", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a drawn board
		board := entity.Board{
			{entity.X, entity.O, entity.X},
			{entity.X, entity.O, entity.O},
			{entity.O, entity.X, entity.X},
		}
		bot := NewBotService(st.Logger, tictactoe.NewSearcher())

		// When: the bot makes a turn
		_, _, err := bot.MakeTurn(ctx, board)

		// Then: there is nothing to play
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
