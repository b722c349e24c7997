package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrUnexpectedOutcome = errors.New("self-play outcome differs from the board value")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf)
}

// Run - plays the configured self-play matches and checks each outcome against the search value.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	start, err := OpeningBoard(conf.SelfPlay.Opening)
	if err != nil {
		return fmt.Errorf("invalid opening: %w", err)
	}

	searcher := tictactoe.NewSearcher(tictactoe.WithParallel(conf.Search.Parallel))
	bot := service.NewBotService(logger, searcher)
	selfPlay := service.NewSelfPlayService(logger, bot)

	expected := searcher.Evaluate(start)
	log.Info("Starting self-play", "games", conf.SelfPlay.Games, "parallel", searcher.Parallel(), "value", expected)

	for i := range conf.SelfPlay.Games {
		match, err := selfPlay.Play(ctx, start)
		if err != nil {
			return fmt.Errorf("self-play game %d failed: %w", i+1, err)
		}

		if match.Utility != expected {
			return fmt.Errorf("%w: game %d scored %d, expected %d", ErrUnexpectedOutcome, i+1, match.Utility, expected)
		}

		log.Info("Self-play game finished", "game", i+1, "matchID", match.ID, "winner", match.Winner.String(), "utility", match.Utility)
	}

	return nil
}

// OpeningBoard - applies the opening moves to the initial board.
func OpeningBoard(opening [][2]int) (entity.Board, error) {
	board := tictactoe.InitialState()

	for _, cell := range opening {
		if tictactoe.Terminal(board) {
			return board, fmt.Errorf("%w: cannot play %v", apperror.ErrGameFinished, cell)
		}

		next, err := tictactoe.Result(board, entity.Action{Row: cell[0], Col: cell[1]})
		if err != nil {
			return board, fmt.Errorf("failed to play %v: %w", cell, err)
		}
		board = next
	}

	return board, nil
}
