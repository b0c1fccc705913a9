package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/knucklebones-backend/internal/apperror"
	"github.com/rocketscienceinc/knucklebones-backend/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	RollDice(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, column int) (*entity.Game, error)
}

// Console drives one game over a line based reader and writer.
type Console struct {
	logger *slog.Logger

	game gameUseCase
	in   *bufio.Reader
	out  io.Writer
}

func New(logger *slog.Logger, game gameUseCase, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Play - runs a game until it is over and returns its result.
func (that *Console) Play(ctx context.Context) (entity.Result, error) {
	log := that.logger.With("method", "Play")

	that.printf("Welcome to KnuckleBones!\n")

	game, err := that.game.NewGame(ctx)
	if err != nil {
		return entity.ResultNotOver, fmt.Errorf("failed to start game: %w", err)
	}

	log = log.With("gameID", game.ID)

	for {
		if err = ctx.Err(); err != nil {
			return entity.ResultNotOver, fmt.Errorf("game interrupted: %w", err)
		}

		renderGame(that.out, game)

		game, err = that.game.RollDice(ctx)
		if err != nil {
			return entity.ResultNotOver, fmt.Errorf("failed to roll dice: %w", err)
		}

		that.printf("Player %d rolled a %d.\n", game.CurrentPlayer+1, game.PendingDice)
		that.printf("Enter the column number to place your piece: \n")

		column, err := that.readColumn()
		if errors.Is(err, ErrInputClosed) {
			return entity.ResultNotOver, err
		}

		if err != nil {
			log.Debug("rejected input", "error", err)
			that.printf("Invalid input. Try again.\n")
			continue
		}

		game, err = that.game.MakeTurn(ctx, column)
		if errors.Is(err, apperror.ErrInvalidColumn) || errors.Is(err, apperror.ErrColumnFull) {
			that.printf("Invalid move. Try again.\n")
			continue
		}

		if err != nil {
			return entity.ResultNotOver, fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsFinished() {
			renderGame(that.out, game)
			that.announce(game.Result)

			return game.Result, nil
		}
	}
}

// readColumn - reads one line of any length. A last line without a newline still counts.
func (that *Console) readColumn() (int, error) {
	line, err := that.in.ReadString('\n')
	if line == "" && err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrInputClosed
		}

		return 0, fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	column, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("failed to parse column: %w", err)
	}

	return column, nil
}

func (that *Console) announce(result entity.Result) {
	that.printf("\n")

	switch result {
	case entity.ResultPlayer0Win, entity.ResultPlayer1Win:
		that.printf("Player %d wins!\n", result.Winner()+1)
	default:
		that.printf("Draw!\n")
	}
}

func (that *Console) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
