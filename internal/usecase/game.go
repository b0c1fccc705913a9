package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/knucklebones-backend/internal/apperror"
	"github.com/rocketscienceinc/knucklebones-backend/internal/entity"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context) *entity.Game

	RollDice(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, column int) (*entity.Game, error)
}

type gameEngine interface {
	Reset()
	RollDice() int
	PutDice(player, value, column int) (int, error)
	CurrentPlayer() int
	Snapshot() entity.Game
}

type gameUseCase struct {
	logger *slog.Logger

	mu          sync.Mutex
	engine      gameEngine
	gameID      string
	pendingDice int
}

func NewGameUseCase(logger *slog.Logger, engine gameEngine) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game"),
		engine: engine,
	}
}

// NewGame - discards the current game and starts a fresh one.
func (that *gameUseCase) NewGame(_ context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.engine.Reset()
	that.gameID = uuid.NewString()
	that.pendingDice = 0

	game := that.snapshot()

	that.logger.Info("game started", "gameID", game.ID, "player", game.CurrentPlayer)

	return game, nil
}

func (that *gameUseCase) GetGame(_ context.Context) *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

// RollDice - rolls for the current player. A roll that was not placed yet is kept.
func (that *gameUseCase) RollDice(_ context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := that.snapshot()
	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	if that.pendingDice == 0 {
		that.pendingDice = that.engine.RollDice()
		game.PendingDice = that.pendingDice

		that.logger.Debug("dice rolled", "gameID", that.gameID, "player", game.CurrentPlayer, "dice", that.pendingDice)
	}

	return game, nil
}

// MakeTurn - places the rolled dice into column for the current player.
// A rejected move keeps the roll so the player can choose another column.
func (that *gameUseCase) MakeTurn(_ context.Context, column int) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeTurn", "gameID", that.gameID)

	if that.pendingDice == 0 {
		return that.snapshot(), apperror.ErrNoDiceRolled
	}

	player := that.engine.CurrentPlayer()

	removed, err := that.engine.PutDice(player, that.pendingDice, column)
	if err != nil {
		return that.snapshot(), fmt.Errorf("failed to make turn: %w", err)
	}

	dice := that.pendingDice
	that.pendingDice = 0

	game := that.snapshot()

	if removed > 0 {
		log.Info("opponent dice removed", "player", entity.Opponent(player), "column", column, "dice", dice, "count", removed)
	}

	log.Debug("player made a turn", "player", player, "column", column, "dice", dice)

	if game.IsFinished() {
		log.Info("game finished", "result", game.Result.String(), "score0", game.Scores[0], "score1", game.Scores[1])
	}

	return game, nil
}

func (that *gameUseCase) snapshot() *entity.Game {
	game := that.engine.Snapshot()
	game.ID = that.gameID
	game.PendingDice = that.pendingDice

	return &game
}
