package knucklebones

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rocketscienceinc/knucklebones-backend/internal/apperror"
	"github.com/rocketscienceinc/knucklebones-backend/internal/entity"
)

// Engine owns the boards, turn state and dice generator of a single game.
// All methods are safe for concurrent use; a placement, the removal on the
// opponent's board and the turn advance are applied under one lock.
type Engine struct {
	mu sync.RWMutex

	rng *rand.Rand

	boards        [entity.PlayerNum]entity.Board
	currentPlayer int
	turn          int
}

type Option func(*Engine)

// WithSeed makes dice rolls and the starting player reproducible.
func WithSeed(seed uint64) Option {
	return func(that *Engine) {
		that.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

func WithSource(src rand.Source) Option {
	return func(that *Engine) {
		that.rng = rand.New(src)
	}
}

// New creates an engine with a fresh game already started.
func New(opts ...Option) *Engine {
	engine := &Engine{}
	for _, opt := range opts {
		opt(engine)
	}

	if engine.rng == nil {
		seed := uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
		engine.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	engine.Reset()

	return engine
}

// Reset clears both boards, sets the turn to 1 and picks the starting player at random.
func (that *Engine) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.boards = [entity.PlayerNum]entity.Board{}
	that.turn = 1
	that.currentPlayer = that.rng.IntN(entity.PlayerNum)
}

// RollDice returns a value in [entity.DiceMin, entity.DiceMax].
func (that *Engine) RollDice() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.DiceMin + that.rng.IntN(entity.DiceMax-entity.DiceMin+1)
}

// PutDice drops value into column on player's board, removes every die of the
// same value from the opponent's column and passes the turn. It returns how many
// opponent dice were removed. On error nothing changes.
func (that *Engine) PutDice(player, value, column int) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.isGameOver() {
		return 0, apperror.ErrGameFinished
	}

	if err := validateMove(player, value, column); err != nil {
		return 0, fmt.Errorf("invalid move: %w", err)
	}

	if !that.boards[player][column].Push(value) {
		return 0, fmt.Errorf("invalid move: %w: column %d", apperror.ErrColumnFull, column)
	}

	removed := that.boards[entity.Opponent(player)][column].RemoveValue(value)

	that.currentPlayer = entity.Opponent(that.currentPlayer)
	that.turn++

	return removed, nil
}

// validateMove - checks the move arguments are in range.
func validateMove(player, value, column int) error {
	if !entity.IsValidPlayer(player) {
		return fmt.Errorf("%w: player %d", apperror.ErrInvalidPlayer, player)
	}

	if !entity.IsValidDice(value) {
		return fmt.Errorf("%w: dice %d", apperror.ErrInvalidDice, value)
	}

	if !entity.IsValidColumn(column) {
		return fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	return nil
}

func (that *Engine) DiceCount(player int) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !entity.IsValidPlayer(player) {
		return 0
	}

	return that.boards[player].DiceCount()
}

func (that *Engine) ColumnScore(player, column int) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !entity.IsValidPlayer(player) || !entity.IsValidColumn(column) {
		return 0
	}

	return that.boards[player][column].Score()
}

func (that *Engine) PlayerScore(player int) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !entity.IsValidPlayer(player) {
		return 0
	}

	return that.boards[player].Score()
}

// IsGameOver reports whether either board is completely filled.
func (that *Engine) IsGameOver() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.isGameOver()
}

// Winner compares the final scores. Before the game is over it returns
// entity.ResultNotOver together with apperror.ErrGameNotOver.
func (that *Engine) Winner() (entity.Result, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !that.isGameOver() {
		return entity.ResultNotOver, apperror.ErrGameNotOver
	}

	return that.result(), nil
}

func (that *Engine) Turn() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.turn
}

func (that *Engine) CurrentPlayer() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.currentPlayer
}

// Cell returns the cell at the given position; out of range positions read as empty.
func (that *Engine) Cell(player, column, depth int) entity.Cell {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !entity.IsValidPlayer(player) || !entity.IsValidColumn(column) || depth < 0 || depth >= entity.BoardDepth {
		return entity.Cell{}
	}

	return that.boards[player][column][depth]
}

// Board returns a copy of the player's board.
func (that *Engine) Board(player int) entity.Board {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !entity.IsValidPlayer(player) {
		return entity.Board{}
	}

	return that.boards[player]
}

// Snapshot returns a consistent view of the whole game.
func (that *Engine) Snapshot() entity.Game {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game := entity.Game{
		Status:        entity.StatusOngoing,
		Turn:          that.turn,
		CurrentPlayer: that.currentPlayer,
		Boards:        that.boards,
		Result:        entity.ResultNotOver,
	}

	for player := range that.boards {
		game.Scores[player] = that.boards[player].Score()
	}

	if that.isGameOver() {
		game.Status = entity.StatusFinished
		game.Result = that.result()
	}

	return game
}

func (that *Engine) isGameOver() bool {
	for player := range that.boards {
		if that.boards[player].IsFull() {
			return true
		}
	}

	return false
}

func (that *Engine) result() entity.Result {
	return entity.CompareScores(that.boards[0].Score(), that.boards[1].Score())
}
