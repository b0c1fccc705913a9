package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrGameNotOver   = errors.New("game is not over yet")
	ErrInvalidColumn = errors.New("invalid column index")
	ErrColumnFull    = errors.New("column is already full")
	ErrInvalidPlayer = errors.New("invalid player index")
	ErrInvalidDice   = errors.New("invalid dice value")
	ErrNoDiceRolled  = errors.New("dice is not rolled yet")
)
