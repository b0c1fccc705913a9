package entity

import "fmt"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

type Result int

const (
	ResultNotOver Result = iota
	ResultPlayer0Win
	ResultPlayer1Win
	ResultDraw
)

func (that Result) String() string {
	switch that {
	case ResultPlayer0Win:
		return "player0_win"
	case ResultPlayer1Win:
		return "player1_win"
	case ResultDraw:
		return "draw"
	default:
		return "not_over"
	}
}

func (that Result) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Result) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_over":
		*that = ResultNotOver
	case "player0_win":
		*that = ResultPlayer0Win
	case "player1_win":
		*that = ResultPlayer1Win
	case "draw":
		*that = ResultDraw
	default:
		return fmt.Errorf("unknown game result %q", text)
	}

	return nil
}

// Winner returns the winning player index, or -1 for a draw or an unfinished game.
func (that Result) Winner() int {
	switch that {
	case ResultPlayer0Win:
		return 0
	case ResultPlayer1Win:
		return 1
	default:
		return -1
	}
}

// CompareScores maps two final scores onto a result.
func CompareScores(player0, player1 int) Result {
	switch {
	case player0 > player1:
		return ResultPlayer0Win
	case player0 < player1:
		return ResultPlayer1Win
	default:
		return ResultDraw
	}
}

// Game is a read-only view of a game handed to the presentation layer.
type Game struct {
	ID            string           `json:"id,omitempty"`
	Status        string           `json:"status"`
	Turn          int              `json:"turn"`
	CurrentPlayer int              `json:"current_player"`
	Boards        [PlayerNum]Board `json:"boards"`
	Scores        [PlayerNum]int   `json:"scores"`
	PendingDice   int              `json:"pending_dice,omitempty"`
	Result        Result           `json:"result"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
