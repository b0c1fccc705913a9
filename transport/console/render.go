package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/knucklebones-backend/internal/entity"
)

const separator = "========================================="

// renderGame writes both boards side by side, depth 0 on the top row.
func renderGame(out io.Writer, game *entity.Game) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Turn: %d Player: %d\n", game.Turn, game.CurrentPlayer+1)
	sb.WriteString(separator + "\n")
	for player := range entity.PlayerNum {
		fmt.Fprintf(&sb, "Player%d Score: %d\n", player+1, game.Scores[player])
	}
	sb.WriteString(separator + "\n")

	sb.WriteString(" Player 1  | Player 2\n")
	sb.WriteString("===========|===========\n")
	sb.WriteString(" 0 | 1 | 2 | 0 | 1 | 2 \n")
	sb.WriteString("===========|===========\n")

	for depth := range entity.BoardDepth {
		sb.WriteString(" ")
		for player := range entity.PlayerNum {
			for column := range entity.BoardWidth {
				sb.WriteString(game.Boards[player][column][depth].String())
				sb.WriteString(" | ")
			}
		}
		sb.WriteString("\n")
	}

	_, _ = io.WriteString(out, sb.String())
}
