package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	RemoveLabel = "Remove"
	TieText     = "The game is a tie"
)

// Button describes one rendered button.
type Button struct {
	ActionID    string
	Glyph       string
	Label       string
	Disabled    bool
	Highlighted bool
}

// Grid is the rendered game: three rows of cells and the remove control.
type Grid struct {
	Cells   [][]Button
	Control Button
}

// Render - builds the grid for a board. Occupied cells are disabled, every cell is
// disabled once the game is decided, and the winning line is highlighted.
func Render(board entity.Board, outcome entity.Outcome) Grid {
	cells := make([][]Button, 0, len(entity.Rows))
	for _, row := range entity.Rows {
		buttons := make([]Button, 0, len(entity.Columns))
		for _, column := range entity.Columns {
			coord := entity.Coord{Row: row, Column: column}
			mark := board.Get(coord)

			buttons = append(buttons, Button{
				ActionID:    ActionID(coord),
				Glyph:       mark.Glyph(),
				Disabled:    mark != entity.MarkEmpty || !outcome.IsNone(),
				Highlighted: outcome.Contains(coord),
			})
		}
		cells = append(cells, buttons)
	}

	return Grid{
		Cells: cells,
		Control: Button{
			ActionID: RemoveActionID,
			Label:    RemoveLabel,
		},
	}
}

// Buttons - the cell buttons in display order.
func (that Grid) Buttons() []Button {
	buttons := make([]Button, 0, 9)
	for _, row := range that.Cells {
		buttons = append(buttons, row...)
	}
	return buttons
}

// Mention - the platform markup that pings a user.
func Mention(user string) string {
	return fmt.Sprintf("<@%s>", user)
}

// ChallengeText - the first line of a game message. It is kept verbatim on every re-render.
func ChallengeText(opponent string) string {
	return Mention(opponent) + " has been challenged to TicTacToe!"
}

// StatusText - whose turn it is, the tie message, or the winner.
func StatusText(board entity.Board, outcome entity.Outcome, players Players) string {
	switch {
	case outcome.IsTie():
		return TieText
	case outcome.IsLine():
		// the turn already advanced past the player who completed the line
		winner, _ := Winner(board, outcome)
		return fmt.Sprintf("%s %s is the winner!", winner.Mark().Glyph(), Mention(players.User(winner)))
	default:
		next := board.NextToMove()
		return fmt.Sprintf("%s %s's turn", next.Mark().Glyph(), Mention(players.User(next)))
	}
}
