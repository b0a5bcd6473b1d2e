package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// boardOf - builds a board from three rows written as "X", "O" and "-".
func boardOf(t *testing.T, rows ...string) entity.Board {
	t.Helper()
	require.Len(t, rows, 3)

	var board entity.Board
	for i, row := range rows {
		require.Len(t, row, 3)
		for j, symbol := range row {
			coord := entity.Coord{Row: entity.Rows[i], Column: entity.Columns[j]}
			switch symbol {
			case 'X':
				board = board.With(coord, entity.MarkX)
			case 'O':
				board = board.With(coord, entity.MarkO)
			case '-':
			default:
				t.Fatalf("unknown symbol %q", symbol)
			}
		}
	}

	return board
}

// cellsOf - renders the board and reads the buttons back the way the platform adapter does.
func cellsOf(t *testing.T, board entity.Board) []Cell {
	t.Helper()

	grid := Render(board, Evaluate(board))
	cells := make([]Cell, 0, 10)
	for _, button := range grid.Buttons() {
		mark, err := entity.ParseGlyph(button.Glyph)
		require.NoError(t, err)
		cells = append(cells, Cell{ActionID: button.ActionID, Mark: mark})
	}

	return append(cells, Cell{ActionID: grid.Control.ActionID})
}

func coordOf(row entity.Row, column entity.Column) entity.Coord {
	return entity.Coord{Row: row, Column: column}
}
