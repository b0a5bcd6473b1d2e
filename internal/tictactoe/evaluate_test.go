package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

func TestEvaluate_EveryLine(t *testing.T) {
	require.Len(t, WinLines, 8)

	for _, line := range WinLines {
		for _, mark := range []entity.Mark{entity.MarkX, entity.MarkO} {
			t.Run(line.String()+" "+mark.String(), func(t *testing.T) {
				// Given: a board where only this line is marked
				var board entity.Board
				for _, cell := range line.Cells() {
					board = board.With(cell, mark)
				}

				// When: evaluating the board
				outcome := Evaluate(board)

				// Then: exactly this line is reported
				assert.Equal(t, line, outcome)
			})
		}
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("Top row of X", func(t *testing.T) {
		// Given: the top row filled with X
		board := boardOf(t,
			"XXX",
			"---",
			"---",
		)

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the top row wins
		assert.Equal(t, entity.RowOutcome(entity.RowTop), outcome)
	})

	t.Run("Bottom-left to top-right diagonal", func(t *testing.T) {
		board := boardOf(t,
			"XOO",
			"XO-",
			"OXX",
		)

		assert.Equal(t, entity.DiagonalOutcome(entity.DiagonalBottomLeftToTopRight), Evaluate(board))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a line
		board := boardOf(t,
			"XOX",
			"XOO",
			"OXX",
		)

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is a tie
		assert.True(t, outcome.IsTie())
	})

	t.Run("Full board with a line is not a tie", func(t *testing.T) {
		board := boardOf(t,
			"XXX",
			"OOX",
			"XOO",
		)

		assert.Equal(t, entity.RowOutcome(entity.RowTop), Evaluate(board))
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board with empty cells and no line
		board := boardOf(t,
			"XO-",
			"-X-",
			"--O",
		)

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game continues
		assert.True(t, outcome.IsNone())
	})

	t.Run("Empty board", func(t *testing.T) {
		assert.True(t, Evaluate(entity.Board{}).IsNone())
	})

	t.Run("Columns are scanned before rows", func(t *testing.T) {
		// Given: a crafted board completing the left column and the top row
		board := boardOf(t,
			"XXX",
			"X--",
			"X--",
		)

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the column is reported
		assert.Equal(t, entity.ColumnOutcome(entity.ColumnLeft), outcome)
	})

	t.Run("Rows are scanned before diagonals", func(t *testing.T) {
		board := boardOf(t,
			"OOO",
			"-O-",
			"--O",
		)

		assert.Equal(t, entity.RowOutcome(entity.RowTop), Evaluate(board))
	})
}

func TestEvaluate_NeverTieWithEmptyCell(t *testing.T) {
	// Given: a tied board
	full := boardOf(t,
		"XOX",
		"XOO",
		"OXX",
	)

	for _, coord := range entity.AllCoords() {
		// When: any single cell is emptied
		board := full.With(coord, entity.MarkEmpty)

		// Then: the board is no longer a tie
		assert.False(t, Evaluate(board).IsTie(), "emptied %s", coord)
	}
}

func TestWinner(t *testing.T) {
	board := boardOf(t,
		"XX-",
		"OOO",
		"X--",
	)

	winner, ok := Winner(board, Evaluate(board))

	require.True(t, ok)
	assert.Equal(t, entity.RoleChallenger, winner)

	_, ok = Winner(board, entity.TieOutcome())
	assert.False(t, ok)
}
