package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

func TestRender(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// When: rendering an empty board
		grid := Render(entity.Board{}, entity.Outcome{})

		// Then: nine empty, enabled, plain cells in display order
		require.Len(t, grid.Cells, 3)
		buttons := grid.Buttons()
		require.Len(t, buttons, 9)
		for i, coord := range entity.AllCoords() {
			assert.Equal(t, ActionID(coord), buttons[i].ActionID)
			assert.Equal(t, entity.GlyphEmpty, buttons[i].Glyph)
			assert.False(t, buttons[i].Disabled)
			assert.False(t, buttons[i].Highlighted)
		}

		// Then: the remove control is enabled
		assert.Equal(t, RemoveActionID, grid.Control.ActionID)
		assert.Equal(t, RemoveLabel, grid.Control.Label)
		assert.False(t, grid.Control.Disabled)
	})

	t.Run("Occupied cells are disabled while the game runs", func(t *testing.T) {
		// Given: an ongoing game
		board := boardOf(t,
			"X--",
			"-O-",
			"---",
		)

		// When: rendering
		grid := Render(board, Evaluate(board))

		// Then: exactly the occupied cells are disabled
		for i, coord := range entity.AllCoords() {
			button := grid.Buttons()[i]
			assert.Equal(t, board.Get(coord) != entity.MarkEmpty, button.Disabled, "cell %s", coord)
			assert.Equal(t, board.Get(coord).Glyph(), button.Glyph)
			assert.False(t, button.Highlighted)
		}
	})

	t.Run("Winning line is highlighted and the grid is disabled", func(t *testing.T) {
		// Given: X completed the right column
		board := boardOf(t,
			"OOX",
			"--X",
			"--X",
		)
		outcome := Evaluate(board)
		require.Equal(t, entity.ColumnOutcome(entity.ColumnRight), outcome)

		// When: rendering
		grid := Render(board, outcome)

		// Then: every cell is disabled and only the line is highlighted
		for i, coord := range entity.AllCoords() {
			button := grid.Buttons()[i]
			assert.True(t, button.Disabled, "cell %s", coord)
			assert.Equal(t, coord.Column == entity.ColumnRight, button.Highlighted, "cell %s", coord)
		}
		assert.False(t, grid.Control.Disabled)
	})

	t.Run("Diagonal highlight", func(t *testing.T) {
		board := boardOf(t,
			"XO-",
			"OX-",
			"--X",
		)

		grid := Render(board, Evaluate(board))

		highlighted := make([]entity.Coord, 0, 3)
		for i, coord := range entity.AllCoords() {
			if grid.Buttons()[i].Highlighted {
				highlighted = append(highlighted, coord)
			}
		}
		assert.ElementsMatch(t, entity.DiagonalOutcome(entity.DiagonalTopLeftToBottomRight).Cells(), highlighted)
	})

	t.Run("Tie highlights nothing", func(t *testing.T) {
		board := boardOf(t,
			"XOX",
			"XOO",
			"OXX",
		)

		grid := Render(board, Evaluate(board))

		for _, button := range grid.Buttons() {
			assert.True(t, button.Disabled)
			assert.False(t, button.Highlighted)
		}
	})
}

func TestStatusText(t *testing.T) {
	players := Players{Challenger: challengerID, Opponent: opponentID}

	t.Run("Opponent's turn on an empty board", func(t *testing.T) {
		text := StatusText(entity.Board{}, entity.Outcome{}, players)

		assert.Equal(t, "❌ <@200>'s turn", text)
	})

	t.Run("Challenger's turn", func(t *testing.T) {
		board := boardOf(t,
			"X--",
			"---",
			"---",
		)

		assert.Equal(t, "⭕ <@100>'s turn", StatusText(board, Evaluate(board), players))
	})

	t.Run("Winner is the player who completed the line", func(t *testing.T) {
		// Given: X completed the top row, so the turn parity now points at the challenger
		board := boardOf(t,
			"XXX",
			"OO-",
			"---",
		)

		// When: rendering the status
		text := StatusText(board, Evaluate(board), players)

		// Then: the opponent playing X is the winner
		assert.Equal(t, "❌ <@200> is the winner!", text)
	})

	t.Run("Tie", func(t *testing.T) {
		board := boardOf(t,
			"XOX",
			"XOO",
			"OXX",
		)

		assert.Equal(t, TieText, StatusText(board, Evaluate(board), players))
	})
}
