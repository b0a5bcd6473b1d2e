package tictactoe

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

// WinLines - every winning line in scan order: columns, then rows, then diagonals.
var WinLines = func() []entity.Outcome {
	lines := make([]entity.Outcome, 0, 8)
	for _, column := range entity.Columns {
		lines = append(lines, entity.ColumnOutcome(column))
	}
	for _, row := range entity.Rows {
		lines = append(lines, entity.RowOutcome(row))
	}
	for _, diagonal := range entity.Diagonals {
		lines = append(lines, entity.DiagonalOutcome(diagonal))
	}
	return lines
}()

// Evaluate - classifies the board. The first completed line in scan order wins, so a
// crafted board with several completed lines still gets a reproducible answer.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range WinLines {
		if isComplete(board, line.Cells()) {
			return line
		}
	}

	if board.IsFull() {
		return entity.TieOutcome()
	}

	return entity.Outcome{}
}

// Winner - the role owning the marks of a winning line.
func Winner(board entity.Board, outcome entity.Outcome) (entity.Role, bool) {
	cells := outcome.Cells()
	if len(cells) == 0 {
		return entity.RoleOpponent, false
	}
	return entity.RoleOf(board.Get(cells[0]))
}

func isComplete(board entity.Board, cells []entity.Coord) bool {
	first := board.Get(cells[0])
	if first == entity.MarkEmpty {
		return false
	}

	for _, cell := range cells[1:] {
		if board.Get(cell) != first {
			return false
		}
	}

	return true
}
