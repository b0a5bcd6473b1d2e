package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Cell is one rendered button read back from the platform message.
type Cell struct {
	ActionID string
	Mark     entity.Mark
}

// Reconstruct - rebuilds the board from the rendered cells and, when clicked is set,
// places the mark of whoever is next to move on the pre-click board.
func Reconstruct(cells []Cell, clicked *entity.Coord) (entity.Board, error) {
	board, err := ReadBoard(cells)
	if err != nil {
		return board, err
	}

	if clicked == nil {
		return board, nil
	}

	return Apply(board, *clicked)
}

// ReadBoard - assembles the rendered cells into a board. Cells that are not rendered stay empty.
func ReadBoard(cells []Cell) (entity.Board, error) {
	var board entity.Board

	if len(cells) == 0 {
		return board, fmt.Errorf("%w: no rendered grid", apperror.ErrMissingContext)
	}

	seen := make(map[entity.Coord]struct{}, len(cells))
	for _, cell := range cells {
		action, err := ParseAction(cell.ActionID)
		if err != nil {
			return entity.Board{}, fmt.Errorf("failed to read rendered cell: %w", err)
		}

		if action.Remove {
			continue
		}

		if _, ok := seen[action.Coord]; ok {
			return entity.Board{}, fmt.Errorf("%w: cell %s is rendered twice", apperror.ErrParse, action.Coord)
		}
		seen[action.Coord] = struct{}{}

		board = board.With(action.Coord, cell.Mark)
	}

	if err := validateBoard(board); err != nil {
		return entity.Board{}, err
	}

	return board, nil
}

// Apply - places the next mover's mark on an empty cell. The mover is derived from the board, never asserted.
func Apply(board entity.Board, coord entity.Coord) (entity.Board, error) {
	if board.Get(coord) != entity.MarkEmpty {
		return board, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, coord)
	}

	return board.With(coord, board.NextToMove().Mark()), nil
}

// validateBoard - X opens, so there are as many X as O or exactly one more.
func validateBoard(board entity.Board) error {
	diff := board.Count(entity.MarkX) - board.Count(entity.MarkO)
	if diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X against %d O", apperror.ErrInvalidBoard,
			board.Count(entity.MarkX), board.Count(entity.MarkO))
	}
	return nil
}
