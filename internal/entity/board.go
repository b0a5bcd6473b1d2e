package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const (
	GlyphX     = "❌"
	GlyphO     = "⭕"
	GlyphEmpty = "⬛"
)

type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "-"
	}
}

// Glyph - the symbol rendered on a button for this mark.
func (that Mark) Glyph() string {
	switch that {
	case MarkX:
		return GlyphX
	case MarkO:
		return GlyphO
	default:
		return GlyphEmpty
	}
}

// ParseGlyph - maps a rendered symbol back to its mark by exact equality.
func ParseGlyph(glyph string) (Mark, error) {
	switch glyph {
	case GlyphX:
		return MarkX, nil
	case GlyphO:
		return MarkO, nil
	case GlyphEmpty:
		return MarkEmpty, nil
	default:
		return MarkEmpty, fmt.Errorf("%w: unknown glyph %q", apperror.ErrParse, glyph)
	}
}

// Role - the part a user plays in a game.
type Role int

const (
	// RoleOpponent is the challenged user. Opponents move first.
	RoleOpponent Role = iota
	// RoleChallenger is the user who started the game.
	RoleChallenger
)

func (that Role) String() string {
	if that == RoleChallenger {
		return "challenger"
	}
	return "opponent"
}

// Mark - Opponent plays X, Challenger plays O.
func (that Role) Mark() Mark {
	if that == RoleChallenger {
		return MarkO
	}
	return MarkX
}

func (that Role) Other() Role {
	if that == RoleChallenger {
		return RoleOpponent
	}
	return RoleChallenger
}

// RoleOf - the role playing the given mark. Empty has no role.
func RoleOf(mark Mark) (Role, bool) {
	switch mark {
	case MarkX:
		return RoleOpponent, true
	case MarkO:
		return RoleChallenger, true
	default:
		return RoleOpponent, false
	}
}

// Board holds a mark for each of the nine cells. The zero value is an empty board.
type Board [9]Mark

func (that Board) Get(coord Coord) Mark {
	if !coord.valid() {
		return MarkEmpty
	}
	return that[coord.index()]
}

// With - returns a copy of the board with coord set to mark.
func (that Board) With(coord Coord, mark Mark) Board {
	if coord.valid() {
		that[coord.index()] = mark
	}
	return that
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}
	return count
}

// Occupied - number of non-empty cells.
func (that Board) Occupied() int {
	return len(that) - that.Count(MarkEmpty)
}

func (that Board) IsFull() bool {
	return that.Count(MarkEmpty) == 0
}

// NextToMove - whose turn it is. The Opponent moves on an even number of occupied cells.
func (that Board) NextToMove() Role {
	if that.Occupied()%2 == 0 {
		return RoleOpponent
	}
	return RoleChallenger
}
