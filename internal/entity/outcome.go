package entity

import "fmt"

type OutcomeKind int

const (
	// OutcomeNone - the game continues.
	OutcomeNone OutcomeKind = iota
	OutcomeLine
	OutcomeTie
)

type Orientation int

const (
	OrientationColumn Orientation = iota
	OrientationRow
	OrientationDiagonal
)

func (that Orientation) String() string {
	switch that {
	case OrientationColumn:
		return "column"
	case OrientationRow:
		return "row"
	default:
		return "diagonal"
	}
}

type Diagonal int

const (
	DiagonalTopLeftToBottomRight Diagonal = iota
	DiagonalBottomLeftToTopRight
)

var Diagonals = [2]Diagonal{DiagonalTopLeftToBottomRight, DiagonalBottomLeftToTopRight}

func (that Diagonal) String() string {
	if that == DiagonalBottomLeftToTopRight {
		return "bottom-left to top-right"
	}
	return "top-left to bottom-right"
}

// Outcome classifies a board. Index is a Column, Row or Diagonal depending on Orientation.
type Outcome struct {
	Kind        OutcomeKind
	Orientation Orientation
	Index       int
}

func ColumnOutcome(column Column) Outcome {
	return Outcome{Kind: OutcomeLine, Orientation: OrientationColumn, Index: int(column)}
}

func RowOutcome(row Row) Outcome {
	return Outcome{Kind: OutcomeLine, Orientation: OrientationRow, Index: int(row)}
}

func DiagonalOutcome(diagonal Diagonal) Outcome {
	return Outcome{Kind: OutcomeLine, Orientation: OrientationDiagonal, Index: int(diagonal)}
}

func TieOutcome() Outcome {
	return Outcome{Kind: OutcomeTie}
}

func (that Outcome) IsNone() bool {
	return that.Kind == OutcomeNone
}

func (that Outcome) IsLine() bool {
	return that.Kind == OutcomeLine
}

func (that Outcome) IsTie() bool {
	return that.Kind == OutcomeTie
}

// Cells - the three cells of a winning line, nil for any other outcome.
func (that Outcome) Cells() []Coord {
	if !that.IsLine() {
		return nil
	}

	switch that.Orientation {
	case OrientationColumn:
		column := Column(that.Index)
		return []Coord{{RowTop, column}, {RowMiddle, column}, {RowBottom, column}}
	case OrientationRow:
		row := Row(that.Index)
		return []Coord{{row, ColumnLeft}, {row, ColumnCenter}, {row, ColumnRight}}
	default:
		if Diagonal(that.Index) == DiagonalBottomLeftToTopRight {
			return []Coord{{RowBottom, ColumnLeft}, {RowMiddle, ColumnCenter}, {RowTop, ColumnRight}}
		}
		return []Coord{{RowTop, ColumnLeft}, {RowMiddle, ColumnCenter}, {RowBottom, ColumnRight}}
	}
}

// Contains - reports whether coord lies on the winning line.
func (that Outcome) Contains(coord Coord) bool {
	for _, cell := range that.Cells() {
		if cell == coord {
			return true
		}
	}
	return false
}

func (that Outcome) String() string {
	switch that.Kind {
	case OutcomeTie:
		return "tie"
	case OutcomeLine:
		switch that.Orientation {
		case OrientationColumn:
			return fmt.Sprintf("column %s", Column(that.Index))
		case OrientationRow:
			return fmt.Sprintf("row %s", Row(that.Index))
		default:
			return fmt.Sprintf("diagonal %s", Diagonal(that.Index))
		}
	default:
		return "none"
	}
}
