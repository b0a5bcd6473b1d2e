package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

// CoordSeparator - separates the column and row names in a coordinate token.
const CoordSeparator = "_"

type Row int

const (
	RowTop Row = iota
	RowMiddle
	RowBottom
)

type Column int

const (
	ColumnLeft Column = iota
	ColumnCenter
	ColumnRight
)

var (
	Rows    = [3]Row{RowTop, RowMiddle, RowBottom}
	Columns = [3]Column{ColumnLeft, ColumnCenter, ColumnRight}

	rowNames    = [3]string{"top", "middle", "bottom"}
	columnNames = [3]string{"left", "center", "right"}
)

func (that Row) String() string {
	if that < RowTop || that > RowBottom {
		return fmt.Sprintf("Row(%d)", int(that))
	}
	return rowNames[that]
}

func (that Column) String() string {
	if that < ColumnLeft || that > ColumnRight {
		return fmt.Sprintf("Column(%d)", int(that))
	}
	return columnNames[that]
}

// ParseRow - exact, case-sensitive match against the row names.
func ParseRow(value string) (Row, error) {
	for i, name := range rowNames {
		if name == value {
			return Row(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown row %q", apperror.ErrParse, value)
}

// ParseColumn - exact, case-sensitive match against the column names.
func ParseColumn(value string) (Column, error) {
	for i, name := range columnNames {
		if name == value {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown column %q", apperror.ErrParse, value)
}

// Coord identifies one cell of the 3x3 grid.
type Coord struct {
	Row    Row
	Column Column
}

// AllCoords - returns the nine cells in display order: rows top to bottom, columns left to right.
func AllCoords() []Coord {
	coords := make([]Coord, 0, len(Rows)*len(Columns))
	for _, row := range Rows {
		for _, column := range Columns {
			coords = append(coords, Coord{Row: row, Column: column})
		}
	}
	return coords
}

// String - encodes the coordinate as "<column>_<row>".
func (that Coord) String() string {
	return that.Column.String() + CoordSeparator + that.Row.String()
}

func (that Coord) valid() bool {
	return that.Row >= RowTop && that.Row <= RowBottom &&
		that.Column >= ColumnLeft && that.Column <= ColumnRight
}

// index - position of the cell in a row-major board array.
func (that Coord) index() int {
	return int(that.Row)*len(Columns) + int(that.Column)
}

// ParseCoord - decodes a "<column>_<row>" token.
func ParseCoord(token string) (Coord, error) {
	column, row, found := strings.Cut(token, CoordSeparator)
	if !found {
		return Coord{}, fmt.Errorf("%w: coordinate %q has no %q", apperror.ErrParse, token, CoordSeparator)
	}

	c, err := ParseColumn(column)
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: %w", token, err)
	}

	r, err := ParseRow(row)
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: %w", token, err)
	}

	return Coord{Row: r, Column: c}, nil
}
