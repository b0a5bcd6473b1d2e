package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Cells(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    []Coord
	}{
		{
			name:    "Column",
			outcome: ColumnOutcome(ColumnCenter),
			want:    []Coord{{RowTop, ColumnCenter}, {RowMiddle, ColumnCenter}, {RowBottom, ColumnCenter}},
		},
		{
			name:    "Row",
			outcome: RowOutcome(RowBottom),
			want:    []Coord{{RowBottom, ColumnLeft}, {RowBottom, ColumnCenter}, {RowBottom, ColumnRight}},
		},
		{
			name:    "Falling diagonal",
			outcome: DiagonalOutcome(DiagonalTopLeftToBottomRight),
			want:    []Coord{{RowTop, ColumnLeft}, {RowMiddle, ColumnCenter}, {RowBottom, ColumnRight}},
		},
		{
			name:    "Rising diagonal",
			outcome: DiagonalOutcome(DiagonalBottomLeftToTopRight),
			want:    []Coord{{RowBottom, ColumnLeft}, {RowMiddle, ColumnCenter}, {RowTop, ColumnRight}},
		},
		{
			name:    "Tie has no line",
			outcome: TieOutcome(),
			want:    nil,
		},
		{
			name:    "None has no line",
			outcome: Outcome{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Cells())
		})
	}
}

func TestOutcome_Contains(t *testing.T) {
	// Given: a win on the rising diagonal
	outcome := DiagonalOutcome(DiagonalBottomLeftToTopRight)

	// Then: only its three cells are on the line
	assert.True(t, outcome.Contains(Coord{RowTop, ColumnRight}))
	assert.True(t, outcome.Contains(Coord{RowMiddle, ColumnCenter}))
	assert.False(t, outcome.Contains(Coord{RowTop, ColumnLeft}))

	assert.False(t, TieOutcome().Contains(Coord{RowMiddle, ColumnCenter}))
}

func TestOutcome_Kind(t *testing.T) {
	assert.True(t, Outcome{}.IsNone())
	assert.True(t, RowOutcome(RowTop).IsLine())
	assert.True(t, TieOutcome().IsTie())

	assert.Equal(t, "row top", RowOutcome(RowTop).String())
	assert.Equal(t, "column left", ColumnOutcome(ColumnLeft).String())
	assert.Equal(t, "tie", TieOutcome().String())
	assert.Equal(t, "none", Outcome{}.String())
}
