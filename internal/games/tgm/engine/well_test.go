package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(w *Well, r int, except ...int) {
	for c := 0; c < WellCols; c++ {
		w[r][c] = PieceJ
	}
	for _, c := range except {
		w[r][c] = PieceNone
	}
}

// filterAndPad is the reference compaction: drop the rows, pad the top.
func filterAndPad(w Well, rows RowSet) Well {
	var out Well
	dst := 0
	for r := 0; r < WellRows; r++ {
		if rows.Has(r) {
			continue
		}
		out[dst] = w[r]
		dst++
	}
	return out
}

func TestCompactMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for trial := 0; trial < 500; trial++ {
		var w Well
		for r := 0; r < WellRows; r++ {
			for c := 0; c < WellCols; c++ {
				if rng.IntN(3) == 0 {
					w[r][c] = AllPieces[rng.IntN(len(AllPieces))]
				}
			}
		}

		var rows RowSet
		start := rng.IntN(WellRows - 3)
		for i := 0; i < 4; i++ {
			if rng.IntN(2) == 0 {
				rows = rows.Add(start + i)
			}
		}
		if rows.Len() == 0 {
			rows = rows.Add(start)
		}

		want := filterAndPad(w, rows)
		got := w
		n := got.Compact(rows)

		require.Equal(t, rows.Len(), n)
		require.Equal(t, want, got, "trial %d rows %v\n%s", trial, rows.Rows(), w.String())
	}
}

func TestCompactMarkers(t *testing.T) {
	var w Well
	for r := 0; r < 8; r++ {
		w[r][0] = AllPieces[r%len(AllPieces)]
	}
	fillRow(&w, 1)
	fillRow(&w, 3)
	fillRow(&w, 4)

	rows := RowSet{}.Add(4).Add(1).Add(3)
	assert.Equal(t, 3, w.Compact(rows))

	assert.Equal(t, PieceI, w[0][0])
	assert.Equal(t, PieceL, w[1][0], "row 2 drops one")
	assert.Equal(t, PieceZ, w[2][0], "row 5 drops three")
	assert.Equal(t, PieceO, w[3][0])
	assert.Equal(t, PieceI, w[4][0])
	for r := WellRows - 3; r < WellRows; r++ {
		assert.True(t, w.RowEmpty(r), "top row %d should be blank", r)
	}
}

func TestCompactTopRow(t *testing.T) {
	var w Well
	fillRow(&w, WellRows-1)
	w[WellRows-2][0] = PieceT

	assert.Equal(t, 1, w.Compact(RowSet{}.Add(WellRows-1)))
	assert.True(t, w.RowEmpty(WellRows-1))
	assert.Equal(t, PieceT, w[WellRows-2][0])
}

func TestFullRowsUnderPieceOnly(t *testing.T) {
	var w Well
	fillRow(&w, 5, 3)
	fillRow(&w, 0) // outside the piece extent, must be ignored
	p := Piece{Type: PieceI, Row: 5, Col: 1, Rotation: 1} // column 3, rows 5..8

	w.Merge(p)
	rows := w.FullRowsUnder(p)

	assert.Equal(t, []int{5}, rows.Rows())
}

func TestMergeCollidingPanics(t *testing.T) {
	var w Well
	w[0][4] = PieceZ
	assert.Panics(t, func() { w.Merge(Piece{Type: PieceT, Row: 0, Col: 3}) })
}

func TestMergeAboveWellPanics(t *testing.T) {
	var w Well
	p := Piece{Type: PieceO, Row: WellRows, Col: 4}
	assert.False(t, Collides(p, &w), "open top never collides")
	assert.Panics(t, func() { w.Merge(p) })
	assert.Equal(t, 0, w.Filled())
}

func TestRowSet(t *testing.T) {
	s := RowSet{}.Add(7).Add(2).Add(7).Add(5)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{2, 5, 7}, s.Rows())
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(3))
	assert.Equal(t, 2, s.At(0))

	full := s.Add(9)
	assert.Panics(t, func() { full.Add(10) })
	assert.Panics(t, func() { s.At(3) })
}

func TestWellString(t *testing.T) {
	var w Well
	w[0][0] = PieceS
	lines := w.String()

	assert.Len(t, lines, WellRows*(WellCols+1)-1)
	assert.Equal(t, "S.........", lines[len(lines)-WellCols:])
}
