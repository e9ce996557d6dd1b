package engine

import (
	"fmt"
	"strings"
)

const (
	// WellRows is the number of rows including the hidden spawn row.
	WellRows = 21
	// WellCols is the well width.
	WellCols = 10
	// VisibleRows is the number of rows drawn; row 20 is hidden.
	VisibleRows = 20
)

// Well is the playfield. Row 0 is the floor; each cell holds the type of the
// piece that was locked there, or PieceNone.
type Well [WellRows][WellCols]PieceType

// RowFull reports whether every cell of row r is filled.
func (w *Well) RowFull(r int) bool {
	for _, c := range w[r] {
		if c == PieceNone {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row r has no filled cells.
func (w *Well) RowEmpty(r int) bool {
	for _, c := range w[r] {
		if c != PieceNone {
			return false
		}
	}
	return true
}

// Filled counts the filled cells in the well.
func (w *Well) Filled() int {
	n := 0
	for r := range w {
		for _, c := range w[r] {
			if c != PieceNone {
				n++
			}
		}
	}
	return n
}

// Merge writes the piece cells into the well. The piece must not collide
// and every cell must lie inside the well.
func (w *Well) Merge(p Piece) {
	if Collides(p, w) || !insideWell(p) {
		panic(fmt.Sprintf("engine: cannot merge colliding piece %s at (%d, %d) rot %d",
			p.Type, p.Row, p.Col, p.Rotation))
	}
	for _, c := range p.Cells() {
		w[c.Row][c.Col] = p.Type
	}
}

func insideWell(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Row < 0 || c.Row >= WellRows || c.Col < 0 || c.Col >= WellCols {
			return false
		}
	}
	return true
}

// FullRowsUnder returns the full rows within the piece's vertical extent.
// Only those rows can have been completed by locking p.
func (w *Well) FullRowsUnder(p Piece) RowSet {
	var rows RowSet
	h := p.Height()
	for r := p.Row + h.Offset; r < p.Row+h.Offset+h.Size; r++ {
		if r >= 0 && r < WellRows && w.RowFull(r) {
			rows = rows.Add(r)
		}
	}
	return rows
}

// Compact removes the given rows in a single pass. Surviving rows shift down
// to fill the gaps and the same number of empty rows appear at the top.
// It returns the number of rows removed.
func (w *Well) Compact(rows RowSet) int {
	if rows.Len() == 0 {
		return 0
	}

	dst := rows.At(0)
	next := 0
	for src := dst; src < WellRows; src++ {
		if next < rows.Len() && src == rows.At(next) {
			next++
			continue
		}
		w[dst] = w[src]
		dst++
	}
	for ; dst < WellRows; dst++ {
		w[dst] = [WellCols]PieceType{}
	}
	return rows.Len()
}

// String renders the well top-down with piece letters, for tests and logs.
func (w *Well) String() string {
	var sb strings.Builder
	for r := WellRows - 1; r >= 0; r-- {
		for _, c := range w[r] {
			sb.WriteString(c.String())
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RowSet is a small ascending set of well rows. A piece spans at most four
// rows, so the set never holds more.
type RowSet struct {
	rows [4]int
	n    int
}

// Add inserts r keeping the set ascending. Duplicates are ignored.
func (s RowSet) Add(r int) RowSet {
	for i := 0; i < s.n; i++ {
		if s.rows[i] == r {
			return s
		}
	}
	if s.n == len(s.rows) {
		panic("engine: row set overflow")
	}
	i := s.n
	for i > 0 && s.rows[i-1] > r {
		s.rows[i] = s.rows[i-1]
		i--
	}
	s.rows[i] = r
	s.n++
	return s
}

// Len returns the number of rows in the set.
func (s RowSet) Len() int {
	return s.n
}

// At returns the i-th smallest row.
func (s RowSet) At(i int) int {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("engine: row set index %d out of range", i))
	}
	return s.rows[i]
}

// Has reports whether r is in the set.
func (s RowSet) Has(r int) bool {
	for i := 0; i < s.n; i++ {
		if s.rows[i] == r {
			return true
		}
	}
	return false
}

// Rows returns the rows as a new slice.
func (s RowSet) Rows() []int {
	return append([]int(nil), s.rows[:s.n]...)
}
