package engine

// Collides reports whether p lies outside the well or overlaps a filled cell.
// Only the floor and both walls bound the piece; the top is open.
func Collides(p Piece, w *Well) bool {
	h, wd := p.Height(), p.Width()
	if p.Row+h.Offset < 0 {
		return true
	}
	if p.Col+wd.Offset < 0 || p.Col+wd.Offset+wd.Size > WellCols {
		return true
	}
	for _, c := range p.Cells() {
		if c.Row >= WellRows {
			continue
		}
		if w[c.Row][c.Col] != PieceNone {
			return true
		}
	}
	return false
}

// CanMove reports whether p can be translated by (dRow, dCol).
func CanMove(p Piece, w *Well, dRow, dCol int) bool {
	return !Collides(p.Moved(dRow, dCol), w)
}

// HasBottomContact reports whether p rests on the floor or a filled cell.
func HasBottomContact(p Piece, w *Well) bool {
	return !CanMove(p, w, -1, 0)
}

// Drop returns the row offset (zero or negative) reached by letting p fall up
// to rows rows, stopping at the first obstruction.
func Drop(p Piece, w *Well, rows int) int {
	off := 0
	for off > -rows && CanMove(p, w, off-1, 0) {
		off--
	}
	return off
}
