package engine

// Direction is a rotation request: -1 counter-clockwise, +1 clockwise.
type Direction int

const (
	RotateCCW  Direction = -1
	RotateNone Direction = 0
	RotateCW   Direction = 1
)

// RotationSystem turns a piece in the well. It returns the rotated piece, or
// the original one when no placement is legal.
type RotationSystem func(p Piece, w *Well, dir Direction) Piece

// ClassicRotation rotates in place and, if blocked, tries one column right
// and then one column left.
func ClassicRotation(p Piece, w *Well, dir Direction) Piece {
	if dir == RotateNone {
		return p
	}
	turned := p.Rotated(dir)
	if !Collides(turned, w) {
		return turned
	}
	if !canWallKick(turned, w) {
		return p
	}
	for _, dc := range [...]int{1, -1} {
		if kicked := turned.Moved(0, dc); !Collides(kicked, w) {
			return kicked
		}
	}
	return p
}

// canWallKick decides whether a blocked rotation may kick sideways.
// The I piece never kicks. L, J and T kick when pushed out of bounds, or
// when the blocking cell is outside their center column. Everything else
// may always try.
func canWallKick(turned Piece, w *Well) bool {
	switch turned.Type {
	case PieceI:
		return false
	case PieceL, PieceJ, PieceT:
		wd := turned.Width()
		if turned.Col+wd.Offset < 0 || turned.Col+wd.Offset+wd.Size > WellCols {
			return true
		}
		for _, off := range turned.Offsets() {
			if off.Col == 1 {
				continue
			}
			r, c := turned.Row+off.Row, turned.Col+off.Col
			if r < 0 || r >= WellRows || c < 0 || c >= WellCols {
				continue
			}
			if w[r][c] != PieceNone {
				return true
			}
		}
		return false
	default:
		return true
	}
}
