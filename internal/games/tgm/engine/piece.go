// Package engine is the deterministic simulation of the falling-block game:
// piece catalog, well, collision, rotation with wall kicks, rule tables,
// randomizer, lock and line clear, level progression, and the screen
// state machine.
//
// Everything operates on value types. Step takes a State and an input frame
// and returns the next State; nothing here performs I/O.
package engine

import "fmt"

// PieceType identifies one of the seven tetrominoes. The zero value marks an
// empty well cell or an absent piece.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
	PieceO
)

// AllPieces is the full draw set of the randomizer.
var AllPieces = []PieceType{PieceI, PieceT, PieceL, PieceJ, PieceS, PieceZ, PieceO}

// OpeningPieces is the draw set used at level 0 so the first piece is never
// an S, Z or O.
var OpeningPieces = []PieceType{PieceI, PieceT, PieceL, PieceJ}

// String returns the piece letter.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceT:
		return "T"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceO:
		return "O"
	default:
		return "."
	}
}

// ParsePieceType converts a piece letter back to its type.
func ParsePieceType(s string) (PieceType, error) {
	for _, t := range AllPieces {
		if t.String() == s {
			return t, nil
		}
	}
	return PieceNone, fmt.Errorf("engine: unknown piece %q", s)
}

// Offset is a cell position relative to a piece origin.
type Offset struct {
	Row, Col int
}

// Extent describes where a piece's cells start and how far they reach along
// one axis, relative to the origin.
type Extent struct {
	Offset int
	Size   int
}

type shape struct {
	cells   [4][4]Offset // per rotation
	heights [4]Extent
	widths  [4]Extent
	spawn   Offset
}

// Local rows grow upward from the origin, matching the well where row 0 is
// the floor.
var catalog = [...]shape{
	PieceI: {
		cells: [4][4]Offset{
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		},
		heights: [4]Extent{{2, 1}, {0, 4}, {2, 1}, {0, 4}},
		widths:  [4]Extent{{0, 4}, {2, 1}, {0, 4}, {2, 1}},
		spawn:   Offset{17, 3},
	},
	PieceT: {
		cells: [4][4]Offset{
			{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		},
		heights: [4]Extent{{0, 2}, {0, 3}, {0, 2}, {0, 3}},
		widths:  [4]Extent{{0, 3}, {0, 2}, {0, 3}, {1, 2}},
		spawn:   Offset{18, 3},
	},
	PieceL: {
		cells: [4][4]Offset{
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		},
		heights: [4]Extent{{0, 2}, {0, 3}, {0, 2}, {0, 3}},
		widths:  [4]Extent{{0, 3}, {0, 2}, {0, 3}, {1, 2}},
		spawn:   Offset{18, 3},
	},
	PieceJ: {
		cells: [4][4]Offset{
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		},
		heights: [4]Extent{{0, 2}, {0, 3}, {0, 2}, {0, 3}},
		widths:  [4]Extent{{0, 3}, {0, 2}, {0, 3}, {1, 2}},
		spawn:   Offset{18, 3},
	},
	PieceS: {
		cells: [4][4]Offset{
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		},
		heights: [4]Extent{{0, 2}, {0, 3}, {0, 2}, {0, 3}},
		widths:  [4]Extent{{0, 3}, {0, 2}, {0, 3}, {0, 2}},
		spawn:   Offset{18, 3},
	},
	PieceZ: {
		cells: [4][4]Offset{
			{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		},
		heights: [4]Extent{{0, 2}, {0, 3}, {0, 2}, {0, 3}},
		widths:  [4]Extent{{0, 3}, {1, 2}, {0, 3}, {1, 2}},
		spawn:   Offset{18, 3},
	},
	PieceO: {
		cells: [4][4]Offset{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		heights: [4]Extent{{0, 2}, {0, 2}, {0, 2}, {0, 2}},
		widths:  [4]Extent{{0, 2}, {0, 2}, {0, 2}, {0, 2}},
		spawn:   Offset{18, 4},
	},
}

func shapeOf(t PieceType) *shape {
	if t == PieceNone || int(t) >= len(catalog) {
		panic(fmt.Sprintf("engine: no shape for piece %d", t))
	}
	return &catalog[t]
}

// Piece is a tetromino placed in the well. Row and Col locate the origin;
// Rotation is always in [0, 3].
type Piece struct {
	Type     PieceType
	Row      int
	Col      int
	Rotation int
}

// SpawnPiece returns a piece of type t at its spawn position, rotation 0.
func SpawnPiece(t PieceType) Piece {
	sp := shapeOf(t).spawn
	return Piece{Type: t, Row: sp.Row, Col: sp.Col}
}

// Present reports whether p holds a piece.
func (p Piece) Present() bool {
	return p.Type != PieceNone
}

// Offsets returns the cell offsets for the current rotation.
func (p Piece) Offsets() [4]Offset {
	return shapeOf(p.Type).cells[p.Rotation]
}

// Cells returns the absolute well positions of the piece's four cells.
func (p Piece) Cells() [4]Offset {
	cells := p.Offsets()
	for i := range cells {
		cells[i].Row += p.Row
		cells[i].Col += p.Col
	}
	return cells
}

// Height returns the vertical extent for the current rotation.
func (p Piece) Height() Extent {
	return shapeOf(p.Type).heights[p.Rotation]
}

// Width returns the horizontal extent for the current rotation.
func (p Piece) Width() Extent {
	return shapeOf(p.Type).widths[p.Rotation]
}

// Moved returns the piece translated by the given rows and columns.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Rotated returns the piece turned in place by dir quarter turns.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = ((p.Rotation+int(dir))%4 + 4) % 4
	return p
}
