package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogExtentsMatchCells(t *testing.T) {
	for _, typ := range AllPieces {
		for rot := 0; rot < 4; rot++ {
			p := Piece{Type: typ, Rotation: rot}
			minR, maxR, minC, maxC := 99, -99, 99, -99
			for _, off := range p.Offsets() {
				minR, maxR = min(minR, off.Row), max(maxR, off.Row)
				minC, maxC = min(minC, off.Col), max(maxC, off.Col)
			}
			assert.Equal(t, Extent{minR, maxR - minR + 1}, p.Height(), "%s rot %d height", typ, rot)
			assert.Equal(t, Extent{minC, maxC - minC + 1}, p.Width(), "%s rot %d width", typ, rot)
		}
	}
}

func TestCatalogCellsAreDistinct(t *testing.T) {
	for _, typ := range AllPieces {
		for rot := 0; rot < 4; rot++ {
			seen := map[Offset]bool{}
			for _, off := range (Piece{Type: typ, Rotation: rot}).Offsets() {
				assert.False(t, seen[off], "%s rot %d repeats %v", typ, rot, off)
				seen[off] = true
			}
		}
	}
}

func TestSpawnOnEmptyWell(t *testing.T) {
	var w Well
	for _, typ := range AllPieces {
		p := SpawnPiece(typ)
		assert.Equal(t, 0, p.Rotation)
		for rot := 0; rot < 4; rot++ {
			turned := p
			turned.Rotation = rot
			assert.False(t, Collides(turned, &w), "%s rot %d collides at spawn", typ, rot)
		}
	}
}

func TestSpawnPositions(t *testing.T) {
	tests := []struct {
		typ      PieceType
		row, col int
	}{
		{PieceI, 17, 3},
		{PieceT, 18, 3},
		{PieceL, 18, 3},
		{PieceJ, 18, 3},
		{PieceS, 18, 3},
		{PieceZ, 18, 3},
		{PieceO, 18, 4},
	}
	for _, tc := range tests {
		p := SpawnPiece(tc.typ)
		assert.Equal(t, tc.row, p.Row, "%s spawn row", tc.typ)
		assert.Equal(t, tc.col, p.Col, "%s spawn col", tc.typ)
	}
}

func TestRotatedWrapsAround(t *testing.T) {
	p := SpawnPiece(PieceT)

	assert.Equal(t, 1, p.Rotated(RotateCW).Rotation)
	assert.Equal(t, 3, p.Rotated(RotateCCW).Rotation)
	assert.Equal(t, p, p.Rotated(RotateCW).Rotated(RotateCCW))

	q := p
	for i := 0; i < 4; i++ {
		q = q.Rotated(RotateCW)
	}
	assert.Equal(t, p, q)
}

func TestParsePieceType(t *testing.T) {
	for _, typ := range AllPieces {
		got, err := ParsePieceType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParsePieceType("X")
	assert.Error(t, err)
}

func TestShapeOfNonePanics(t *testing.T) {
	assert.Panics(t, func() { SpawnPiece(PieceNone) })
}
