package tgm

import (
	"fmt"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
	"github.com/vovakirdan/tui-grandmaster/internal/games/tgm/engine"
)

// Visual characters for rendering
const (
	BlockGlyph = '█'
	FlashGlyph = '▓'
	EmptyGlyph = '·'
)

// Layout constants
const (
	cellWidth   = 2 // each well cell is two characters wide
	wellBoxW    = engine.WellCols*cellWidth + 2
	wellBoxH    = engine.VisibleRows + 2
	panelGap    = 2
	panelW      = 14
	previewBoxW = 4*cellWidth + 2
	previewBoxH = 4
)

var pieceColors = map[engine.PieceType]core.Color{
	engine.PieceI: core.ColorRed,
	engine.PieceT: core.ColorCyan,
	engine.PieceL: core.ColorOrange,
	engine.PieceJ: core.ColorBlue,
	engine.PieceS: core.ColorMagenta,
	engine.PieceZ: core.ColorGreen,
	engine.PieceO: core.ColorYellow,
}

// PieceColor returns the display color of a piece type.
func PieceColor(t engine.PieceType) core.Color {
	if c, ok := pieceColors[t]; ok {
		return c
	}
	return core.ColorDefault
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.state.View()

	switch v.Screen {
	case engine.ScreenStart:
		g.renderStart(dst)
	case engine.ScreenLevelSelect:
		g.renderLevelSelect(dst, v)
	default:
		g.renderPlayfield(dst, v)
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "T G M", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-2, g.title+" rules", core.ColorWhite)
	dst.DrawTextCentered(mid, "Press a rotate key to start", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+3, "Arrows: Move/Drop  Z/X C/V: Rotate", core.ColorGray)
	dst.DrawTextCentered(mid+4, "P: Pause  B: Menu  Q: Quit", core.ColorGray)
}

func (g *Game) renderLevelSelect(dst *core.Screen, v engine.View) {
	top := (dst.Height() - len(v.LevelOptions)) / 2
	dst.DrawTextCentered(top-2, "SELECT START LEVEL", core.ColorBrightYellow)
	for i, lvl := range v.LevelOptions {
		line := fmt.Sprintf("  %3d  ", lvl)
		color := core.ColorWhite
		if i == v.Cursor {
			line = fmt.Sprintf("> %3d <", lvl)
			color = core.ColorBrightCyan
		}
		dst.DrawTextCentered(top+i, line, color)
	}
	dst.DrawTextCentered(top+len(v.LevelOptions)+1, "Up/Down: Choose  Rotate: Confirm", core.ColorGray)
}

func (g *Game) renderPlayfield(dst *core.Screen, v engine.View) {
	area := core.Centered(wellBoxW+panelGap+panelW, wellBoxH, dst.Width(), dst.Height())
	box := core.NewRect(area.X, area.Y, wellBoxW, wellBoxH)
	dst.DrawBox(box, core.ColorGray)

	// Settled cells
	for r := range engine.VisibleRows {
		for c := range engine.WellCols {
			t := v.Well[r][c]
			switch {
			case v.Cleared.Has(r) && t != engine.PieceNone:
				drawCell(dst, box, r, c, FlashGlyph, core.ColorBrightWhite)
			case t != engine.PieceNone:
				drawCell(dst, box, r, c, BlockGlyph, PieceColor(t))
			default:
				dst.SetColored(cellX(box, c)+1, cellY(box, r), EmptyGlyph, core.ColorGray)
			}
		}
	}

	if v.FlashLeft > 0 {
		for _, cell := range v.Locked.Cells() {
			drawCell(dst, box, cell.Row, cell.Col, BlockGlyph, core.ColorBrightWhite)
		}
	}
	if v.Active.Present() {
		for _, cell := range v.Active.Cells() {
			drawCell(dst, box, cell.Row, cell.Col, BlockGlyph, PieceColor(v.Active.Type))
		}
	}

	if v.Message != "" {
		msg := core.Centered(len(v.Message), 1, box.W, box.H)
		dst.DrawTextColored(box.X+msg.X, box.Y+msg.Y, v.Message, core.ColorBrightYellow)
	}

	g.renderPanel(dst, v, box.Right()+panelGap, box.Y)
}

func (g *Game) renderPanel(dst *core.Screen, v engine.View, x, y int) {
	dst.DrawTextColored(x, y, "NEXT", core.ColorWhite)
	preview := core.NewRect(x, y+1, previewBoxW, previewBoxH)
	dst.DrawBox(preview, core.ColorGray)
	inner := preview.Inner()
	if v.Next != engine.PieceNone {
		p := engine.SpawnPiece(v.Next)
		h := p.Height()
		for _, off := range p.Offsets() {
			rr := off.Row - h.Offset
			px := inner.X + off.Col*cellWidth
			py := inner.Y + (h.Size - 1 - rr)
			dst.SetColored(px, py, BlockGlyph, PieceColor(v.Next))
			dst.SetColored(px+1, py, BlockGlyph, PieceColor(v.Next))
		}
	}

	ly := preview.Bottom() + 1
	dst.DrawTextColored(x, ly, "LEVEL", core.ColorWhite)
	dst.DrawTextColored(x, ly+1, fmt.Sprintf("%3d", v.Level), core.ColorBrightWhite)
	dst.DrawTextColored(x, ly+2, "---", core.ColorGray)
	dst.DrawTextColored(x, ly+3, fmt.Sprintf("%3d", v.Target), core.ColorWhite)

	dst.DrawTextColored(x, ly+5, g.title, core.ColorCyan)
	if v.Screen == engine.ScreenGameOver {
		dst.DrawTextColored(x, ly+7, "B: Menu", core.ColorGray)
	}
}

// cellX returns the screen column of a well column's left half.
func cellX(box core.Rect, col int) int {
	return box.Inner().X + col*cellWidth
}

// cellY returns the screen row of a well row. Row 0 is the floor.
func cellY(box core.Rect, row int) int {
	return box.Inner().Y + (engine.VisibleRows - 1 - row)
}

// drawCell fills one well cell; hidden and out-of-range rows are skipped.
func drawCell(dst *core.Screen, box core.Rect, row, col int, r rune, c core.Color) {
	if row < 0 || row >= engine.VisibleRows || col < 0 || col >= engine.WellCols {
		return
	}
	x, y := cellX(box, col), cellY(box, row)
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}
