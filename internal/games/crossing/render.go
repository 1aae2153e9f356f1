package crossing

import (
	"fmt"

	"github.com/avoronov/bugcross/internal/assets"
	"github.com/avoronov/bugcross/internal/core"
)

const hudHeight = 2

// boardLayout is the cell-space placement of the logical board,
// recomputed from the destination buffer on every render so resizing
// the terminal never touches the simulation.
type boardLayout struct {
	tileCellW int
	tileCellH int
	offsetX   int
	offsetY   int
	tooSmall  bool
}

func (g *Game) layout(dst *core.Screen) boardLayout {
	cols := g.cfg.Board.Columns
	rows := g.cfg.Board.Rows

	l := boardLayout{
		tileCellW: (dst.Width() - 2) / cols,
		tileCellH: (dst.Height() - hudHeight - 2) / rows,
	}
	if l.tileCellW < 4 || l.tileCellH < 2 {
		l.tooSmall = true
		return l
	}
	l.offsetX = (dst.Width() - cols*l.tileCellW) / 2
	l.offsetY = hudHeight
	return l
}

// sprite resolves an atlas sprite, degrading to a placeholder glyph if
// the atlas failed to load.
func (g *Game) sprite(id string) assets.Sprite {
	fallback := assets.Sprite{ID: id, Glyph: '?', Color: core.ColorDefault}
	if g.atlas == nil {
		return fallback
	}
	return g.atlas.SpriteOr(id, fallback)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	l := g.layout(dst)
	if l.tooSmall {
		// Keep the hint short so it survives tiny windows uncut.
		dst.DrawTextCentered(dst.Height()/2, "too small")
		dst.DrawTextCentered(dst.Height()/2+1, "resize me")
		return
	}

	g.renderBoard(dst, l)
	g.renderGem(dst, l)
	g.renderEnemies(dst, l)
	g.renderPlayer(dst, l)
	g.renderHistory(dst, l)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Gems: %d  |  Enter: play again", g.score, g.gems))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar: score, gems, hearts, run number.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Bug Crossing  |  Score: %d  Gems: %d  Run: %d  Lives: ",
		g.score, g.gems, g.replayIndex+1)
	dst.DrawText(0, 0, hud)

	heart := g.sprite("heart")
	for i := range g.hearts {
		dst.SetCell(len(hud)+i*2, 0, heart.Glyph, heart.Color)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard fills each tile with its terrain glyph.
func (g *Game) renderBoard(dst *core.Screen, l boardLayout) {
	for row := 0; row < g.cfg.Board.Rows; row++ {
		s := g.sprite(RowTerrain(row).spriteID())
		for col := 0; col < g.cfg.Board.Columns; col++ {
			tile := core.NewRect(
				l.offsetX+col*l.tileCellW,
				l.offsetY+row*l.tileCellH,
				l.tileCellW,
				l.tileCellH,
			)
			dst.DrawRect(tile, s.Glyph, s.Color)
		}
	}
}

// tileCenter returns the cell at the center of a board tile.
func (l boardLayout) tileCenter(col, row int) (int, int) {
	return l.offsetX + col*l.tileCellW + l.tileCellW/2,
		l.offsetY + row*l.tileCellH + l.tileCellH/2
}

func (g *Game) renderGem(dst *core.Screen, l boardLayout) {
	s := g.sprite("gem")
	col := colOf(g.gem.X, g.cfg.Board.TileWidth)
	row := rowOf(g.gem.Y, g.cfg.Board.TileHeight)
	x, y := l.tileCenter(col, row)
	dst.SetCell(x, y, s.Glyph, s.Color)
}

// renderEnemies draws each bug at its continuous horizontal position,
// scaled from logical pixels to board cells.
func (g *Game) renderEnemies(dst *core.Screen, l boardLayout) {
	s := g.sprite("enemy-bug")
	boardCellW := float64(g.cfg.Board.Columns * l.tileCellW)
	canvasW := float64(g.cfg.Board.CanvasWidth)

	for i := range g.enemies {
		e := &g.enemies[i]
		row := rowOf(e.Y, g.cfg.Board.TileHeight)
		y := l.offsetY + row*l.tileCellH + l.tileCellH/2

		startX := l.offsetX + int(e.X*boardCellW/canvasW)
		bodyW := core.Max(1, l.tileCellW-2)
		for dx := 0; dx < bodyW; dx++ {
			x := startX + dx
			if x >= l.offsetX && x < l.offsetX+int(boardCellW) {
				dst.SetCell(x, y, s.Glyph, s.Color)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, l boardLayout) {
	s := g.sprite(g.player.Sprite)
	col := colOf(g.player.X, g.cfg.Board.TileWidth)
	row := rowOf(g.player.Y, g.cfg.Board.TileHeight)
	x, y := l.tileCenter(col, row)
	dst.SetCell(x, y, s.Glyph, s.Color)
}

// renderHistory shows the most recent finished runs under the board.
func (g *Game) renderHistory(dst *core.Screen, l boardLayout) {
	if len(g.history) == 0 {
		return
	}
	y := l.offsetY + g.cfg.Board.Rows*l.tileCellH
	if y >= dst.Height() {
		return
	}
	rec := g.history[len(g.history)-1]
	line := fmt.Sprintf(" Run %d: score %d, gems %d", rec.Replay+1, rec.Score, rec.Gems)
	if len(g.history) > 1 {
		line += fmt.Sprintf("  (%d runs total)", len(g.history))
	}
	dst.DrawTextColored(0, y, line, core.ColorGray)
}

// renderOverlay draws a centered boxed message over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := core.Min(maxLen+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
