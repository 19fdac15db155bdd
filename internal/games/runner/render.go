package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/level"
	"github.com/vovakirdan/tui-runner/internal/games/runner/player"
)

// Visual characters for rendering
const (
	StarChar        = '·'
	GameOverMessage = "GAME OVER - Press R to restart, Q to quit"
)

var cloudChars = [...]rune{'~', '≈', '~'}

// particleChars maps remaining lifetime to a glyph; the burst thins out
// as it fades.
var particleChars = map[int]rune{4: '↓', 3: '∵', 2: '·', 1: '˙'}

var cellColors = map[level.Cell]core.Color{
	level.CellGround:    core.ColorGray,
	level.CellPlatform:  core.ColorWhite,
	level.CellSpike:     core.ColorBrightRed,
	level.CellBlock:     core.ColorOrange,
	level.CellGapMarker: core.ColorCyan,
}

var playerColors = map[player.Mode]core.Color{
	player.ModeGrounded:  core.ColorBrightCyan,
	player.ModeExhausted: core.ColorGray,
	player.ModeAirborne:  core.ColorBrightWhite,
}

// Render draws the current state: HUD, background, terrain, player and
// particles, then the game-over overlay on top of everything.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	c := g.clock
	g.drawBackground(dst, c.Level())
	g.drawTerrain(dst, c.Level())
	g.drawPlayer(dst, c.Player())
	g.drawHUD(dst)

	if c.GameOver() {
		g.drawGameOver(dst)
	}
}

// drawHUD renders score, best and speed on the left and stamina on the
// right of row 0.
func (g *Game) drawHUD(dst *core.Screen) {
	c := g.clock
	left := fmt.Sprintf("Score: %d  Best: %d  Speed: %.1fx", c.Score(), c.Best(), c.Speed())
	right := "Stamina " + c.Player().StaminaBar()

	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	leftLen := len([]rune(left))
	rightLen := len([]rune(right))
	x := max(leftLen+4, dst.Width()-rightLen-2)
	if x+rightLen < dst.Width() {
		dst.DrawTextColored(x, 0, right, staminaColor(c.Player()))
	}
}

func staminaColor(p *player.Body) core.Color {
	switch {
	case p.Stamina() == 0:
		return core.ColorRed
	case p.Stamina()*2 <= p.MaxStamina():
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// drawBackground renders stars and clouds below row 0.
func (g *Game) drawBackground(dst *core.Screen, lvl *level.Generator) {
	bg := lvl.Background()

	for _, s := range bg.Stars {
		if s.Y >= 1 {
			dst.SetColored(s.X, s.Y, StarChar, core.ColorGray)
		}
	}

	for _, cl := range bg.Clouds {
		if cl.Y < 1 {
			continue
		}
		for i := 0; i < cl.Width; i++ {
			dst.SetColored(cl.X+i, cl.Y, cloudChars[i%len(cloudChars)], core.ColorWhite)
		}
	}
}

// drawTerrain renders every non-empty cell below the HUD row.
func (g *Game) drawTerrain(dst *core.Screen, lvl *level.Generator) {
	for y := 1; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			cell := lvl.CellAt(x, y)
			if cell == level.CellEmpty {
				continue
			}
			dst.SetColored(x, y, cell.Rune(), cellColors[cell])
		}
	}
}

// drawPlayer renders the body glyph and any air-jump particles.
func (g *Game) drawPlayer(dst *core.Screen, p *player.Body) {
	dst.SetColored(p.X(), p.Row(), p.Glyph(), playerColors[p.Mode()])

	h := dst.Height()
	for _, pt := range p.Particles() {
		if pt.Y < 1 || pt.Y >= h-1 {
			continue
		}
		ch, ok := particleChars[pt.Life]
		if !ok {
			ch = '·'
		}
		dst.SetColored(pt.X, pt.Y, ch, core.ColorBrightYellow)
	}
}

// drawGameOver clears the middle row and draws the banner there, with the
// cause and the session's recent runs underneath.
func (g *Game) drawGameOver(dst *core.Screen) {
	row := dst.Height() / 2
	dst.ClearRow(row)
	dst.DrawTextCentered(row, GameOverMessage, core.ColorBrightYellow)

	run := g.clock.Summary()
	detail := fmt.Sprintf("%s after %d ticks", causeText(g.clock.Cause()), run.Ticks)
	dst.ClearRow(row + 1)
	dst.DrawTextCentered(row+1, detail, core.ColorWhite)

	if len(g.recent) == 0 {
		return
	}
	scores := make([]string, len(g.recent))
	for i, e := range g.recent {
		scores[i] = fmt.Sprintf("%d", e.Score)
	}
	dst.ClearRow(row + 2)
	dst.DrawTextCentered(row+2, "Recent: "+strings.Join(scores, "  "), core.ColorGray)
}

func causeText(c Cause) string {
	switch c {
	case CauseGap:
		return "Fell into a gap"
	case CauseObstacle:
		return "Hit an obstacle"
	default:
		return "Stopped"
	}
}
