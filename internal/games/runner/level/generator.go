// Package level owns the scrolling terrain and the fairness-constrained
// obstacle placement for the runner.
package level

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// MinHeight is the smallest grid that still has a HUD row, sky, platform,
// ground and footer.
const MinHeight = 5

// GenerationState holds the countdowns that drive the column algorithm.
// At most one of GapLeft and DoubleSpikeLeft is non-zero at a time.
type GenerationState struct {
	UntilNext       int // Normal columns until the next obstacle is drawn
	GapLeft         int // Empty columns still to emit for the current gap
	DoubleSpikeLeft int // Columns until the second spike, inclusive
}

// Generator maintains the scrolling terrain buffer and emits one new column
// per scroll.
type Generator struct {
	cfg     config.LevelConfig
	grid    *Grid
	rng     *rand.Rand
	pool    *ObstaclePool
	state   GenerationState
	bg      background
	scrolls int
	placed  int
}

// New creates a generator for a grid of width columns and height rows and
// performs the initial Reset. Invalid configuration or a grid too small to
// hold the terrain rows is a programming error and panics.
func New(cfg config.LevelConfig, width, height int, seed int64) *Generator {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("level: %v", err))
	}
	if width < 1 || height < MinHeight {
		panic(fmt.Sprintf("level: grid %dx%d is too small", width, height))
	}

	g := &Generator{
		cfg:  cfg,
		grid: NewGrid(width, height),
		pool: NewObstaclePool(cfg.Weights),
	}
	g.Reset(seed)
	return g
}

// Reset rebuilds the level: flat terrain for the safe-start zone, a freshly
// seeded obstacle source and the fixed-seed background.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.state = GenerationState{UntilNext: g.cfg.SafeStart + 1}
	g.scrolls = 0
	g.placed = 0
	g.bg = newBackground(g.cfg.Background, g.grid.Width(), g.grid.Height())

	g.grid.reset()
	for i := 0; i < g.grid.Width(); i++ {
		g.appendColumn()
	}
	g.placed = 0
}

// Scroll shifts the terrain one column left and generates the new rightmost
// column. Background layers move at their own slower cadence.
func (g *Generator) Scroll() {
	g.scrolls++
	g.bg.scroll(g.scrolls)
	g.appendColumn()
}

// appendColumn decides the content of exactly one new rightmost column.
func (g *Generator) appendColumn() {
	g.grid.advance()
	x := g.grid.Width() - 1

	if g.state.GapLeft > 0 {
		g.state.GapLeft--
		return
	}

	g.grid.set(x, g.GroundRow(), CellGround)
	g.grid.set(x, g.PlatformRow(), CellPlatform)

	if g.state.DoubleSpikeLeft > 0 {
		g.state.DoubleSpikeLeft--
		if g.state.DoubleSpikeLeft == 0 {
			g.grid.set(x, g.PlatformRow(), CellSpike)
		}
		return
	}

	g.state.UntilNext--
	if g.state.UntilNext <= 0 {
		spec := g.specFor(g.pool.Pick(g.rng))
		g.place(spec, x)
		g.state.UntilNext = g.randBetween(g.cfg.MinSpacing, g.cfg.MaxSpacing)
	}
}

// randBetween returns a uniform value in [lo, hi].
func (g *Generator) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Stamp writes an obstacle into an already generated column, replacing the
// terrain there. Scripted scenarios use it to set up exact situations; the
// generation counters are not touched.
func (g *Generator) Stamp(x int, kind ObstacleKind) {
	if x < 0 || x >= g.grid.Width() {
		return
	}
	g.grid.clearColumn(x)
	if kind == KindGap {
		return
	}
	g.grid.set(x, g.GroundRow(), CellGround)
	g.grid.set(x, g.PlatformRow(), CellPlatform)

	switch kind {
	case KindSpike:
		g.grid.set(x, g.PlatformRow(), CellSpike)
	case KindDoubleSpike:
		g.grid.set(x, g.PlatformRow(), CellSpike)
		g.grid.set(x+g.cfg.DoubleSpikeGap+1, g.PlatformRow(), CellSpike)
	case KindLowBlock:
		g.writeBlock(x, g.cfg.LowBlockHeight)
	case KindMidBlock:
		g.writeBlock(x, g.cfg.MidBlockHeight)
	}
}

// HasObstacleAt reports whether the cell at (x, y) is impassable.
// Out-of-bounds coordinates are never obstacles.
func (g *Generator) HasObstacleAt(x, y int) bool {
	return g.grid.At(x, y).Impassable()
}

// CellAt returns the raw terrain symbol; empty when out of bounds.
func (g *Generator) CellAt(x, y int) Cell {
	return g.grid.At(x, y)
}

// CharAt returns the glyph at (x, y); a space when out of bounds.
func (g *Generator) CharAt(x, y int) rune {
	return g.grid.At(x, y).Rune()
}

// Background returns a copy of the cosmetic background layers.
func (g *Generator) Background() Background {
	return g.bg.snapshot()
}

// State returns a copy of the generation counters.
func (g *Generator) State() GenerationState {
	return g.state
}

// Placed returns how many obstacles Scroll has generated since the last
// reset. Obstacles in the terrain Reset fills in are not counted.
func (g *Generator) Placed() int {
	return g.placed
}

// Width returns the number of terrain columns.
func (g *Generator) Width() int {
	return g.grid.Width()
}

// Height returns the number of terrain rows.
func (g *Generator) Height() int {
	return g.grid.Height()
}

// PlatformRow is the walkable row that carries most obstacles.
func (g *Generator) PlatformRow() int {
	return g.grid.Height() - 3
}

// GroundRow is the base row beneath the platform.
func (g *Generator) GroundRow() int {
	return g.grid.Height() - 2
}

// Config returns the level configuration.
func (g *Generator) Config() config.LevelConfig {
	return g.cfg
}
