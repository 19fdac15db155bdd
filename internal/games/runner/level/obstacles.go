package level

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// ObstacleKind identifies one of the obstacle shapes the generator can place.
type ObstacleKind int

const (
	KindSpike ObstacleKind = iota
	KindDoubleSpike
	KindLowBlock
	KindMidBlock
	KindGap
)

// String returns the config key for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindSpike:
		return "spike"
	case KindDoubleSpike:
		return "double_spike"
	case KindLowBlock:
		return "low_block"
	case KindMidBlock:
		return "mid_block"
	case KindGap:
		return "gap"
	default:
		return "unknown"
	}
}

// ObstacleSpec is a fully parameterized obstacle, ready to be written into
// the rightmost column. It only lives for the duration of one placement.
type ObstacleSpec struct {
	Kind   ObstacleKind
	Height int // Block height in rows (blocks only)
	Width  int // Gap width in columns (gaps only)
}

// ObstaclePool draws obstacle kinds with probability proportional to their
// configured weight, using cumulative weights and a binary search.
type ObstaclePool struct {
	kinds      []ObstacleKind
	cumulative []int // inclusive prefix sums, strictly increasing
}

// NewObstaclePool builds a pool from config weights. Zero-weight kinds are
// never drawn. Panics when the weights sum to zero.
func NewObstaclePool(w config.ObstacleWeights) *ObstaclePool {
	entries := []struct {
		kind   ObstacleKind
		weight int
	}{
		{KindSpike, w.Spike},
		{KindDoubleSpike, w.DoubleSpike},
		{KindLowBlock, w.LowBlock},
		{KindMidBlock, w.MidBlock},
		{KindGap, w.Gap},
	}

	p := &ObstaclePool{}
	total := 0
	for _, e := range entries {
		if e.weight <= 0 {
			continue
		}
		total += e.weight
		p.kinds = append(p.kinds, e.kind)
		p.cumulative = append(p.cumulative, total)
	}
	if total == 0 {
		panic("level: obstacle weights sum to zero")
	}
	return p
}

// Total returns the sum of all weights.
func (p *ObstaclePool) Total() int {
	return p.cumulative[len(p.cumulative)-1]
}

// Pick draws one kind.
func (p *ObstaclePool) Pick(rng *rand.Rand) ObstacleKind {
	r := rng.Intn(p.Total())
	i := sort.SearchInts(p.cumulative, r+1)
	return p.kinds[i]
}

// specFor fills in the parameters for a drawn kind.
func (g *Generator) specFor(kind ObstacleKind) ObstacleSpec {
	spec := ObstacleSpec{Kind: kind}
	switch kind {
	case KindLowBlock:
		spec.Height = g.cfg.LowBlockHeight
	case KindMidBlock:
		spec.Height = g.cfg.MidBlockHeight
	case KindGap:
		spec.Width = g.randBetween(g.cfg.GapMin, g.cfg.GapMax)
	}
	return spec
}

// place writes the first column of spec at logical column x and arms the
// follow-up counters for multi-column obstacles.
func (g *Generator) place(spec ObstacleSpec, x int) {
	platform := g.PlatformRow()
	switch spec.Kind {
	case KindSpike:
		g.grid.set(x, platform, CellSpike)
	case KindDoubleSpike:
		g.grid.set(x, platform, CellSpike)
		g.state.DoubleSpikeLeft = g.cfg.DoubleSpikeGap + 1
	case KindLowBlock, KindMidBlock:
		g.writeBlock(x, spec.Height)
	case KindGap:
		g.grid.set(x, g.GroundRow(), CellEmpty)
		g.grid.set(x, platform, CellEmpty)
		g.state.GapLeft = spec.Width - 1
	}
	g.placed++
}

// writeBlock stacks height block cells upward from the platform row.
func (g *Generator) writeBlock(x, height int) {
	for i := 0; i < height; i++ {
		// Row 0 belongs to the HUD
		if row := g.PlatformRow() - i; row >= 1 {
			g.grid.set(x, row, CellBlock)
		}
	}
}
