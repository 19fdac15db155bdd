package player

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Arc summarizes a single jump taken from the ground with no further input.
type Arc struct {
	Rows     []int // Occupied row on each airborne tick, jump tick first
	AirTicks int   // Ticks spent airborne before landing
	ApexRow  int   // Highest (smallest) row reached
	Height   int   // Clear rows between the apex and the platform row
}

// JumpArc simulates one jump from platformRow with the given physics.
// The jump is applied on the same tick as the first update, matching the
// simulation's intent-then-physics order.
func JumpArc(cfg config.PlayerConfig, platformRow int) Arc {
	b := New(cfg, platformRow)
	fixed := time.Unix(0, 0)
	b.SetClock(func() time.Time { return fixed })

	arc := Arc{ApexRow: platformRow}
	b.Jump()
	// Bounded in case of degenerate physics; a jump never lasts this long
	for i := 0; i < 10_000; i++ {
		b.Update()
		if b.Grounded() {
			break
		}
		row := b.Row()
		arc.Rows = append(arc.Rows, row)
		if row < arc.ApexRow {
			arc.ApexRow = row
		}
	}
	arc.AirTicks = len(arc.Rows)
	arc.Height = platformRow - arc.ApexRow
	return arc
}
