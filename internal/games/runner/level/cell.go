package level

// Cell is a terrain symbol. The set is closed: the generator writes only
// these values and every reader switches over them.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellGround
	CellPlatform
	CellSpike
	CellBlock
	CellGapMarker // Impassable hazard marker, never produced by random generation
)

// Rune returns the glyph used to draw the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellGround:
		return '='
	case CellPlatform:
		return '─'
	case CellSpike:
		return '▲'
	case CellBlock:
		return '█'
	case CellGapMarker:
		return '◆'
	default:
		return ' '
	}
}

// Impassable reports whether touching the cell ends the run.
func (c Cell) Impassable() bool {
	return c == CellSpike || c == CellBlock || c == CellGapMarker
}

// String returns a short name for debugging output.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellGround:
		return "ground"
	case CellPlatform:
		return "platform"
	case CellSpike:
		return "spike"
	case CellBlock:
		return "block"
	case CellGapMarker:
		return "gap-marker"
	default:
		return "unknown"
	}
}
