// Package core provides fundamental types and utilities shared by the
// runner simulation and its shells. It has no external dependencies so
// the simulation stays pure and testable.
package core

// Trunc converts a continuous coordinate to a grid row or column.
// Truncation toward zero matches how positions are snapped to cells
// everywhere in the simulation.
func Trunc(v float64) int {
	return int(v)
}
