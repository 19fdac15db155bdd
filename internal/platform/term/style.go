package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Style returns the tcell style for a core color. Unknown colors and
// ColorDefault use the terminal's default foreground.
func Style(c core.Color) tcell.Style {
	idx := c.Palette()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
