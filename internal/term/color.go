package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vialkov/coil/internal/core"
)

// colorTable maps the engine palette onto tcell's named ANSI colors.
var colorTable = map[core.Color]tcell.Color{
	core.ColorDefault:       tcell.ColorDefault,
	core.ColorBlack:         tcell.ColorBlack,
	core.ColorRed:           tcell.ColorMaroon,
	core.ColorGreen:         tcell.ColorGreen,
	core.ColorYellow:        tcell.ColorOlive,
	core.ColorBlue:          tcell.ColorNavy,
	core.ColorMagenta:       tcell.ColorPurple,
	core.ColorCyan:          tcell.ColorTeal,
	core.ColorWhite:         tcell.ColorSilver,
	core.ColorBrightRed:     tcell.ColorRed,
	core.ColorBrightGreen:   tcell.ColorLime,
	core.ColorBrightYellow:  tcell.ColorYellow,
	core.ColorBrightBlue:    tcell.ColorBlue,
	core.ColorBrightMagenta: tcell.ColorFuchsia,
	core.ColorBrightCyan:    tcell.ColorAqua,
	core.ColorBrightWhite:   tcell.ColorWhite,
	core.ColorGray:          tcell.ColorGray,
}

func toTcell(c core.Color) tcell.Color {
	if tc, ok := colorTable[c]; ok {
		return tc
	}
	return tcell.ColorDefault
}

func styleFor(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
}
