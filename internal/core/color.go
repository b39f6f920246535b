package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
)

// Colors used by the rink.
const (
	ColorRink       = ColorGray
	ColorCenterLine = ColorRed
	ColorGoal       = ColorYellow
	ColorLeftSide   = ColorBrightRed
	ColorRightSide  = ColorBrightBlue
	ColorPuck       = ColorBrightWhite
)
