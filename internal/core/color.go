package core

// Color represents a foreground color for a screen cell.
// Hosts map it to an ANSI 256-color code or an RGBA value.
type Color uint8

// Colors the climber draws with. ColorDarkGray is the last value; hosts
// keep a palette entry for every color up to it.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorGray
	ColorDarkGray
)
