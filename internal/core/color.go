package core

// Color is the foreground of a screen cell. Games pick from this palette
// and the terminal layer decides how each entry is drawn.
type Color uint8

// The zero value is the terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen  // snake body
	ColorYellow // platformer player, regular food
	ColorBlue   // platformer blocks
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed     // shrinking food
	ColorBrightGreen   // snake head
	ColorBrightYellow  // coins
	ColorBrightMagenta // bonus food
	ColorBrightCyan    // fast-growth food
	ColorBrightWhite   // overlay titles
)
