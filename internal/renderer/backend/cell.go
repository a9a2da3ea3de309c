package backend

import "github.com/mattn/go-runewidth"

// Attribute is a set of text attributes.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has returns true if a contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a terminal color: the terminal default, a palette index or
// a 24-bit RGB value.
type Color struct {
	R, G, B uint8

	// Indexed means R holds a palette index.
	Indexed bool

	// Default means the terminal's own color.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// Palette colors used by the editor chrome.
var (
	ColorBlack  = ColorFromIndex(0)
	ColorRed    = ColorFromIndex(1)
	ColorBlue   = ColorFromIndex(4)
	ColorGray   = ColorFromIndex(8)
	ColorWhite  = ColorFromIndex(15)
	ColorYellow = ColorFromIndex(3)
)

// ColorFromRGB creates a true color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates a palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// IsDefault returns true for the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Style is the foreground, background and attributes of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns s with a new foreground.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// Bold returns s in bold.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns s with foreground and background swapped.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is one character cell on screen. Wide characters occupy their
// cell and a following continuation cell with Width 0.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell for r.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth returns the number of columns r occupies: 0, 1 or 2.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// DrawString writes s at x, y and returns the column after the last
// character drawn. Characters that would cross maxX are dropped;
// zero-width characters are skipped.
func DrawString(b Backend, x, y, maxX int, s string, style Style) int {
	col := x
	for _, r := range s {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxX {
			break
		}
		if col >= 0 {
			b.SetCell(col, y, Cell{Rune: r, Width: w, Style: style})
			if w == 2 {
				b.SetCell(col+1, y, Cell{Width: 0, Style: style})
			}
		}
		col += w
	}
	return col
}
