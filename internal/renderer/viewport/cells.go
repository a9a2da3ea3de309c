package viewport

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// RuneCells returns the number of screen cells r occupies. Tabs and
// other control characters are drawn as a single space.
func RuneCells(r rune) int {
	if r == '\t' || unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// Cells returns the screen column at which character n of s starts.
// Characters past the end of s count one cell each.
func Cells(s string, n int) int {
	col, i := 0, 0
	for _, r := range s {
		if i == n {
			return col
		}
		col += RuneCells(r)
		i++
	}
	return col + max(n-i, 0)
}
