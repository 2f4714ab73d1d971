package font

import (
	"fmt"
	"strings"
)

// Rows is the pixel height of every glyph, one row per day of the week.
// Row 0 is Sunday, row 6 is Saturday.
const Rows = 7

// Glyph is a 5x7 pixel pattern, top to bottom. '1' marks an on pixel.
type Glyph [Rows]string

// Bitmap is the message rendered as Rows strings of equal width. Each
// column is one week on the contribution graph.
type Bitmap [Rows]string

var glyphs = map[rune]Glyph{
	'P': {
		"11110",
		"10001",
		"10001",
		"11110",
		"10000",
		"10000",
		"10000",
	},
	'I': {
		"01110",
		"00100",
		"00100",
		"00100",
		"00100",
		"00100",
		"01110",
	},
	'Z': {
		"11111",
		"00001",
		"00010",
		"00100",
		"01000",
		"10000",
		"11111",
	},
	'A': {
		"01110",
		"10001",
		"10001",
		"11111",
		"10001",
		"10001",
		"10001",
	},
	'!': {
		"00100",
		"00100",
		"00100",
		"00100",
		"00100",
		"00000",
		"00100",
	},
	' ': {
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
	},
}

func init() {
	// Lowercase letters reuse the uppercase patterns. The aliases are
	// explicit table entries so lookup stays a plain map access.
	for _, ch := range "PIZA" {
		lower := ch + ('a' - 'A')
		glyphs[lower] = glyphs[ch]
	}
}

// Lookup returns the glyph for ch, if the font has one.
func Lookup(ch rune) (Glyph, bool) {
	g, ok := glyphs[ch]
	return g, ok
}

// Render concatenates the glyphs for message left to right with gap
// blank columns between consecutive characters and no leading or
// trailing gap. It fails on the first character without a glyph.
func Render(message string, gap int) (Bitmap, error) {
	var bm Bitmap
	first := true
	for _, ch := range message {
		g, ok := glyphs[ch]
		if !ok {
			return Bitmap{}, fmt.Errorf("no glyph for character %q", ch)
		}
		for r := 0; r < Rows; r++ {
			if !first {
				bm[r] += strings.Repeat("0", gap)
			}
			bm[r] += g[r]
		}
		first = false
	}
	return bm, nil
}

// Width returns the number of week columns.
func (bm Bitmap) Width() int {
	return len(bm[0])
}

// On reports whether the pixel at (row, col) is set.
func (bm Bitmap) On(row, col int) bool {
	return bm[row][col] == '1'
}

// Count returns the number of on pixels.
func (bm Bitmap) Count() int {
	n := 0
	for r := 0; r < Rows; r++ {
		n += strings.Count(bm[r], "1")
	}
	return n
}
