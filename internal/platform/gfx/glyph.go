package gfx

// shape is how a screen cell is painted in the window.
type shape int

const (
	shapeText    shape = iota // Drawn with the font
	shapeBlank                // Nothing to draw
	shapeFill                 // Solid cell, alpha from shade
	shapeVLine                // Thin vertical line through the cell
	shapeVDash                // Dashed vertical line
	shapeHLine                // Thin horizontal line
	shapeDot                  // Small centered square
	shapeDiamond              // Medium centered square
)

// glyph describes the paint for one rune.
type glyph struct {
	shape shape
	shade float32 // Fill opacity for shapeFill
	text  rune    // Replacement rune for shapeText
}

// asciiFallback replaces runes the bitmap font does not carry.
var asciiFallback = map[rune]rune{
	'←': '<',
	'→': '>',
	'↑': '^',
	'↓': 'v',
	'✶': '*',
}

// classify maps a cell rune to its paint.
// Block and box-drawing runes become shapes; everything else is text.
func classify(r rune) glyph {
	switch r {
	case ' ', 0:
		return glyph{shape: shapeBlank}
	case '█':
		return glyph{shape: shapeFill, shade: 1}
	case '▓':
		return glyph{shape: shapeFill, shade: 0.75}
	case '▒':
		return glyph{shape: shapeFill, shade: 0.5}
	case '░':
		return glyph{shape: shapeFill, shade: 0.25}
	case '│', '┌', '┐', '└', '┘':
		return glyph{shape: shapeVLine}
	case '╎':
		return glyph{shape: shapeVDash}
	case '─':
		return glyph{shape: shapeHLine}
	case '·':
		return glyph{shape: shapeDot}
	case '◆':
		return glyph{shape: shapeDiamond}
	}
	if f, ok := asciiFallback[r]; ok {
		return glyph{shape: shapeText, text: f}
	}
	if r > 0xFF {
		return glyph{shape: shapeText, text: '?'}
	}
	return glyph{shape: shapeText, text: r}
}
