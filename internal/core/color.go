package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the 256-color palette index used by terminal renderers.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

// RGB returns an approximate 24-bit value for window renderers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcd, 0x00, 0x00
	case ColorGreen:
		return 0x00, 0xcd, 0x00
	case ColorYellow:
		return 0xcd, 0xcd, 0x00
	case ColorBlue:
		return 0x00, 0x00, 0xee
	case ColorMagenta:
		return 0xcd, 0x00, 0xcd
	case ColorCyan:
		return 0x00, 0xcd, 0xcd
	case ColorWhite:
		return 0xe5, 0xe5, 0xe5
	case ColorBrightRed:
		return 0xff, 0x00, 0x00
	case ColorBrightGreen:
		return 0x00, 0xff, 0x00
	case ColorBrightYellow:
		return 0xff, 0xd7, 0x00
	case ColorBrightBlue:
		return 0x5c, 0x5c, 0xff
	case ColorBrightMagenta:
		return 0xff, 0x00, 0xff
	case ColorBrightCyan:
		return 0x00, 0xff, 0xff
	case ColorBrightWhite:
		return 0xff, 0xff, 0xff
	case ColorOrange:
		return 0xff, 0x87, 0x00
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0xd0, 0xd0, 0xd0
	}
}
