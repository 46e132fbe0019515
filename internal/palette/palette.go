// Package palette holds the indexed display-color table used by curve
// shape overrides. Indices match the host's 32-entry override palette.
package palette

import "image/color"

// Size is the number of palette entries.
const Size = 32

// DefaultColor is the color used for shapes with no override.
var DefaultColor = color.NRGBA{R: 64, G: 96, B: 255, A: 255}

// table maps override index → display color.
var table = [Size]color.NRGBA{
	{R: 120, G: 120, B: 120, A: 255}, // 0 grey (index used when override is off)
	{R: 0, G: 0, B: 0, A: 255},       // 1 black
	{R: 64, G: 64, B: 64, A: 255},    // 2 dark grey
	{R: 153, G: 153, B: 153, A: 255}, // 3 light grey
	{R: 155, G: 0, B: 40, A: 255},    // 4 crimson
	{R: 0, G: 4, B: 96, A: 255},      // 5 dark blue
	{R: 0, G: 0, B: 255, A: 255},     // 6 blue
	{R: 0, G: 70, B: 25, A: 255},     // 7 dark green
	{R: 38, G: 0, B: 67, A: 255},     // 8 dark purple
	{R: 200, G: 0, B: 200, A: 255},   // 9 magenta
	{R: 138, G: 72, B: 51, A: 255},   // 10 brown
	{R: 63, G: 35, B: 31, A: 255},    // 11 dark brown
	{R: 153, G: 38, B: 0, A: 255},    // 12 rust
	{R: 255, G: 0, B: 0, A: 255},     // 13 red
	{R: 0, G: 255, B: 0, A: 255},     // 14 green
	{R: 0, G: 65, B: 153, A: 255},    // 15 cobalt
	{R: 255, G: 255, B: 255, A: 255}, // 16 white
	{R: 255, G: 255, B: 0, A: 255},   // 17 yellow
	{R: 100, G: 220, B: 255, A: 255}, // 18 light blue
	{R: 67, G: 255, B: 163, A: 255},  // 19 spring green
	{R: 255, G: 176, B: 176, A: 255}, // 20 salmon
	{R: 228, G: 172, B: 121, A: 255}, // 21 tan
	{R: 255, G: 255, B: 99, A: 255},  // 22 light yellow
	{R: 0, G: 153, B: 84, A: 255},    // 23 sea green
	{R: 161, G: 106, B: 48, A: 255},  // 24 ochre
	{R: 158, G: 161, B: 48, A: 255},  // 25 olive
	{R: 104, G: 161, B: 48, A: 255},  // 26 leaf green
	{R: 48, G: 161, B: 93, A: 255},   // 27 jade
	{R: 48, G: 161, B: 161, A: 255},  // 28 teal
	{R: 48, G: 103, B: 161, A: 255},  // 29 steel blue
	{R: 111, G: 48, B: 161, A: 255},  // 30 purple
	{R: 161, G: 48, B: 106, A: 255},  // 31 raspberry
}

// Color returns the display color for an override index. Out-of-range
// indices fall back to the default color.
func Color(index int) color.NRGBA {
	if index < 0 || index >= Size {
		return DefaultColor
	}
	return table[index]
}

// Valid reports whether index is a usable palette index.
func Valid(index int) bool {
	return index >= 0 && index < Size
}
