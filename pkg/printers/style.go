package printers

import (
	"github.com/fatih/color"

	"tableflip.dev/oneiro/pkg/taxonomy"
)

func bold(in string) string {
	return color.New(color.Bold).Sprint(in)
}

func faint(in string) string {
	return color.New(color.Faint).Sprint(in)
}

// presetStyles maps the preset palette onto the nearest ANSI colors. Hex
// colors and anything unknown render unstyled.
var presetStyles = map[taxonomy.Color]color.Attribute{
	taxonomy.ColorCyan:    color.FgCyan,
	taxonomy.ColorPurple:  color.FgMagenta,
	taxonomy.ColorPink:    color.FgHiMagenta,
	taxonomy.ColorEmerald: color.FgGreen,
	taxonomy.ColorAmber:   color.FgYellow,
	taxonomy.ColorBlue:    color.FgBlue,
	taxonomy.ColorIndigo:  color.FgHiBlue,
	taxonomy.ColorViolet:  color.FgHiMagenta,
	taxonomy.ColorRose:    color.FgHiRed,
	taxonomy.ColorTeal:    color.FgHiCyan,
	taxonomy.ColorLime:    color.FgHiGreen,
	taxonomy.ColorOrange:  color.FgHiYellow,
	taxonomy.ColorRed:     color.FgRed,
	taxonomy.ColorGreen:   color.FgGreen,
	taxonomy.ColorYellow:  color.FgHiYellow,
}

func paint(c taxonomy.Color, in string) string {
	attr, ok := presetStyles[c]
	if !ok {
		return in
	}
	return color.New(attr).Sprint(in)
}
