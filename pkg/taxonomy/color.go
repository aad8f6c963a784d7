package taxonomy

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is either one of the fixed preset names or a normalized "#RRGGBB"
// hex string. NormalizeColor is the constructor; anything it does not
// recognize collapses to UncategorizedColor.
type Color string

const (
	ColorCyan    Color = "cyan"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorEmerald Color = "emerald"
	ColorAmber   Color = "amber"
	ColorBlue    Color = "blue"
	ColorIndigo  Color = "indigo"
	ColorViolet  Color = "violet"
	ColorRose    Color = "rose"
	ColorTeal    Color = "teal"
	ColorLime    Color = "lime"
	ColorOrange  Color = "orange"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
)

// UncategorizedColor is the default for the sentinel category and for any
// color input that fails normalization.
const UncategorizedColor = ColorViolet

var presetHex = map[Color]string{
	ColorCyan:    "#06B6D4",
	ColorPurple:  "#A855F7",
	ColorPink:    "#EC4899",
	ColorEmerald: "#10B981",
	ColorAmber:   "#F59E0B",
	ColorBlue:    "#3B82F6",
	ColorIndigo:  "#6366F1",
	ColorViolet:  "#8B5CF6",
	ColorRose:    "#F43F5E",
	ColorTeal:    "#14B8A6",
	ColorLime:    "#84CC16",
	ColorOrange:  "#F97316",
	ColorRed:     "#EF4444",
	ColorGreen:   "#22C55E",
	ColorYellow:  "#EAB308",
}

// Presets returns the preset colors in picker order.
func Presets() []Color {
	return []Color{
		ColorCyan, ColorPurple, ColorPink, ColorEmerald, ColorAmber,
		ColorBlue, ColorIndigo, ColorViolet, ColorRose, ColorTeal,
		ColorLime, ColorOrange, ColorRed, ColorGreen, ColorYellow,
	}
}

// IsPreset reports whether c exactly matches a preset name.
func IsPreset(c Color) bool {
	_, ok := presetHex[c]
	return ok
}

// NormalizeHex parses a 3- or 6-digit hex color, with or without the leading
// "#", and returns the uppercase "#RRGGBB" form. The empty string signals an
// unparseable input.
func NormalizeHex(in string) string {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(in), "#"))
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return ""
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return ""
	}
	return strings.ToUpper(c.Hex())
}

// NormalizeColor maps arbitrary input into the Color variant: preset names
// pass through, parseable hex becomes uppercase "#RRGGBB", and everything
// else becomes UncategorizedColor. Idempotent.
func NormalizeColor(in string) Color {
	if IsPreset(Color(in)) {
		return Color(in)
	}
	if hex := NormalizeHex(in); hex != "" {
		return Color(hex)
	}
	return UncategorizedColor
}

// ColorHex resolves a Color to its "#RRGGBB" value. Presets go through the
// fixed table; anything else is normalized as hex with the uncategorized
// preset as the fallback.
func ColorHex(c Color) string {
	if hex, ok := presetHex[c]; ok {
		return hex
	}
	if hex := NormalizeHex(string(c)); hex != "" {
		return hex
	}
	return presetHex[UncategorizedColor]
}

// GetCategoryColor returns the color for a category id given the current
// category list. A user category wins over a fixed default with the same id;
// the sentinel, an empty id, and an unknown id all resolve to the
// uncategorized default. A missing category never errors.
func GetCategoryColor(categoryID string, categories []Category) Color {
	if categoryID == "" || categoryID == UncategorizedID {
		return UncategorizedColor
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Color
		}
	}
	if fc, ok := FixedDefault(categoryID); ok {
		return fc.Color
	}
	return UncategorizedColor
}
