package taxonomy

import "testing"

func TestNormalizeColorPresets(t *testing.T) {
	for _, preset := range Presets() {
		if got := NormalizeColor(string(preset)); got != preset {
			t.Errorf("NormalizeColor(%q) = %q", preset, got)
		}
	}
	// Preset matching is case-sensitive; "Cyan" is not a preset.
	if got := NormalizeColor("Cyan"); got != UncategorizedColor {
		t.Errorf("NormalizeColor(Cyan) = %q, want uncategorized default", got)
	}
}

func TestNormalizeColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#7c3aed", "#7C3AED"},
		{"7C3AED", "#7C3AED"},
		{"#abc", "#AABBCC"},
		{"fff", "#FFFFFF"},
		{" #1a2B3c ", "#1A2B3C"},
		{"#12345", UncategorizedColor},
		{"not-a-color", UncategorizedColor},
		{"", UncategorizedColor},
		{"#GGGGGG", UncategorizedColor},
	}
	for _, tc := range tests {
		if got := NormalizeColor(tc.in); got != tc.want {
			t.Errorf("NormalizeColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeColorIdempotent(t *testing.T) {
	inputs := []string{"cyan", "violet", "#7c3aed", "abc", "garbage", "", "#AABBCC"}
	for _, in := range inputs {
		once := NormalizeColor(in)
		twice := NormalizeColor(string(once))
		if once != twice {
			t.Errorf("NormalizeColor not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorHex(ColorBlue); got != "#3B82F6" {
		t.Fatalf("preset hex = %q", got)
	}
	if got := ColorHex("#7c3aed"); got != "#7C3AED" {
		t.Fatalf("hex passthrough = %q", got)
	}
	if got := ColorHex("bogus"); got != ColorHex(UncategorizedColor) {
		t.Fatalf("fallback hex = %q", got)
	}
}

func TestGetCategoryColor(t *testing.T) {
	cats := []Category{{ID: "places", Color: ColorBlue}}
	if got := GetCategoryColor("places", cats); got != ColorBlue {
		t.Fatalf("got %q", got)
	}
	if got := GetCategoryColor("missing", cats); got != UncategorizedColor {
		t.Fatalf("missing category should fall back, got %q", got)
	}
	if got := GetCategoryColor("", cats); got != UncategorizedColor {
		t.Fatalf("empty id should fall back, got %q", got)
	}
	if got := GetCategoryColor(UncategorizedID, cats); got != UncategorizedColor {
		t.Fatalf("sentinel should fall back, got %q", got)
	}
}
