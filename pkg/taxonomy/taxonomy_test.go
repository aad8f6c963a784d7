package taxonomy

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"City", "city"},
		{"City ", "city"},
		{"  Flying High  ", "flying-high"},
		{"a   b", "a-b"},
		{"a---b", "a-b"},
		{"Héllo!", "hllo"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildTagID(t *testing.T) {
	if got := BuildTagID("Places", "City "); got != "places/city" {
		t.Fatalf("BuildTagID = %q, want places/city", got)
	}
	if got := BuildTagID("", "Flying"); got != "uncategorized/flying" {
		t.Fatalf("BuildTagID empty category = %q", got)
	}
}

func TestBuildTagIDConvergence(t *testing.T) {
	// Labels that slug identically must collide to the same id.
	pairs := [][2]string{
		{"City", "city"},
		{"City ", " City"},
		{"Flying High", "flying   high"},
		{"a-b", "A B"},
	}
	for _, p := range pairs {
		a := BuildTagID("places", p[0])
		b := BuildTagID("places", p[1])
		if a != b {
			t.Errorf("BuildTagID(%q) = %q but BuildTagID(%q) = %q", p[0], a, p[1], b)
		}
	}
}

func TestNewTagKeepsDisplayLabel(t *testing.T) {
	tag := NewTag("places", " Dark City ", true)
	if tag.ID != "places/dark-city" {
		t.Fatalf("id = %q", tag.ID)
	}
	if tag.Label != "Dark City" {
		t.Fatalf("label = %q, want trimmed original casing", tag.Label)
	}
	if !tag.IsCustom {
		t.Fatal("expected custom flag")
	}
}

func TestTagCategoryID(t *testing.T) {
	if got := TagCategoryID("places/city"); got != "places" {
		t.Fatalf("got %q", got)
	}
	if got := TagCategoryID("places"); got != "places" {
		t.Fatalf("got %q", got)
	}
}

func TestNewCategoryID(t *testing.T) {
	existing := map[string]bool{"places": true, "places-2": true}
	taken := func(id string) bool { return existing[id] }

	if got := NewCategoryID("Places", taken); got != "places-3" {
		t.Fatalf("got %q, want places-3", got)
	}
	if got := NewCategoryID("Dream Types", taken); got != "dream-types" {
		t.Fatalf("got %q, want dream-types", got)
	}
	if got := NewCategoryID("!!!", taken); got == "" {
		t.Fatal("expected non-empty fallback id")
	}
}

func TestCategoryName(t *testing.T) {
	cats := []Category{{ID: "places", Name: "My Places"}}
	if got := CategoryName("places", cats); got != "My Places" {
		t.Fatalf("user category should win, got %q", got)
	}
	if got := CategoryName("emotions", cats); got != "Emotions" {
		t.Fatalf("fixed default should apply, got %q", got)
	}
	if got := CategoryName(UncategorizedID, cats); got != "Uncategorized" {
		t.Fatalf("got %q", got)
	}
	if got := CategoryName("mystery", cats); got != "mystery" {
		t.Fatalf("unknown id should pass through, got %q", got)
	}
}
