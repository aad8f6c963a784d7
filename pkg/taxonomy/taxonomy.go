// Package taxonomy defines the tag and category naming rules for the diary.
// Tag identity is a category-scoped slug, so equal labels in the same
// category always converge on one id.
package taxonomy

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// UncategorizedID is the implicit category for tags without one. It is never
// stored as a real category record.
const UncategorizedID = "uncategorized"

// Tag is a category-scoped label attached to a dream.
type Tag struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	CategoryID string `json:"categoryId"`
	IsCustom   bool   `json:"isCustom,omitempty"`
}

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slug lowercases, trims, strips everything outside [a-z0-9 -], converts
// whitespace runs to single hyphens, and collapses repeated hyphens.
func Slug(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugHyphens.ReplaceAllString(s, "-")
}

// BuildTagID derives the stable tag id "category/label". Every place that
// constructs a tag must go through this so duplicates collide.
func BuildTagID(categoryID, label string) string {
	if categoryID == "" {
		categoryID = UncategorizedID
	}
	return Slug(categoryID) + "/" + Slug(label)
}

// NewTag builds a normalized tag from a display label and category.
func NewTag(categoryID, label string, custom bool) Tag {
	if categoryID == "" {
		categoryID = UncategorizedID
	}
	return Tag{
		ID:         BuildTagID(categoryID, label),
		Label:      strings.TrimSpace(label),
		CategoryID: categoryID,
		IsCustom:   custom,
	}
}

// TagCategoryID extracts the category segment from a tag id, or returns the
// input unchanged when it does not look like a tag id. Lets callers resolve a
// color from either form.
func TagCategoryID(tagIDOrCategoryID string) string {
	if i := strings.IndexByte(tagIDOrCategoryID, '/'); i >= 0 {
		return tagIDOrCategoryID[:i]
	}
	return tagIDOrCategoryID
}

// Category is a user-defined grouping for tags with a display color.
// Timestamps are ISO-8601 strings, matching the persisted JSON shape.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     Color  `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CategoryName resolves the display name for a category id: the sentinel maps
// to "Uncategorized", a user category wins over a fixed default with the same
// id, and unknown ids fall back to the raw id.
func CategoryName(categoryID string, categories []Category) string {
	if categoryID == "" || categoryID == UncategorizedID {
		return "Uncategorized"
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	if fc, ok := FixedDefault(categoryID); ok {
		return fc.Name
	}
	return categoryID
}

// FixedCategory is a soft-seeded default: used for display when no user
// category with the same id exists, never a hard-coded singleton.
type FixedCategory struct {
	ID    string
	Name  string
	Color Color
}

// FixedCategories returns the reserved default categories in seed order.
func FixedCategories() []FixedCategory {
	return []FixedCategory{
		{ID: "emotions", Name: "Emotions", Color: ColorAmber},
		{ID: "characters", Name: "Characters", Color: ColorIndigo},
		{ID: "places", Name: "Places", Color: ColorBlue},
		{ID: "dream-types", Name: "Dream Types", Color: ColorPink},
	}
}

// FixedDefault looks up a reserved category id. User-created categories with
// the same id take precedence; callers check their category list first.
func FixedDefault(id string) (FixedCategory, bool) {
	for _, fc := range FixedCategories() {
		if fc.ID == id {
			return fc, true
		}
	}
	return FixedCategory{}, false
}

// LegacyPreset carries the historical display name and color for category ids
// found in pre-taxonomy data. Only used when seeding categories during
// migration.
type LegacyPreset struct {
	Name  string
	Color Color
}

// LegacyPresets maps legacy fixed preset ids to their historical identity.
func LegacyPresets() map[string]LegacyPreset {
	return map[string]LegacyPreset{
		"emotions":   {Name: "Emotions & Moods", Color: ColorAmber},
		"characters": {Name: "Characters & Beings", Color: ColorIndigo},
		"places":     {Name: "Places & Environments", Color: ColorBlue},
		"actions":    {Name: "Actions & Events", Color: ColorOrange},
		"objects":    {Name: "Objects & Items", Color: ColorTeal},
		"dreamTypes": {Name: "Dream Types & Styles", Color: ColorPink},
	}
}

// NewCategoryID slugs the display name into a unique id, disambiguating
// collisions with a numeric suffix (name-2, name-3, ...). Names that slug to
// nothing fall back to a random id.
func NewCategoryID(name string, taken func(id string) bool) string {
	base := Slug(name)
	if base == "" {
		base = uuid.NewString()
	}
	id := base
	for suffix := 2; taken(id); suffix++ {
		id = base + "-" + strconv.Itoa(suffix)
	}
	return id
}
