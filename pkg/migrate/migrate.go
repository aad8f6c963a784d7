// Package migrate normalizes raw persisted records into the current schema.
// All of it is total: legacy and hand-edited data must always load, so bad
// shapes are repaired or dropped, never fatal.
package migrate

import (
	"fmt"
	"strings"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

// SchemaVersion is the current persisted schema. A store whose marker is
// absent or older gets normalized (and, once ever, category-seeded) on load.
const SchemaVersion = 1

// NormalizeTag builds a valid tag from a raw decoded record. Records without
// a non-empty label are rejected; a missing category defaults to the
// sentinel. The id is always rebuilt so legacy ids converge on current
// slugging.
func NormalizeTag(raw any) (taxonomy.Tag, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return taxonomy.Tag{}, false
	}
	label := strings.TrimSpace(asString(m["label"]))
	if label == "" {
		return taxonomy.Tag{}, false
	}
	categoryID := asString(m["categoryId"])
	if categoryID == "" {
		categoryID = taxonomy.UncategorizedID
	}
	return taxonomy.NewTag(categoryID, label, asBool(m["isCustom"])), true
}

// NormalizeDream repairs a raw dream record: malformed tags are dropped, tags
// are deduped by id keeping the first occurrence, citation arrays default to
// empty, an unparseable date becomes today and an unparseable time is
// cleared. Worst case the result is an empty-tagged dream; it never fails.
func NormalizeDream(raw map[string]any) dream.Dream {
	d := dream.Dream{
		ID:          asString(raw["id"]),
		Title:       asString(raw["title"]),
		Date:        safeDate(asString(raw["date"])),
		Time:        safeTime(asString(raw["time"])),
		Description: asString(raw["description"]),
		CreatedAt:   asString(raw["createdAt"]),
		UpdatedAt:   asString(raw["updatedAt"]),
		DeletedAt:   asString(raw["deletedAt"]),
		Tags:        []taxonomy.Tag{},
		CitedDreams: asStringSlice(raw["citedDreams"]),
		CitedTags:   asStringSlice(raw["citedTags"]),
	}

	seen := make(map[string]bool)
	if rawTags, ok := raw["tags"].([]any); ok {
		for _, rt := range rawTags {
			tag, ok := NormalizeTag(rt)
			if !ok || seen[tag.ID] {
				continue
			}
			seen[tag.ID] = true
			d.Tags = append(d.Tags, tag)
		}
	}
	return d
}

// Sort and range filtering compare dates and times lexicographically, so a
// value that does not parse must never reach the store.
func safeDate(s string) string {
	if dream.ValidDate(s) {
		return s
	}
	return dream.CurrentDate()
}

func safeTime(s string) string {
	if s == "" || dream.ValidTime(s) {
		return s
	}
	return ""
}

// NormalizeDreams normalizes a whole raw collection.
func NormalizeDreams(raw []map[string]any) []dream.Dream {
	out := make([]dream.Dream, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeDream(r))
	}
	return out
}

// SeedCategories derives an initial category list from legacy tag usage
// across both collections. Known legacy preset ids keep their historical
// names and colors; unknown ids become categories named after the raw id.
// When no tags reference a real category at all, the fixed starter set is
// used instead. Runs at most once per store, gated by the schema marker.
func SeedCategories(dreams, trashed []dream.Dream) []taxonomy.Category {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, d := range append(append([]dream.Dream{}, dreams...), trashed...) {
		for _, t := range d.Tags {
			if t.CategoryID == "" || t.CategoryID == taxonomy.UncategorizedID || seen[t.CategoryID] {
				continue
			}
			seen[t.CategoryID] = true
			ids = append(ids, t.CategoryID)
		}
	}

	now := dream.NowISO()
	presets := taxonomy.LegacyPresets()

	if len(ids) > 0 {
		cats := make([]taxonomy.Category, 0, len(ids))
		for _, id := range ids {
			name, color := id, taxonomy.UncategorizedColor
			if p, ok := presets[id]; ok {
				name, color = p.Name, p.Color
			}
			cats = append(cats, taxonomy.Category{
				ID: id, Name: name, Color: color, CreatedAt: now, UpdatedAt: now,
			})
		}
		return cats
	}

	starters := taxonomy.FixedCategories()
	cats := make([]taxonomy.Category, 0, len(starters))
	for _, fc := range starters {
		cats = append(cats, taxonomy.Category{
			ID: fc.ID, Name: fc.Name, Color: fc.Color, CreatedAt: now, UpdatedAt: now,
		})
	}
	return cats
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
