package diary

import (
	"sort"

	"tableflip.dev/oneiro/pkg/taxonomy"
)

// TagUsage is a tag with its usage count across active dreams.
type TagUsage struct {
	ID    string
	Label string
	Count int
}

// AllTags aggregates tag usage over the active collection, most used first.
// Ties keep first-encountered order.
func (s *Service) AllTags() []TagUsage {
	index := make(map[string]int)
	out := make([]TagUsage, 0)

	for _, d := range s.dreams {
		for _, t := range d.Tags {
			if i, ok := index[t.ID]; ok {
				out[i].Count++
				continue
			}
			index[t.ID] = len(out)
			out = append(out, TagUsage{ID: t.ID, Label: t.Label, Count: 1})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TagColor resolves the display color for a tag id or a bare category id,
// through the category segment of the id.
func (s *Service) TagColor(tagIDOrCategoryID string) taxonomy.Color {
	return taxonomy.GetCategoryColor(taxonomy.TagCategoryID(tagIDOrCategoryID), s.categories)
}
